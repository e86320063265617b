package dto

// Placeholder is shown for detail fields of an order without service details.
const Placeholder = "-"

type OverviewRowDTO struct {
	OrderID int64 `json:"orderId"`

	CustomerID    int64  `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerLabel string `json:"customerLabel"`

	ConsultantID    int64  `json:"consultantId"`
	ConsultantName  string `json:"consultantName"`
	ConsultantPhone string `json:"consultantPhone"`
	ConsultantLabel string `json:"consultantLabel"`

	DetailID     *int64 `json:"orderServiceTypeId"`
	ServiceID    *int64 `json:"serviceId"`
	ServiceName  string `json:"serviceName"`
	FromAddress  string `json:"fromAddress"`
	ToAddress    string `json:"toAddress"`
	ScheduleDate string `json:"scheduleDate"`
	Price        string `json:"price"`
	PriceLabel   string `json:"priceLabel"`

	Note string `json:"note"`

	Phase string `json:"phase"`
	Dirty bool   `json:"dirty"`
}

type DraftDTO struct {
	CustomerID   int64  `json:"customerId"`
	ConsultantID int64  `json:"consultantId"`
	Note         string `json:"note"`
	ServiceID    int64  `json:"serviceId"`
	FromAddress  string `json:"fromAddress"`
	ToAddress    string `json:"toAddress"`
	ScheduleDate string `json:"scheduleDate"`
	Price        string `json:"price"`
}

type OptionDTO struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Phone string `json:"phone,omitempty"`
}

type OptionsDTO struct {
	Customers    []OptionDTO `json:"customers"`
	Consultants  []OptionDTO `json:"consultants"`
	ServiceTypes []OptionDTO `json:"serviceTypes"`
}

type OverviewTableDTO struct {
	ViewID  string           `json:"viewId"`
	Rows    []OverviewRowDTO `json:"rows"`
	Draft   DraftDTO         `json:"draft"`
	Options OptionsDTO       `json:"options"`
}

type ConfirmationDTO struct {
	ID      string `json:"confirmationId"`
	OrderID int64  `json:"orderId"`
	Action  string `json:"action"`
	Prompt  string `json:"prompt"`
	Payload any    `json:"payload"`
}

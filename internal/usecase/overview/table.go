package overview

import (
	"strconv"

	domain "github.com/BruksfildServices01/moving-backoffice/internal/domain/overview"
	"github.com/BruksfildServices01/moving-backoffice/internal/dto"
	"github.com/BruksfildServices01/moving-backoffice/internal/models"
)

// Presenter renders a view into the table the browser binds its inputs to.
type Presenter struct {
	currency string
}

func NewPresenter(currency string) *Presenter {
	return &Presenter{currency: currency}
}

// Table takes the view lock; never call it from inside a use case.
func (p *Presenter) Table(v *View) dto.OverviewTableDTO {
	v.mu.Lock()
	defer v.mu.Unlock()

	rows := v.board.Rows()
	out := make([]dto.OverviewRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, p.row(v, row))
	}

	return dto.OverviewTableDTO{
		ViewID:  v.ID,
		Rows:    out,
		Draft:   draftDTO(v.draft),
		Options: options(v.ref),
	}
}

func (p *Presenter) row(v *View, row domain.Row) dto.OverviewRowDTO {
	o := row.Order
	r := dto.OverviewRowDTO{
		OrderID:        o.ID,
		CustomerID:      o.CustomerID,
		CustomerName:    domain.UnknownCustomer,
		CustomerLabel:   v.ref.ResolveCustomerLabel(o.CustomerID),
		ConsultantID:    o.ConsultantID,
		ConsultantName:  domain.UnknownConsultant,
		ConsultantLabel: v.ref.ResolveConsultantLabel(o.ConsultantID),
		ServiceName:     dto.Placeholder,
		FromAddress:     dto.Placeholder,
		ToAddress:       dto.Placeholder,
		ScheduleDate:    dto.Placeholder,
		PriceLabel:      dto.Placeholder,
		Note:            o.Note,
		Phase:           string(v.board.Phase(o.ID)),
		Dirty:           v.board.Dirty(o.ID),
	}

	if c, ok := v.ref.Customer(o.CustomerID); ok {
		r.CustomerName = c.Name
		r.CustomerPhone = c.Phone.String()
	}
	if c, ok := v.ref.Consultant(o.ConsultantID); ok {
		r.ConsultantName = c.Name
		r.ConsultantPhone = c.Phone.String()
	}

	if d := row.Detail; d != nil {
		detailID, serviceID := d.ID, d.ServiceID
		r.DetailID = &detailID
		r.ServiceID = &serviceID
		r.ServiceName = v.ref.ResolveServiceName(d.ServiceID)
		r.FromAddress = orPlaceholder(d.FromAddress)
		r.ToAddress = orPlaceholder(d.ToAddress)
		r.ScheduleDate = orPlaceholder(d.ScheduleDate)
		if d.Price.Valid {
			r.Price = d.Price.Decimal.String()
			r.PriceLabel = r.Price + " " + p.currency
		}
	}
	return r
}

func draftDTO(d domain.Draft) dto.DraftDTO {
	out := dto.DraftDTO{
		CustomerID:   d.Order.CustomerID,
		ConsultantID: d.Order.ConsultantID,
		Note:         d.Order.Note,
		ServiceID:    d.Detail.ServiceID,
		FromAddress:  deref(d.Detail.FromAddress),
		ToAddress:    deref(d.Detail.ToAddress),
		ScheduleDate: deref(d.Detail.ScheduleDate),
	}
	if d.Detail.Price.Valid {
		out.Price = d.Detail.Price.Decimal.String()
	}
	return out
}

func options(ref *domain.ReferenceData) dto.OptionsDTO {
	var out dto.OptionsDTO

	out.Customers = make([]dto.OptionDTO, 0, len(ref.Customers()))
	for _, c := range ref.Customers() {
		out.Customers = append(out.Customers, dto.OptionDTO{ID: c.ID, Label: c.Name, Phone: c.Phone.String()})
	}

	out.Consultants = make([]dto.OptionDTO, 0, len(ref.Consultants()))
	for _, c := range ref.Consultants() {
		out.Consultants = append(out.Consultants, dto.OptionDTO{ID: c.ID, Label: c.Name, Phone: c.Phone.String()})
	}

	out.ServiceTypes = make([]dto.OptionDTO, 0, len(ref.ServiceTypes()))
	for _, s := range ref.ServiceTypes() {
		out.ServiceTypes = append(out.ServiceTypes, dto.OptionDTO{ID: s.ID, Label: s.Name})
	}
	return out
}

// confirmationDTO shows the user what will be sent if they confirm.
func confirmationDTO(p domain.Pending) dto.ConfirmationDTO {
	out := dto.ConfirmationDTO{
		ID:      p.ID,
		OrderID: p.OrderID,
		Action:  string(p.Action),
	}

	switch p.Action {
	case domain.ActionSave:
		out.Prompt = "Save changes to order " + strconv.FormatInt(p.OrderID, 10) + "?"
		out.Payload = struct {
			Order  models.Order               `json:"order"`
			Detail *models.OrderServiceDetail `json:"detail"`
		}{p.Order, p.Detail}
	case domain.ActionDelete:
		out.Prompt = "Delete order " + strconv.FormatInt(p.OrderID, 10) + "?"
		out.Payload = p.Order
	}
	return out
}

func orPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return dto.Placeholder
	}
	return *s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

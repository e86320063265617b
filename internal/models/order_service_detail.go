package models

import "github.com/shopspring/decimal"

func init() {
	// the backend stores price as a plain JSON number
	decimal.MarshalJSONWithoutQuotes = true
}

// OrderServiceDetail is served by /orderservicetypes. At most one row per order
// is expected; every field after ServiceID may be null on the wire.
type OrderServiceDetail struct {
	ID           int64               `json:"orderServiceTypeId"`
	OrderID      int64               `json:"orderId"`
	ServiceID    int64               `json:"serviceId"`
	FromAddress  *string             `json:"fromAddress"`
	ToAddress    *string             `json:"toAddress"`
	ScheduleDate *string             `json:"scheduleDate"`
	Price        decimal.NullDecimal `json:"price"`
}

// CreateOrderServiceDetailRequest is the body of POST /orderservicetypes.
type CreateOrderServiceDetailRequest struct {
	OrderID      int64           `json:"orderId"`
	ServiceID    int64           `json:"serviceId"`
	FromAddress  string          `json:"fromAddress"`
	ToAddress    string          `json:"toAddress"`
	ScheduleDate string          `json:"scheduleDate"`
	Price        decimal.Decimal `json:"price"`
}

// Clone returns a deep copy so snapshot and working rows never share pointers.
func (d OrderServiceDetail) Clone() OrderServiceDetail {
	out := d
	out.FromAddress = cloneString(d.FromAddress)
	out.ToAddress = cloneString(d.ToAddress)
	out.ScheduleDate = cloneString(d.ScheduleDate)
	return out
}

// Equal compares field values rather than pointer identity.
func (d OrderServiceDetail) Equal(o OrderServiceDetail) bool {
	if d.ID != o.ID || d.OrderID != o.OrderID || d.ServiceID != o.ServiceID {
		return false
	}
	if !equalString(d.FromAddress, o.FromAddress) ||
		!equalString(d.ToAddress, o.ToAddress) ||
		!equalString(d.ScheduleDate, o.ScheduleDate) {
		return false
	}
	if d.Price.Valid != o.Price.Valid {
		return false
	}
	return !d.Price.Valid || d.Price.Decimal.Equal(o.Price.Decimal)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

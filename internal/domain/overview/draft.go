package overview

import (
	"strings"

	"github.com/BruksfildServices01/moving-backoffice/internal/httperr"
	"github.com/BruksfildServices01/moving-backoffice/internal/models"
)

const RequiredFieldsMessage = "Please fill in all required fields!"

// Draft is the pseudo-row that collects a not-yet-created order and its
// service detail.
type Draft struct {
	Order  models.Order
	Detail models.OrderServiceDetail
}

// NewDraft defaults the foreign keys to the first loaded reference ids.
func NewDraft(ref *ReferenceData) Draft {
	customerID, consultantID, serviceID := ref.Defaults()
	return Draft{
		Order: models.Order{
			CustomerID:   customerID,
			ConsultantID: consultantID,
		},
		Detail: models.OrderServiceDetail{
			ServiceID: serviceID,
		},
	}
}

// Set applies one input change to the draft.
func (d *Draft) Set(f Field, raw, tz string) error {
	switch {
	case f.IsOrderField():
		return applyOrderField(&d.Order, f, raw)
	case f.IsDetailField():
		detail := d.Detail.Clone()
		if err := applyDetailField(&detail, f, raw, tz); err != nil {
			return err
		}
		d.Detail = detail
		return nil
	}
	return errUnknownField(f)
}

// Validate checks every required field and reports all missing ones in a
// single error. The note is optional.
func (d Draft) Validate() error {
	var missing []string

	if d.Order.CustomerID == 0 {
		missing = append(missing, string(FieldCustomerID))
	}
	if d.Order.ConsultantID == 0 {
		missing = append(missing, string(FieldConsultantID))
	}
	if d.Detail.ServiceID == 0 {
		missing = append(missing, string(FieldServiceID))
	}
	if blank(d.Detail.FromAddress) {
		missing = append(missing, string(FieldFromAddress))
	}
	if blank(d.Detail.ToAddress) {
		missing = append(missing, string(FieldToAddress))
	}
	if blank(d.Detail.ScheduleDate) {
		missing = append(missing, string(FieldScheduleDate))
	}
	if !d.Detail.Price.Valid || d.Detail.Price.Decimal.IsZero() {
		missing = append(missing, string(FieldPrice))
	}

	if len(missing) == 0 {
		return nil
	}
	return httperr.BusinessError{
		Code:    "validation_failed",
		Message: RequiredFieldsMessage,
		Details: map[string]any{"missing": missing},
	}
}

func (d Draft) OrderRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		CustomerID:   d.Order.CustomerID,
		ConsultantID: d.Order.ConsultantID,
		Note:         d.Order.Note,
	}
}

// DetailRequest builds the second create call; orderID comes from the first.
func (d Draft) DetailRequest(orderID int64) models.CreateOrderServiceDetailRequest {
	return models.CreateOrderServiceDetailRequest{
		OrderID:      orderID,
		ServiceID:    d.Detail.ServiceID,
		FromAddress:  deref(d.Detail.FromAddress),
		ToAddress:    deref(d.Detail.ToAddress),
		ScheduleDate: deref(d.Detail.ScheduleDate),
		Price:        d.Detail.Price.Decimal,
	}
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

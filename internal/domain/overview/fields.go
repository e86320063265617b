package overview

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/moving-backoffice/internal/httperr"
	"github.com/BruksfildServices01/moving-backoffice/internal/models"
	"github.com/BruksfildServices01/moving-backoffice/internal/timezone"
)

// Field names match the JSON keys of the backend records.
type Field string

const (
	FieldCustomerID   Field = "customerId"
	FieldConsultantID Field = "consultantId"
	FieldNote         Field = "note"

	FieldServiceID    Field = "serviceId"
	FieldFromAddress  Field = "fromAddress"
	FieldToAddress    Field = "toAddress"
	FieldScheduleDate Field = "scheduleDate"
	FieldPrice        Field = "price"
)

func (f Field) IsOrderField() bool {
	switch f {
	case FieldCustomerID, FieldConsultantID, FieldNote:
		return true
	}
	return false
}

func (f Field) IsDetailField() bool {
	switch f {
	case FieldServiceID, FieldFromAddress, FieldToAddress, FieldScheduleDate, FieldPrice:
		return true
	}
	return false
}

// IsReference reports whether the field is a foreign key into the reference data.
func (f Field) IsReference() bool {
	return f == FieldCustomerID || f == FieldConsultantID || f == FieldServiceID
}

func errUnknownField(f Field) error {
	return httperr.ErrBusinessMsg("unknown_field", "Unknown field "+string(f)+".")
}

func errInvalidValue(f Field) error {
	return httperr.ErrBusinessMsg("invalid_field_value", "Invalid value for "+string(f)+".")
}

// ParseID parses a positive id as typed into a select or number input.
func ParseID(f Field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidValue(f)
	}
	return id, nil
}

func applyOrderField(o *models.Order, f Field, raw string) error {
	switch f {
	case FieldCustomerID:
		id, err := ParseID(f, raw)
		if err != nil {
			return err
		}
		o.CustomerID = id
	case FieldConsultantID:
		id, err := ParseID(f, raw)
		if err != nil {
			return err
		}
		o.ConsultantID = id
	case FieldNote:
		o.Note = raw
	default:
		return errUnknownField(f)
	}
	return nil
}

// applyDetailField parses raw for f and writes it into d. Empty text clears a
// nullable field.
func applyDetailField(d *models.OrderServiceDetail, f Field, raw, tz string) error {
	switch f {
	case FieldServiceID:
		id, err := ParseID(f, raw)
		if err != nil {
			return err
		}
		d.ServiceID = id
	case FieldFromAddress:
		d.FromAddress = optionalText(raw)
	case FieldToAddress:
		d.ToAddress = optionalText(raw)
	case FieldScheduleDate:
		if strings.TrimSpace(raw) == "" {
			d.ScheduleDate = nil
			return nil
		}
		date, err := timezone.NormalizeDate(tz, raw)
		if err != nil {
			return errInvalidValue(f)
		}
		d.ScheduleDate = &date
	case FieldPrice:
		price, err := parsePrice(raw)
		if err != nil {
			return err
		}
		d.Price = price
	default:
		return errUnknownField(f)
	}
	return nil
}

func parsePrice(raw string) (decimal.NullDecimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	p, err := decimal.NewFromString(raw)
	if err != nil || p.IsNegative() {
		return decimal.NullDecimal{}, errInvalidValue(FieldPrice)
	}
	return decimal.NullDecimal{Decimal: p, Valid: true}, nil
}

func optionalText(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}

package overview

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/moving-backoffice/internal/models"
)

func strPtr(s string) *string { return &s }

func price(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func sampleOrders() []models.Order {
	return []models.Order{
		{ID: 1, CustomerID: 10, ConsultantID: 20, Note: "ring first"},
		{ID: 2, CustomerID: 11, ConsultantID: 20},
	}
}

func sampleDetails() []models.OrderServiceDetail {
	return []models.OrderServiceDetail{
		{
			ID:           100,
			OrderID:      1,
			ServiceID:    30,
			FromAddress:  strPtr("Storgata 1"),
			ToAddress:    strPtr("Kirkeveien 2"),
			ScheduleDate: strPtr("2024-05-01"),
			Price:        price("1000"),
		},
	}
}

func sampleReference() *ReferenceData {
	return NewReferenceData(
		[]models.Customer{
			{ID: 10, Name: "Ola", Phone: "4791234567"},
			{ID: 11, Name: "Kari", Phone: "4798765432"},
		},
		[]models.Consultant{{ID: 20, Name: "Per", Phone: "4790000000"}},
		[]models.ServiceType{{ID: 30, Name: "Moving"}, {ID: 31, Name: "Cleaning"}},
	)
}

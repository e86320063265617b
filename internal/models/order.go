package models

type Order struct {
	ID           int64  `json:"orderId"`
	CustomerID   int64  `json:"customerId"`
	ConsultantID int64  `json:"consultantId"`
	Note         string `json:"note"`
}

// CreateOrderRequest is the body of POST /orders. The id is assigned by the backend.
type CreateOrderRequest struct {
	CustomerID   int64  `json:"customerId"`
	ConsultantID int64  `json:"consultantId"`
	Note         string `json:"note"`
}

package models

// Customer is owned by the backend; the overview only reads it.
type Customer struct {
	ID    int64  `json:"customerId"`
	Name  string `json:"customerName"`
	Email string `json:"customerEmail"`
	Phone Phone  `json:"customerPhone"`
}

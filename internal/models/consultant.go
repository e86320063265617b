package models

// Consultant is a sales consultant as served by /salesconsultants.
type Consultant struct {
	ID    int64  `json:"consultantId"`
	Name  string `json:"consultantName"`
	Phone Phone  `json:"consultantPhone"`
	Email string `json:"consultantEmail"`
}

package overview

import (
	"fmt"

	"github.com/BruksfildServices01/moving-backoffice/internal/models"
)

const (
	UnknownCustomer   = "Unknown Customer"
	UnknownConsultant = "Unknown Consultant"
	UnknownService    = "Unknown Service"
)

// ReferenceData is the read-only snapshot of customers, consultants and
// service types taken when a view is mounted.
type ReferenceData struct {
	customers    []models.Customer
	consultants  []models.Consultant
	serviceTypes []models.ServiceType

	customerByID    map[int64]models.Customer
	consultantByID  map[int64]models.Consultant
	serviceTypeByID map[int64]models.ServiceType
}

func NewReferenceData(
	customers []models.Customer,
	consultants []models.Consultant,
	serviceTypes []models.ServiceType,
) *ReferenceData {
	r := &ReferenceData{
		customers:       customers,
		consultants:     consultants,
		serviceTypes:    serviceTypes,
		customerByID:    make(map[int64]models.Customer, len(customers)),
		consultantByID:  make(map[int64]models.Consultant, len(consultants)),
		serviceTypeByID: make(map[int64]models.ServiceType, len(serviceTypes)),
	}

	// first occurrence wins, like a linear find over the list
	for _, c := range customers {
		if _, ok := r.customerByID[c.ID]; !ok {
			r.customerByID[c.ID] = c
		}
	}
	for _, c := range consultants {
		if _, ok := r.consultantByID[c.ID]; !ok {
			r.consultantByID[c.ID] = c
		}
	}
	for _, s := range serviceTypes {
		if _, ok := r.serviceTypeByID[s.ID]; !ok {
			r.serviceTypeByID[s.ID] = s
		}
	}
	return r
}

func (r *ReferenceData) Customers() []models.Customer {
	return append([]models.Customer(nil), r.customers...)
}

func (r *ReferenceData) Consultants() []models.Consultant {
	return append([]models.Consultant(nil), r.consultants...)
}

func (r *ReferenceData) ServiceTypes() []models.ServiceType {
	return append([]models.ServiceType(nil), r.serviceTypes...)
}

func (r *ReferenceData) Customer(id int64) (models.Customer, bool) {
	c, ok := r.customerByID[id]
	return c, ok
}

func (r *ReferenceData) Consultant(id int64) (models.Consultant, bool) {
	c, ok := r.consultantByID[id]
	return c, ok
}

// ResolveCustomerLabel returns "Name (phone)" or UnknownCustomer.
func (r *ReferenceData) ResolveCustomerLabel(id int64) string {
	c, ok := r.customerByID[id]
	if !ok {
		return UnknownCustomer
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.Phone)
}

// ResolveConsultantLabel returns "Name (phone)" or UnknownConsultant.
func (r *ReferenceData) ResolveConsultantLabel(id int64) string {
	c, ok := r.consultantByID[id]
	if !ok {
		return UnknownConsultant
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.Phone)
}

func (r *ReferenceData) ResolveServiceName(id int64) string {
	s, ok := r.serviceTypeByID[id]
	if !ok {
		return UnknownService
	}
	return s.Name
}

// Has reports whether a foreign-key field points at a loaded record.
// Fields that are not foreign keys always pass.
func (r *ReferenceData) Has(f Field, id int64) bool {
	switch f {
	case FieldCustomerID:
		_, ok := r.customerByID[id]
		return ok
	case FieldConsultantID:
		_, ok := r.consultantByID[id]
		return ok
	case FieldServiceID:
		_, ok := r.serviceTypeByID[id]
		return ok
	}
	return true
}

// Defaults are the first loaded id of each collection, zero when empty.
func (r *ReferenceData) Defaults() (customerID, consultantID, serviceID int64) {
	if len(r.customers) > 0 {
		customerID = r.customers[0].ID
	}
	if len(r.consultants) > 0 {
		consultantID = r.consultants[0].ID
	}
	if len(r.serviceTypes) > 0 {
		serviceID = r.serviceTypes[0].ID
	}
	return customerID, consultantID, serviceID
}

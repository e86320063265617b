package overview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/moving-backoffice/internal/audit"
	"github.com/BruksfildServices01/moving-backoffice/internal/models"
)

var errBackend = errors.New("backend unavailable")

// fakeStore keeps the collections in memory and records every write.
type fakeStore struct {
	mu sync.Mutex

	orders       []models.Order
	customers    []models.Customer
	consultants  []models.Consultant
	details      []models.OrderServiceDetail
	serviceTypes []models.ServiceType

	nextOrderID  int64
	nextDetailID int64

	// keepOnDelete answers DELETE with success but keeps listing the order
	keepOnDelete bool

	failList   map[string]error
	failWrite  map[string]error
	writeCalls []string
}

func newFakeStore() *fakeStore {
	from, to, date := "Storgata 1", "Kirkeveien 2", "2024-05-01"
	return &fakeStore{
		orders: []models.Order{
			{ID: 1, CustomerID: 10, ConsultantID: 20, Note: "ring first"},
			{ID: 2, CustomerID: 11, ConsultantID: 20},
		},
		customers: []models.Customer{
			{ID: 10, Name: "Ola", Phone: "4791234567"},
			{ID: 11, Name: "Kari", Phone: "4798765432"},
		},
		consultants: []models.Consultant{{ID: 20, Name: "Per", Phone: "4790000000"}},
		details: []models.OrderServiceDetail{{
			ID:           100,
			OrderID:      1,
			ServiceID:    30,
			FromAddress:  &from,
			ToAddress:    &to,
			ScheduleDate: &date,
			Price:        decimal.NullDecimal{Decimal: decimal.NewFromInt(1000), Valid: true},
		}},
		serviceTypes: []models.ServiceType{{ID: 30, Name: "Moving"}},
		nextOrderID:  500,
		nextDetailID: 900,
		failList:     map[string]error{},
		failWrite:    map[string]error{},
	}
}

func (s *fakeStore) writes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.writeCalls...)
}

func (s *fakeStore) list(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failList[name]
}

func (s *fakeStore) write(call string, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeCalls = append(s.writeCalls, call)
	return s.failWrite[name]
}

func (s *fakeStore) ListOrders(context.Context) ([]models.Order, error) {
	if err := s.list("orders"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Order(nil), s.orders...), nil
}

func (s *fakeStore) ListCustomers(context.Context) ([]models.Customer, error) {
	if err := s.list("customers"); err != nil {
		return nil, err
	}
	return s.customers, nil
}

func (s *fakeStore) ListConsultants(context.Context) ([]models.Consultant, error) {
	if err := s.list("consultants"); err != nil {
		return nil, err
	}
	return s.consultants, nil
}

func (s *fakeStore) ListOrderServiceDetails(context.Context) ([]models.OrderServiceDetail, error) {
	if err := s.list("details"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.OrderServiceDetail, len(s.details))
	for i := range s.details {
		out[i] = s.details[i].Clone()
	}
	return out, nil
}

func (s *fakeStore) ListServiceTypes(context.Context) ([]models.ServiceType, error) {
	if err := s.list("serviceTypes"); err != nil {
		return nil, err
	}
	return s.serviceTypes, nil
}

func (s *fakeStore) CreateOrder(_ context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	if err := s.write("POST /orders", "createOrder"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextOrderID++
	o := models.Order{ID: s.nextOrderID, CustomerID: req.CustomerID, ConsultantID: req.ConsultantID, Note: req.Note}
	s.orders = append(s.orders, o)
	return &o, nil
}

func (s *fakeStore) CreateOrderServiceDetail(_ context.Context, req models.CreateOrderServiceDetailRequest) (*models.OrderServiceDetail, error) {
	if err := s.write(fmt.Sprintf("POST /orderservicetypes order=%d", req.OrderID), "createDetail"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextDetailID++
	from, to, date := req.FromAddress, req.ToAddress, req.ScheduleDate
	d := models.OrderServiceDetail{
		ID:           s.nextDetailID,
		OrderID:      req.OrderID,
		ServiceID:    req.ServiceID,
		FromAddress:  &from,
		ToAddress:    &to,
		ScheduleDate: &date,
		Price:        decimal.NullDecimal{Decimal: req.Price, Valid: true},
	}
	s.details = append(s.details, d)
	return &d, nil
}

func (s *fakeStore) UpdateOrder(_ context.Context, o models.Order) error {
	if err := s.write(fmt.Sprintf("PUT /orders/%d", o.ID), "updateOrder"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == o.ID {
			s.orders[i] = o
		}
	}
	return nil
}

func (s *fakeStore) UpdateOrderServiceDetail(_ context.Context, d models.OrderServiceDetail) error {
	if err := s.write(fmt.Sprintf("PUT /orderservicetypes/%d", d.ID), "updateDetail"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.details {
		if s.details[i].ID == d.ID {
			s.details[i] = d.Clone()
		}
	}
	return nil
}

func (s *fakeStore) DeleteOrder(_ context.Context, orderID int64) error {
	if err := s.write(fmt.Sprintf("DELETE /orders/%d", orderID), "deleteOrder"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keepOnDelete {
		return nil
	}
	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	s.orders = kept
	return nil
}

// fakeAuditor records dispatched actions.
type fakeAuditor struct {
	mu      sync.Mutex
	actions []string
}

func (a *fakeAuditor) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actions = append(a.actions, ev.Action)
}

func (a *fakeAuditor) has(action string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, got := range a.actions {
		if got == action {
			return true
		}
	}
	return false
}

type fixture struct {
	store    *fakeStore
	registry *Registry
	audit    *fakeAuditor
}

func newFixture() *fixture {
	return &fixture{
		store:    newFakeStore(),
		registry: NewRegistry(time.Hour),
		audit:    &fakeAuditor{},
	}
}

package overview

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/moving-backoffice/internal/audit"
	domain "github.com/BruksfildServices01/moving-backoffice/internal/domain/overview"
	"github.com/BruksfildServices01/moving-backoffice/internal/httperr"
	"github.com/BruksfildServices01/moving-backoffice/internal/models"
)

const loadFailedMessage = "Failed to load data"

// Auditor receives use case events; *audit.Dispatcher in production.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// USE CASE
// ======================================================

// LoadView mounts a new overview: the five collections are fetched
// concurrently and the view exists only if every fetch succeeded.
type LoadView struct {
	store    domain.Store
	registry *Registry
	audit    Auditor
	tz       string
	now      func() time.Time
}

func NewLoadView(
	store domain.Store,
	registry *Registry,
	audit Auditor,
	tz string,
) *LoadView {
	return &LoadView{
		store:    store,
		registry: registry,
		audit:    audit,
		tz:       tz,
		now:      time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *LoadView) Execute(ctx context.Context) (*View, error) {
	var (
		orders       []models.Order
		customers    []models.Customer
		consultants  []models.Consultant
		details      []models.OrderServiceDetail
		serviceTypes []models.ServiceType
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = uc.store.ListOrders(gctx)
		return err
	})
	g.Go(func() (err error) {
		customers, err = uc.store.ListCustomers(gctx)
		return err
	})
	g.Go(func() (err error) {
		consultants, err = uc.store.ListConsultants(gctx)
		return err
	})
	g.Go(func() (err error) {
		details, err = uc.store.ListOrderServiceDetails(gctx)
		return err
	})
	g.Go(func() (err error) {
		serviceTypes, err = uc.store.ListServiceTypes(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Printf("ERROR: load overview: %v", err)
		return nil, fmt.Errorf("load overview: %w: %v",
			httperr.ErrBusinessMsg("load_failed", loadFailedMessage), err)
	}

	ref := domain.NewReferenceData(customers, consultants, serviceTypes)
	board := domain.NewBoard(uc.tz, orders, details)
	view := newView(uuid.NewString(), uc.tz, ref, board, uc.now())
	uc.registry.Add(view)

	uc.audit.Dispatch(audit.Event{
		ViewID: view.ID,
		Action: "overview_mounted",
		Entity: "overview",
		Metadata: map[string]any{
			"orders":  len(orders),
			"details": len(details),
		},
	})

	return view, nil
}

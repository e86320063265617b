package overview

import (
	"context"
	"fmt"
	"log"

	"github.com/BruksfildServices01/moving-backoffice/internal/audit"
	domain "github.com/BruksfildServices01/moving-backoffice/internal/domain/overview"
	"github.com/BruksfildServices01/moving-backoffice/internal/httperr"
)

// ======================================================
// DRAFT EDITS
// ======================================================

type EditDraft struct {
	registry *Registry
}

func NewEditDraft(registry *Registry) *EditDraft {
	return &EditDraft{registry: registry}
}

func (uc *EditDraft) Execute(
	_ context.Context,
	viewID string,
	field domain.Field,
	raw string,
) (*View, error) {

	v, err := uc.registry.Get(viewID)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if err := checkReference(v.ref, field, raw); err != nil {
		return nil, err
	}

	draft := v.draft
	if err := draft.Set(field, raw, v.tz); err != nil {
		return nil, err
	}
	v.draft = draft
	return v, nil
}

// ======================================================
// CREATE (two phases: order, then its detail)
// ======================================================

type CreateOrder struct {
	store    domain.Store
	registry *Registry
	audit    Auditor
}

func NewCreateOrder(
	store domain.Store,
	registry *Registry,
	audit Auditor,
) *CreateOrder {
	return &CreateOrder{
		store:    store,
		registry: registry,
		audit:    audit,
	}
}

func (uc *CreateOrder) Execute(ctx context.Context, viewID string) (*View, Resolution, error) {
	v, err := uc.registry.Get(viewID)
	if err != nil {
		return nil, Resolution{}, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	// --------------------------------------------------
	// 1️⃣ Validation, before any I/O
	// --------------------------------------------------
	draft := v.draft
	if err := draft.Validate(); err != nil {
		return nil, Resolution{}, err
	}

	// --------------------------------------------------
	// 2️⃣ Order
	// --------------------------------------------------
	order, err := uc.store.CreateOrder(ctx, draft.OrderRequest())
	if err != nil {
		log.Printf("ERROR: create order: %v", err)
		uc.audit.Dispatch(audit.Event{
			ViewID:   v.ID,
			Action:   "order_create_failed",
			Entity:   "order",
			Metadata: map[string]any{"error": err.Error()},
		})
		return nil, Resolution{}, fmt.Errorf("create order: %w: %v",
			httperr.ErrBusinessMsg("create_failed", "Failed to create the order."), err)
	}

	// --------------------------------------------------
	// 3️⃣ Detail, keyed by the id the backend just assigned
	// --------------------------------------------------
	if _, err := uc.store.CreateOrderServiceDetail(ctx, draft.DetailRequest(order.ID)); err != nil {
		log.Printf("ERROR: create detail for order %d: %v", order.ID, err)
		uc.audit.Dispatch(audit.Event{
			ViewID:   v.ID,
			Action:   "order_partially_created",
			Entity:   "order",
			EntityID: &order.ID,
			Metadata: map[string]any{"error": err.Error()},
		})
		return nil, Resolution{}, fmt.Errorf("create detail for order %d: %w: %v",
			order.ID, partiallyCreated(order.ID), err)
	}

	uc.audit.Dispatch(audit.Event{
		ViewID:   v.ID,
		Action:   "order_created",
		Entity:   "order",
		EntityID: &order.ID,
	})

	// --------------------------------------------------
	// 4️⃣ Reset the draft, then reload
	// --------------------------------------------------
	v.draft = domain.NewDraft(v.ref)

	orders, details, err := refetch(ctx, uc.store)
	if err != nil {
		log.Printf("ERROR: refresh after create of order %d: %v", order.ID, err)
		return nil, Resolution{}, fmt.Errorf("refresh after create: %w: %v",
			httperr.ErrBusinessMsg("refresh_failed", "Order created, but the list could not be reloaded."), err)
	}
	v.board.Reconcile(orders, details)

	return v, Resolution{
		OrderID: order.ID,
		Outcome: domain.OutcomeCreated,
		Notice:  "Order created.",
	}, nil
}

// partiallyCreated names the orphaned order so it can be removed by hand.
func partiallyCreated(orderID int64) error {
	return httperr.BusinessError{
		Code:    "partially_created",
		Message: fmt.Sprintf("Order %d was created without service details. Delete it or add the details again.", orderID),
		Details: map[string]any{"orderId": orderID},
	}
}

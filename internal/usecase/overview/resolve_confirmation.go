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
// OUTPUT
// ======================================================

type Resolution struct {
	OrderID int64          `json:"orderId"`
	Outcome domain.Outcome `json:"outcome"`
	Notice  string         `json:"notice"`
}

// ======================================================
// USE CASE
// ======================================================

// ResolveConfirmation resumes a save or delete with the user's answer.
type ResolveConfirmation struct {
	store    domain.Store
	registry *Registry
	audit    Auditor
}

func NewResolveConfirmation(
	store domain.Store,
	registry *Registry,
	audit Auditor,
) *ResolveConfirmation {
	return &ResolveConfirmation{
		store:    store,
		registry: registry,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ResolveConfirmation) Execute(
	ctx context.Context,
	viewID string,
	confirmationID string,
	confirmed bool,
) (*View, Resolution, error) {

	v, err := uc.registry.Get(viewID)
	if err != nil {
		return nil, Resolution{}, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	p, err := v.board.Take(confirmationID)
	if err != nil {
		return nil, Resolution{}, err
	}

	switch p.Action {
	case domain.ActionSave:
		if !confirmed {
			return v, uc.revert(v, p), nil
		}
		res, err := uc.save(ctx, v, p)
		return v, res, err

	case domain.ActionDelete:
		if !confirmed {
			v.board.SetPhase(p.OrderID, p.Prior())
			return v, Resolution{OrderID: p.OrderID, Outcome: domain.OutcomeKept}, nil
		}
		res, err := uc.delete(ctx, v, p)
		return v, res, err
	}

	return nil, Resolution{}, fmt.Errorf("resolve confirmation: unknown action %q", p.Action)
}

// --------------------------------------------------
// Declined save: snapshot wins, nothing is sent
// --------------------------------------------------

func (uc *ResolveConfirmation) revert(v *View, p domain.Pending) Resolution {
	if err := v.board.Revert(p.OrderID); err != nil {
		log.Printf("revert order %d: %v", p.OrderID, err)
	}

	uc.audit.Dispatch(audit.Event{
		ViewID:   v.ID,
		Action:   "order_reverted",
		Entity:   "order",
		EntityID: &p.OrderID,
	})

	return Resolution{
		OrderID: p.OrderID,
		Outcome: domain.OutcomeReverted,
		Notice:  "Changes discarded.",
	}
}

// --------------------------------------------------
// Confirmed save: order first, then its detail
// --------------------------------------------------

func (uc *ResolveConfirmation) save(ctx context.Context, v *View, p domain.Pending) (Resolution, error) {
	order, detail, err := v.board.Working(p.OrderID)
	if err != nil {
		return Resolution{}, err
	}

	if err := uc.store.UpdateOrder(ctx, order); err != nil {
		return Resolution{}, uc.saveFailed(v, p.OrderID, "order", err)
	}

	// an order without service details only has one record to replace
	if detail != nil {
		if err := uc.store.UpdateOrderServiceDetail(ctx, *detail); err != nil {
			return Resolution{}, uc.saveFailed(v, p.OrderID, "detail", err)
		}
	}

	if err := v.board.Commit(p.OrderID); err != nil {
		return Resolution{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ViewID:   v.ID,
		Action:   "order_saved",
		Entity:   "order",
		EntityID: &p.OrderID,
		Metadata: map[string]any{"order": order, "detail": detail},
	})

	return Resolution{
		OrderID: p.OrderID,
		Outcome: domain.OutcomeSaved,
		Notice:  "Order saved.",
	}, nil
}

// saveFailed leaves the working copy exactly as it was; the user retries.
func (uc *ResolveConfirmation) saveFailed(v *View, orderID int64, step string, cause error) error {
	v.board.SetPhase(orderID, domain.PhaseEditing)
	log.Printf("ERROR: save order %d (%s): %v", orderID, step, cause)

	uc.audit.Dispatch(audit.Event{
		ViewID:   v.ID,
		Action:   "order_save_failed",
		Entity:   "order",
		EntityID: &orderID,
		Metadata: map[string]any{"step": step, "error": cause.Error()},
	})

	return fmt.Errorf("save order %d: %w: %v",
		orderID, httperr.ErrBusinessMsg("save_failed", "Failed to save the order."), cause)
}

// --------------------------------------------------
// Confirmed delete: remove, then reload both collections
// --------------------------------------------------

func (uc *ResolveConfirmation) delete(ctx context.Context, v *View, p domain.Pending) (Resolution, error) {
	if err := uc.store.DeleteOrder(ctx, p.OrderID); err != nil {
		v.board.SetPhase(p.OrderID, p.Prior())
		log.Printf("ERROR: delete order %d: %v", p.OrderID, err)

		uc.audit.Dispatch(audit.Event{
			ViewID:   v.ID,
			Action:   "order_delete_failed",
			Entity:   "order",
			EntityID: &p.OrderID,
			Metadata: map[string]any{"error": err.Error()},
		})

		return Resolution{}, fmt.Errorf("delete order %d: %w: %v",
			p.OrderID, httperr.ErrBusinessMsg("delete_failed", "Failed to delete the order."), err)
	}

	uc.audit.Dispatch(audit.Event{
		ViewID:   v.ID,
		Action:   "order_deleted",
		Entity:   "order",
		EntityID: &p.OrderID,
	})

	// the prompt is answered; a backend that still lists the order must not
	// leave the row locked in confirming
	v.board.SetPhase(p.OrderID, p.Prior())

	orders, details, err := refetch(ctx, uc.store)
	if err != nil {
		log.Printf("ERROR: refresh after delete of order %d: %v", p.OrderID, err)
		return Resolution{}, fmt.Errorf("refresh after delete: %w: %v",
			httperr.ErrBusinessMsg("refresh_failed", "Order deleted, but the list could not be reloaded."), err)
	}
	v.board.Reconcile(orders, details)

	return Resolution{
		OrderID: p.OrderID,
		Outcome: domain.OutcomeDeleted,
		Notice:  "Order deleted.",
	}, nil
}

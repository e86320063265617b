package overview

import (
	"context"

	domain "github.com/BruksfildServices01/moving-backoffice/internal/domain/overview"
	"github.com/BruksfildServices01/moving-backoffice/internal/httperr"
)

// EditRow applies one inline input change to a row's working copy. No
// network I/O happens until the row is saved.
type EditRow struct {
	registry *Registry
}

func NewEditRow(registry *Registry) *EditRow {
	return &EditRow{registry: registry}
}

func (uc *EditRow) Execute(
	_ context.Context,
	viewID string,
	orderID int64,
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

	if err := v.board.SetField(orderID, field, raw); err != nil {
		return nil, err
	}
	return v, nil
}

// checkReference rejects ids the browser could not have offered.
func checkReference(ref *domain.ReferenceData, field domain.Field, raw string) error {
	if !field.IsReference() {
		return nil
	}
	id, err := domain.ParseID(field, raw)
	if err != nil {
		return err
	}
	if !ref.Has(field, id) {
		return httperr.ErrBusinessMsg("unknown_reference", "Unknown "+string(field)+" selected.")
	}
	return nil
}

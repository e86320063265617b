package overview

import (
	"context"

	domain "github.com/BruksfildServices01/moving-backoffice/internal/domain/overview"
	"github.com/BruksfildServices01/moving-backoffice/internal/dto"
)

// RequestConfirmation is the first half of save and delete: it opens the
// prompt and returns it instead of blocking. ResolveConfirmation resumes.
type RequestConfirmation struct {
	registry *Registry
	action   domain.Action
}

func NewRequestSave(registry *Registry) *RequestConfirmation {
	return &RequestConfirmation{registry: registry, action: domain.ActionSave}
}

func NewRequestDelete(registry *Registry) *RequestConfirmation {
	return &RequestConfirmation{registry: registry, action: domain.ActionDelete}
}

func (uc *RequestConfirmation) Execute(
	_ context.Context,
	viewID string,
	orderID int64,
) (dto.ConfirmationDTO, error) {

	v, err := uc.registry.Get(viewID)
	if err != nil {
		return dto.ConfirmationDTO{}, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	p, err := v.board.RequestConfirmation(orderID, uc.action)
	if err != nil {
		return dto.ConfirmationDTO{}, err
	}
	return confirmationDTO(p), nil
}

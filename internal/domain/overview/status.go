package overview

import "github.com/BruksfildServices01/moving-backoffice/internal/httperr"

// ===============================
// Row phase
// ===============================

type Phase string

const (
	PhaseViewing    Phase = "viewing"
	PhaseEditing    Phase = "editing"
	PhaseConfirming Phase = "confirming"
)

// Action is what a pending confirmation will do once the user answers.
type Action string

const (
	ActionSave   Action = "save"
	ActionDelete Action = "delete"
)

// Outcome is the terminal result of one confirm/decline round.
type Outcome string

const (
	OutcomeSaved    Outcome = "saved"
	OutcomeReverted Outcome = "reverted"
	OutcomeDeleted  Outcome = "deleted"
	OutcomeKept     Outcome = "kept"
	OutcomeCreated  Outcome = "created"
)

// ===============================
// Validations
// ===============================

// CanEdit rejects edits while a confirmation prompt is open for the row.
func CanEdit(current Phase) error {
	if current == PhaseConfirming {
		return httperr.ErrBusinessMsg("row_awaiting_confirmation", "Answer the pending confirmation first.")
	}
	return nil
}

// CanRequestConfirmation allows one open prompt per row.
func CanRequestConfirmation(current Phase) error {
	return CanEdit(current)
}

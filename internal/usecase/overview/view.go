package overview

import (
	"sync"
	"time"

	domain "github.com/BruksfildServices01/moving-backoffice/internal/domain/overview"
)

// View is one mounted overview. It owns its board, reference snapshot and
// draft; every use case holds mu for its whole run, so the multi-step
// sequences of one view never interleave.
type View struct {
	ID string

	mu       sync.Mutex
	tz       string
	ref      *domain.ReferenceData
	board    *domain.Board
	draft    domain.Draft
	lastUsed time.Time
}

func newView(id, tz string, ref *domain.ReferenceData, board *domain.Board, now time.Time) *View {
	return &View{
		ID:       id,
		tz:       tz,
		ref:      ref,
		board:    board,
		draft:    domain.NewDraft(ref),
		lastUsed: now,
	}
}

// Board exposes the state container; callers must not keep it past the
// current action.
func (v *View) Board() *domain.Board {
	return v.board
}

func (v *View) Reference() *domain.ReferenceData {
	return v.ref
}

func (v *View) Draft() domain.Draft {
	return v.draft
}

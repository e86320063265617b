package overview

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/moving-backoffice/internal/httperr"
	"github.com/BruksfildServices01/moving-backoffice/internal/models"
)

// Pending is an open confirmation prompt for one row.
type Pending struct {
	ID      string
	OrderID int64
	Action  Action
	Order   models.Order
	Detail  *models.OrderServiceDetail

	prior Phase
}

// Board is the editable state of one overview: the working copies bound to
// the inputs and the last server-confirmed snapshot of every row. Rows are
// always addressed by order id, never by position. Board is not safe for
// concurrent use; the owning view serializes access.
type Board struct {
	tz string

	orders  []models.Order
	details []models.OrderServiceDetail

	originalOrders  []models.Order
	originalDetails []models.OrderServiceDetail

	phases  map[int64]Phase
	pending map[string]*Pending
}

func NewBoard(tz string, orders []models.Order, details []models.OrderServiceDetail) *Board {
	return &Board{
		tz:              tz,
		orders:          cloneOrders(orders),
		details:         cloneDetails(details),
		originalOrders:  cloneOrders(orders),
		originalDetails: cloneDetails(details),
		phases:          make(map[int64]Phase),
		pending:         make(map[string]*Pending),
	}
}

// Rows projects the working copies.
func (b *Board) Rows() []Row {
	return Project(b.orders, b.details)
}

func (b *Board) Phase(orderID int64) Phase {
	if p, ok := b.phases[orderID]; ok {
		return p
	}
	return PhaseViewing
}

// Dirty reports whether the working copy of a row differs from its snapshot.
func (b *Board) Dirty(orderID int64) bool {
	i := b.orderIndex(orderID)
	if i < 0 {
		return false
	}
	j := indexOrder(b.originalOrders, orderID)
	if j < 0 || b.orders[i] != b.originalOrders[j] {
		return true
	}

	di := indexDetailByOrder(b.details, orderID)
	if di < 0 {
		return false
	}
	sj := indexDetail(b.originalDetails, b.details[di].ID)
	return sj < 0 || !b.details[di].Equal(b.originalDetails[sj])
}

// Working returns copies of the row's working order and detail.
func (b *Board) Working(orderID int64) (models.Order, *models.OrderServiceDetail, error) {
	i := b.orderIndex(orderID)
	if i < 0 {
		return models.Order{}, nil, errRowNotFound()
	}
	return b.orders[i], b.workingDetail(orderID), nil
}

// Snapshot returns copies of the row's last server-confirmed values.
func (b *Board) Snapshot(orderID int64) (models.Order, *models.OrderServiceDetail, bool) {
	j := indexOrder(b.originalOrders, orderID)
	if j < 0 {
		return models.Order{}, nil, false
	}
	var detail *models.OrderServiceDetail
	if di := indexDetailByOrder(b.originalDetails, orderID); di >= 0 {
		d := b.originalDetails[di].Clone()
		detail = &d
	}
	return b.originalOrders[j], detail, true
}

// SetField applies one input change to the working copy of a row and moves
// the row to editing. Nothing is written when the value does not parse.
func (b *Board) SetField(orderID int64, f Field, raw string) error {
	if err := CanEdit(b.Phase(orderID)); err != nil {
		return err
	}

	i := b.orderIndex(orderID)
	if i < 0 {
		return errRowNotFound()
	}

	switch {
	case f.IsOrderField():
		o := b.orders[i]
		if err := applyOrderField(&o, f, raw); err != nil {
			return err
		}
		b.orders[i] = o

	case f.IsDetailField():
		di := indexDetailByOrder(b.details, orderID)
		if di < 0 {
			return httperr.ErrBusinessMsg("detail_not_found", "This order has no service details.")
		}
		d := b.details[di].Clone()
		if err := applyDetailField(&d, f, raw, b.tz); err != nil {
			return err
		}
		b.details[di] = d

	default:
		return errUnknownField(f)
	}

	b.phases[orderID] = PhaseEditing
	return nil
}

// RequestConfirmation opens a prompt for the row. This is the suspension
// point of save and delete: nothing leaves the process until Take is called
// with the user's answer.
func (b *Board) RequestConfirmation(orderID int64, action Action) (Pending, error) {
	i := b.orderIndex(orderID)
	if i < 0 {
		return Pending{}, errRowNotFound()
	}

	prior := b.Phase(orderID)
	if err := CanRequestConfirmation(prior); err != nil {
		return Pending{}, err
	}

	p := &Pending{
		ID:      uuid.NewString(),
		OrderID: orderID,
		Action:  action,
		Order:   b.orders[i],
		Detail:  b.workingDetail(orderID),
		prior:   prior,
	}
	b.pending[p.ID] = p
	b.phases[orderID] = PhaseConfirming
	return *p, nil
}

// Take removes a pending confirmation. Each id can be taken once.
func (b *Board) Take(confirmationID string) (Pending, error) {
	p, ok := b.pending[confirmationID]
	if !ok {
		return Pending{}, httperr.ErrBusinessMsg("confirmation_not_found", "No such pending confirmation.")
	}
	delete(b.pending, confirmationID)
	return *p, nil
}

// Prior is the phase the row had before the prompt opened.
func (p Pending) Prior() Phase {
	return p.prior
}

// Revert overwrites the working order and detail with their snapshots.
func (b *Board) Revert(orderID int64) error {
	i := b.orderIndex(orderID)
	if i < 0 {
		return errRowNotFound()
	}

	if j := indexOrder(b.originalOrders, orderID); j >= 0 {
		b.orders[i] = b.originalOrders[j]
	}

	if di := indexDetailByOrder(b.details, orderID); di >= 0 {
		if sj := indexDetail(b.originalDetails, b.details[di].ID); sj >= 0 {
			b.details[di] = b.originalDetails[sj].Clone()
		}
	}

	delete(b.phases, orderID)
	return nil
}

// Commit makes the working copy of a row its new snapshot. Other rows'
// snapshots are untouched.
func (b *Board) Commit(orderID int64) error {
	i := b.orderIndex(orderID)
	if i < 0 {
		return errRowNotFound()
	}

	if j := indexOrder(b.originalOrders, orderID); j >= 0 {
		b.originalOrders[j] = b.orders[i]
	} else {
		b.originalOrders = append(b.originalOrders, b.orders[i])
	}

	if di := indexDetailByOrder(b.details, orderID); di >= 0 {
		d := b.details[di].Clone()
		if sj := indexDetail(b.originalDetails, d.ID); sj >= 0 {
			b.originalDetails[sj] = d
		} else {
			b.originalDetails = append(b.originalDetails, d)
		}
	}

	delete(b.phases, orderID)
	return nil
}

// SetPhase forces a row phase; used to return a row to editing after a
// failed write or to its prior phase after a declined delete.
func (b *Board) SetPhase(orderID int64, p Phase) {
	if p == PhaseViewing {
		delete(b.phases, orderID)
		return
	}
	b.phases[orderID] = p
}

// Reconcile installs freshly fetched collections. Snapshots are replaced
// wholesale. Working copies follow the server except for rows still being
// edited or awaiting confirmation, which keep their unsaved values. Rows that
// disappeared lose their phase and any open prompt.
func (b *Board) Reconcile(orders []models.Order, details []models.OrderServiceDetail) {
	nextOrders := cloneOrders(orders)
	nextDetails := cloneDetails(details)

	for orderID, phase := range b.phases {
		if phase == PhaseViewing {
			continue
		}
		ni := indexOrder(nextOrders, orderID)
		if ni < 0 {
			continue
		}
		if i := b.orderIndex(orderID); i >= 0 {
			nextOrders[ni] = b.orders[i]
		}
		if di := indexDetailByOrder(b.details, orderID); di >= 0 {
			if nj := indexDetail(nextDetails, b.details[di].ID); nj >= 0 {
				nextDetails[nj] = b.details[di].Clone()
			}
		}
	}

	for orderID := range b.phases {
		if indexOrder(nextOrders, orderID) < 0 {
			delete(b.phases, orderID)
		}
	}
	for id, p := range b.pending {
		if indexOrder(nextOrders, p.OrderID) < 0 {
			delete(b.pending, id)
		}
	}

	b.orders = nextOrders
	b.details = nextDetails
	b.originalOrders = cloneOrders(orders)
	b.originalDetails = cloneDetails(details)
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func errRowNotFound() error {
	return httperr.ErrBusinessMsg("row_not_found", "Order not found in this view.")
}

func (b *Board) orderIndex(orderID int64) int {
	return indexOrder(b.orders, orderID)
}

func (b *Board) workingDetail(orderID int64) *models.OrderServiceDetail {
	di := indexDetailByOrder(b.details, orderID)
	if di < 0 {
		return nil
	}
	d := b.details[di].Clone()
	return &d
}

func indexOrder(orders []models.Order, orderID int64) int {
	for i := range orders {
		if orders[i].ID == orderID {
			return i
		}
	}
	return -1
}

func indexDetail(details []models.OrderServiceDetail, detailID int64) int {
	for i := range details {
		if details[i].ID == detailID {
			return i
		}
	}
	return -1
}

func indexDetailByOrder(details []models.OrderServiceDetail, orderID int64) int {
	for i := range details {
		if details[i].OrderID == orderID {
			return i
		}
	}
	return -1
}

func cloneOrders(in []models.Order) []models.Order {
	return append([]models.Order(nil), in...)
}

func cloneDetails(in []models.OrderServiceDetail) []models.OrderServiceDetail {
	out := make([]models.OrderServiceDetail, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

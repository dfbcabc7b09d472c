package repository

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sriluxe/hotel-reservation/internal/model"
	"github.com/sriluxe/hotel-reservation/internal/utils"
)

// RoomFinder is the slice of the catalog the ledger depends on.  The
// ledger must resolve the nightly rate through it when pricing a new
// reservation; prices are never hardcoded here.
type RoomFinder interface {
	GetRoomByID(ctx context.Context, id string) (model.Room, error)
}

// LedgerRepo is the booking ledger: every reservation and bill in the
// system, guarded by a single mutex.  All timestamps are UTC.
//
// Mutations follow validate-then-mutate: every input is checked and
// every identifier minted before the first field changes, so a failed
// operation leaves the ledger exactly as it found it.  Each mutation
// first waits out the configured simulated latency, which stands in
// for the upstream round trip the portal models; callers that await
// the mutation observe read-your-writes afterwards.
type LedgerRepo struct {
	mu      sync.Mutex
	rooms   RoomFinder
	latency time.Duration

	reservations map[string]*model.Reservation
	resOrder     []string
	// bills is keyed by reservation ID, which makes the one-bill-per-
	// reservation invariant structural rather than checked.
	bills map[string]*model.Bill
}

// NewLedgerRepo builds an empty ledger.  rooms must be non-nil;
// latency may be zero to disable the simulated delay (tests do).
func NewLedgerRepo(rooms RoomFinder, latency time.Duration) *LedgerRepo {
	if rooms == nil {
		panic("nil RoomFinder passed to NewLedgerRepo")
	}
	return &LedgerRepo{
		rooms:        rooms,
		latency:      latency,
		reservations: make(map[string]*model.Reservation),
		bills:        make(map[string]*model.Bill),
	}
}

// delay blocks for the configured simulated latency, honoring context
// cancellation.  A zero latency returns immediately.
func (r *LedgerRepo) delay(ctx context.Context) error {
	if r.latency <= 0 {
		return nil
	}
	t := time.NewTimer(r.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// nightsBetween counts billable nights, rounding partial days up the
// way the booking flow always has.
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// overlaps reports whether two half-open stay windows intersect.
func overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// activeStatus reports whether a reservation in this status still
// occupies its room for overlap purposes.
func activeStatus(s model.ReservationStatus) bool {
	return s == model.StatusPending || s == model.StatusConfirmed || s == model.StatusCheckedIn
}

// CreateReservation prices and records a new stay from the caller's
// draft.  The window must contain at least one night
// (ErrInvalidDateRange), the party must be non-empty
// (ErrInvalidGuestCount), the room must exist in the catalog
// (ErrRoomNotFound) and must not already have an active reservation
// overlapping the window (ErrRoomUnavailable).  The total is nights
// times the room's nightly rate and the reservation starts confirmed.
func (r *LedgerRepo) CreateReservation(ctx context.Context, draft model.ReservationDraft) (model.Reservation, error) {
	if err := r.delay(ctx); err != nil {
		return model.Reservation{}, err
	}
	nights := nightsBetween(draft.CheckIn, draft.CheckOut)
	if nights <= 0 {
		return model.Reservation{}, ErrInvalidDateRange
	}
	if draft.Guests < 1 {
		return model.Reservation{}, ErrInvalidGuestCount
	}
	room, err := r.rooms.GetRoomByID(ctx, draft.RoomID)
	if err != nil {
		return model.Reservation{}, err
	}
	id, err := utils.NewID("res")
	if err != nil {
		return model.Reservation{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rid := range r.resOrder {
		other := r.reservations[rid]
		if other.RoomID == draft.RoomID && activeStatus(other.Status) &&
			overlaps(draft.CheckIn, draft.CheckOut, other.CheckIn, other.CheckOut) {
			return model.Reservation{}, ErrRoomUnavailable
		}
	}
	now := time.Now().UTC()
	res := &model.Reservation{
		ID:            id,
		RoomID:        draft.RoomID,
		UserID:        draft.UserID,
		CheckIn:       draft.CheckIn,
		CheckOut:      draft.CheckOut,
		Guests:        draft.Guests,
		Status:        model.StatusConfirmed,
		HasCreditCard: draft.HasCreditCard,
		TotalAmount:   int64(nights) * room.Price,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.reservations[id] = res
	r.resOrder = append(r.resOrder, id)
	return *res, nil
}

// UpdateReservation applies a shallow merge of the patch.  Absent IDs
// yield ErrReservationNotFound.  A patched status must be a legal
// transition from the current one (ErrInvalidTransition); this is also
// the path an external scheduler uses to flag confirmed stays as
// no-show.  The total amount is deliberately not recomputed when the
// window changes.
func (r *LedgerRepo) UpdateReservation(ctx context.Context, id string, patch model.ReservationPatch) (model.Reservation, error) {
	if err := r.delay(ctx); err != nil {
		return model.Reservation{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.reservations[id]
	if !ok {
		return model.Reservation{}, ErrReservationNotFound
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return model.Reservation{}, ErrInvalidTransition
		}
		if !res.Status.CanTransitionTo(*patch.Status) {
			return model.Reservation{}, ErrInvalidTransition
		}
	}
	if patch.CheckIn != nil {
		res.CheckIn = *patch.CheckIn
	}
	if patch.CheckOut != nil {
		res.CheckOut = *patch.CheckOut
	}
	if patch.Guests != nil {
		res.Guests = *patch.Guests
	}
	if patch.HasCreditCard != nil {
		res.HasCreditCard = *patch.HasCreditCard
	}
	if patch.Status != nil {
		res.Status = *patch.Status
	}
	res.UpdatedAt = time.Now().UTC()
	return *res, nil
}

// transitionTo is the shared guard for the named lifecycle operations.
// Caller must hold the mutex.
func (r *LedgerRepo) transitionTo(id string, next model.ReservationStatus) (*model.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	if !res.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}
	res.Status = next
	res.UpdatedAt = time.Now().UTC()
	return res, nil
}

// CancelReservation moves a pending or confirmed stay to cancelled.
// Cancelling a stay that is already checked in or out is rejected with
// ErrInvalidTransition.
func (r *LedgerRepo) CancelReservation(ctx context.Context, id string) error {
	if err := r.delay(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.transitionTo(id, model.StatusCancelled)
	return err
}

// CheckIn moves a confirmed stay to checked-in.
func (r *LedgerRepo) CheckIn(ctx context.Context, id string) error {
	if err := r.delay(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.transitionTo(id, model.StatusCheckedIn)
	return err
}

// CheckOut settles a stay.  The reservation moves to checked-out (a
// second call is a legal no-op on the status) and the bill is marked
// paid with the given method.  If no bill was opened during the stay,
// one is synthesized containing the single room charge for the
// reservation's total.  The returned flag reports whether this call
// settled the bill; repeat calls return the already-paid bill
// unchanged with the flag false, never duplicating line items.
func (r *LedgerRepo) CheckOut(ctx context.Context, id string, method model.PaymentMethod) (model.Bill, bool, error) {
	if err := r.delay(ctx); err != nil {
		return model.Bill{}, false, err
	}
	// Mint IDs up front so the mutation below cannot fail halfway.
	billID, err := utils.NewID("bill")
	if err != nil {
		return model.Bill{}, false, err
	}
	itemID, err := utils.NewID("item")
	if err != nil {
		return model.Bill{}, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.reservations[id]
	if !ok {
		return model.Bill{}, false, ErrReservationNotFound
	}
	if !res.Status.CanTransitionTo(model.StatusCheckedOut) {
		return model.Bill{}, false, ErrInvalidTransition
	}
	res.Status = model.StatusCheckedOut
	now := time.Now().UTC()
	res.UpdatedAt = now

	if bill, ok := r.bills[id]; ok {
		if bill.PaymentStatus == model.PaymentPaid {
			return cloneBill(bill), false, nil
		}
		bill.PaymentMethod = method
		bill.PaymentStatus = model.PaymentPaid
		bill.UpdatedAt = now
		return cloneBill(bill), true, nil
	}
	bill := &model.Bill{
		ID:            billID,
		ReservationID: id,
		UserID:        res.UserID,
		Items: []model.BillItem{{
			ID:          itemID,
			Description: fmt.Sprintf("Room charge (%s)", res.RoomID),
			Amount:      res.TotalAmount,
			Category:    model.CategoryRoom,
		}},
		TotalAmount:   res.TotalAmount,
		PaymentMethod: method,
		PaymentStatus: model.PaymentPaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.bills[id] = bill
	return cloneBill(bill), true, nil
}

// AddBillItem appends a charge to the reservation's bill, opening a
// pending bill holding just this item when none exists yet.  The item
// receives a minted ID and the bill total grows by exactly the item's
// amount, keeping the sum invariant intact.
func (r *LedgerRepo) AddBillItem(ctx context.Context, reservationID string, item model.BillItem) (model.Bill, error) {
	if err := r.delay(ctx); err != nil {
		return model.Bill{}, err
	}
	itemID, err := utils.NewID("item")
	if err != nil {
		return model.Bill{}, err
	}
	billID, err := utils.NewID("bill")
	if err != nil {
		return model.Bill{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.reservations[reservationID]
	if !ok {
		return model.Bill{}, ErrReservationNotFound
	}
	now := time.Now().UTC()
	item.ID = itemID
	if bill, ok := r.bills[reservationID]; ok {
		bill.Items = append(bill.Items, item)
		bill.TotalAmount += item.Amount
		bill.UpdatedAt = now
		return cloneBill(bill), nil
	}
	bill := &model.Bill{
		ID:            billID,
		ReservationID: reservationID,
		UserID:        res.UserID,
		Items:         []model.BillItem{item},
		TotalAmount:   item.Amount,
		PaymentStatus: model.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.bills[reservationID] = bill
	return cloneBill(bill), nil
}

// ReservationsByUser returns the user's reservations in creation
// order.  A user with no reservations gets an empty slice, never an
// error.
func (r *LedgerRepo) ReservationsByUser(ctx context.Context, userID string) []model.Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Reservation, 0)
	for _, id := range r.resOrder {
		if res := r.reservations[id]; res.UserID == userID {
			out = append(out, *res)
		}
	}
	return out
}

// ReservationByID fetches one reservation.
func (r *LedgerRepo) ReservationByID(ctx context.Context, id string) (model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.reservations[id]
	if !ok {
		return model.Reservation{}, ErrReservationNotFound
	}
	return *res, nil
}

// BillByReservation fetches the bill opened for a reservation, or
// ErrBillNotFound when none exists yet.
func (r *LedgerRepo) BillByReservation(ctx context.Context, reservationID string) (model.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bill, ok := r.bills[reservationID]
	if !ok {
		return model.Bill{}, ErrBillNotFound
	}
	return cloneBill(bill), nil
}

// cloneBill copies a bill including its item slice so callers can
// never alias ledger-internal state.
func cloneBill(b *model.Bill) model.Bill {
	out := *b
	out.Items = make([]model.BillItem, len(b.Items))
	copy(out.Items, b.Items)
	return out
}

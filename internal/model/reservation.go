package model

import "time"

// ReservationStatus enumerates the lifecycle states of a reservation.
// The lifecycle only moves forward: pending -> confirmed -> checked-in
// -> checked-out, with cancelled reachable from pending or confirmed
// and no-show reachable from confirmed.  checked-out, cancelled and
// no-show are terminal.
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked-in"
	StatusCheckedOut ReservationStatus = "checked-out"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusNoShow     ReservationStatus = "no-show"
)

// transitions maps each status to the set of statuses it may move to.
// Terminal states have no entries.
var transitions = map[ReservationStatus]map[ReservationStatus]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {StatusCheckedIn: true, StatusCancelled: true, StatusNoShow: true},
	StatusCheckedIn: {StatusCheckedOut: true},
}

// CanTransitionTo reports whether moving from s to next is legal.
// Staying on the same status is always allowed so that partial
// updates which re-send the current status are not rejected.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	if s == next {
		return true
	}
	return transitions[s][next]
}

// Valid reports whether s is a member of the closed status enum.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Reservation records a stay booked for a room.  TotalAmount is
// derived once at creation from the nightly rate and is deliberately
// not recomputed when dates are edited afterwards.  UpdatedAt is
// refreshed by every mutating ledger operation.
//
// Fields:
//  ID            – ledger identifier.
//  RoomID        – booked room (catalog reference).
//  UserID        – guest who holds the reservation.
//  CheckIn       – start of the stay.
//  CheckOut      – end of the stay, strictly after CheckIn.
//  Guests        – party size, positive.
//  Status        – lifecycle state, see ReservationStatus.
//  HasCreditCard – whether a card is on file for the stay.
//  TotalAmount   – nights x nightly rate in whole LKR, fixed at creation.
//  CreatedAt     – creation timestamp (UTC).
//  UpdatedAt     – last mutation timestamp (UTC), never before CreatedAt.
type Reservation struct {
	ID            string            `json:"id"`
	RoomID        string            `json:"room_id"`
	UserID        string            `json:"user_id"`
	CheckIn       time.Time         `json:"check_in"`
	CheckOut      time.Time         `json:"check_out"`
	Guests        int               `json:"guests"`
	Status        ReservationStatus `json:"status"`
	HasCreditCard bool              `json:"has_credit_card"`
	TotalAmount   int64             `json:"total_amount"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ReservationDraft is the transient selection a guest assembles before
// a reservation exists.  It is owned by the caller and handed to the
// ledger as a value, so the ledger stays the single source of truth
// once the reservation is created.
type ReservationDraft struct {
	RoomID        string    `json:"room_id"`
	UserID        string    `json:"user_id"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	Guests        int       `json:"guests"`
	HasCreditCard bool      `json:"has_credit_card"`
}

// ReservationPatch carries the optional fields of a generic update.
// Nil pointers leave the corresponding field untouched.  A non-nil
// Status must be a legal transition from the current status.
type ReservationPatch struct {
	CheckIn       *time.Time         `json:"check_in"`
	CheckOut      *time.Time         `json:"check_out"`
	Guests        *int               `json:"guests"`
	Status        *ReservationStatus `json:"status"`
	HasCreditCard *bool              `json:"has_credit_card"`
}

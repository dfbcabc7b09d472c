// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrInvalidTransition indicates that a status change would
// move a reservation backwards through its lifecycle, while
// ErrRoomUnavailable signals that the requested room is already booked
// for an overlapping window.
package repository

import "errors"

// ErrHotelNotFound is returned when a hotel ID does not exist in the
// catalog. Handlers should translate this into an HTTP 404 response.
var ErrHotelNotFound = errors.New("hotel not found")

// ErrRoomNotFound is returned when a room ID does not exist in the
// catalog. Handlers should translate this into an HTTP 404 response.
var ErrRoomNotFound = errors.New("room not found")

// ErrReservationNotFound is returned when a ledger operation references
// a reservation ID that was never created.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrBillNotFound is returned by the singular bill lookup when no bill
// has been opened for the reservation yet.
var ErrBillNotFound = errors.New("bill not found")

// ErrUserNotFound is returned when a user ID does not exist in the
// identity store.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when registration is attempted with an
// email that already has an account. Handlers should translate this
// into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrInvalidCredentials is returned when login email/password
// verification fails. Handlers should translate this into HTTP 401
// without revealing which of the two was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidDateRange is returned when a reservation window yields a
// non-positive number of nights.
var ErrInvalidDateRange = errors.New("check-out must be after check-in")

// ErrInvalidGuestCount is returned when a reservation is created for
// fewer than one guest.
var ErrInvalidGuestCount = errors.New("guest count must be positive")

// ErrRoomUnavailable is returned when the requested room already has an
// active reservation overlapping the requested window. Handlers should
// translate this into an HTTP 409 response.
var ErrRoomUnavailable = errors.New("room unavailable for the requested dates")

// ErrInvalidTransition is returned when a status change is not a legal
// move through the reservation lifecycle, e.g. checking in a cancelled
// reservation. Handlers should translate this into an HTTP 409
// response.
var ErrInvalidTransition = errors.New("illegal reservation status transition")

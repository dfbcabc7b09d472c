package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sriluxe/hotel-reservation/internal/model"
	"github.com/sriluxe/hotel-reservation/internal/repository"
)

// ReservationHandler serves the signed-in guest's booking flow.  All
// methods assume JWT authentication ran first; every lookup is scoped
// to the caller so one guest can never read or mutate another guest's
// reservations.  A reservation that exists but belongs to someone else
// is reported as not found rather than forbidden, so IDs cannot be
// probed.
type ReservationHandler struct {
	Ledger *repository.LedgerRepo
}

func NewReservationHandler(ledger *repository.LedgerRepo) *ReservationHandler {
	if ledger == nil {
		panic("nil LedgerRepo passed to NewReservationHandler")
	}
	return &ReservationHandler{Ledger: ledger}
}

type createReservationReq struct {
	RoomID        string `json:"room_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Guests        int    `json:"guests"`
	HasCreditCard bool   `json:"has_credit_card"`
}

// Create handles POST /v1/reservations.  The draft is priced and
// recorded in one step; the response carries the full reservation
// including the computed total.
func (h *ReservationHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.RoomID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id is required"})
	}
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_in date"})
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_out date"})
	}

	draft := model.ReservationDraft{
		RoomID:        req.RoomID,
		UserID:        uid,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        req.Guests,
		HasCreditCard: req.HasCreditCard,
	}
	res, err := h.Ledger.CreateReservation(c.Request().Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidDateRange):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "check-out must be after check-in"})
		case errors.Is(err, repository.ErrInvalidGuestCount):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "at least one guest required"})
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		case errors.Is(err, repository.ErrRoomUnavailable):
			return c.JSON(http.StatusConflict, echo.Map{"error": "room unavailable for the selected dates"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reservation failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"reservation": res})
}

// List handles GET /v1/reservations and returns the caller's
// reservations in creation order.
func (h *ReservationHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	out := h.Ledger.ReservationsByUser(c.Request().Context(), uid)
	return c.JSON(http.StatusOK, echo.Map{"reservations": out})
}

// ownReservation loads a reservation and enforces that it belongs to
// the caller.  On failure the response has already been written and
// ok is false.
func (h *ReservationHandler) ownReservation(c echo.Context) (model.Reservation, bool) {
	uid, err := getUserID(c)
	if err != nil {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		return model.Reservation{}, false
	}
	res, err := h.Ledger.ReservationByID(c.Request().Context(), c.Param("id"))
	if err != nil || res.UserID != uid {
		_ = c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		return model.Reservation{}, false
	}
	return res, true
}

// Get handles GET /v1/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	res, ok := h.ownReservation(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, echo.Map{"reservation": res})
}

// Cancel handles POST /v1/reservations/:id/cancel.  Only pending and
// confirmed stays can be cancelled; anything later in the lifecycle is
// a conflict.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	res, ok := h.ownReservation(c)
	if !ok {
		return nil
	}
	if err := h.Ledger.CancelReservation(c.Request().Context(), res.ID); err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "reservation can no longer be cancelled"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// GetBill handles GET /v1/reservations/:id/bill.  A reservation with
// no charges yet has no bill and yields 404.
func (h *ReservationHandler) GetBill(c echo.Context) error {
	res, ok := h.ownReservation(c)
	if !ok {
		return nil
	}
	bill, err := h.Ledger.BillByReservation(c.Request().Context(), res.ID)
	if err != nil {
		if errors.Is(err, repository.ErrBillNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no bill for reservation"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bill failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bill": bill})
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sriluxe/hotel-reservation/internal/model"
	"github.com/sriluxe/hotel-reservation/internal/queue"
	"github.com/sriluxe/hotel-reservation/internal/repository"
)

// DeskHandler serves the front-desk and back-office flows: check-in,
// check-out, billing and reservation management across all guests.
// The router guards these routes with RequireRole(clerk, admin); the
// room-availability toggle is admin only.
//
// Publish is injected so tests can run the handler without a broker;
// a nil Publish simply skips event emission.
type DeskHandler struct {
	Ledger  *repository.LedgerRepo
	Catalog *repository.CatalogRepo
	Users   *repository.UserRepo
	Publish func(ctx context.Context, ev queue.BillSettledEvent) error
}

func NewDeskHandler(ledger *repository.LedgerRepo, catalog *repository.CatalogRepo, users *repository.UserRepo,
	publish func(ctx context.Context, ev queue.BillSettledEvent) error) *DeskHandler {
	if ledger == nil || catalog == nil || users == nil {
		panic("nil repository passed to NewDeskHandler")
	}
	return &DeskHandler{Ledger: ledger, Catalog: catalog, Users: users, Publish: publish}
}

// GetReservation handles GET /v1/desk/reservations/:id.  Unlike the
// guest endpoint this one is not scoped to the caller.
func (h *DeskHandler) GetReservation(c echo.Context) error {
	res, err := h.Ledger.ReservationByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservation": res})
}

// ListUserReservations handles GET /v1/desk/users/:id/reservations.
func (h *DeskHandler) ListUserReservations(c echo.Context) error {
	ctx := c.Request().Context()
	uid := c.Param("id")
	if _, err := h.Users.GetByID(ctx, uid); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	out := h.Ledger.ReservationsByUser(ctx, uid)
	return c.JSON(http.StatusOK, echo.Map{"reservations": out})
}

// CheckIn handles POST /v1/desk/reservations/:id/check-in.  Only a
// confirmed stay can be checked in; anything else is a conflict.
func (h *DeskHandler) CheckIn(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	if err := h.Ledger.CheckIn(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrReservationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		case errors.Is(err, repository.ErrInvalidTransition):
			return c.JSON(http.StatusConflict, echo.Map{"error": "reservation cannot be checked in"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "check-in failed"})
	}
	res, err := h.Ledger.ReservationByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load reservation failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservation": res})
}

type checkOutReq struct {
	PaymentMethod string `json:"payment_method"`
}

// CheckOut handles POST /v1/desk/reservations/:id/check-out.  The stay
// moves to checked-out and its bill is settled with the given payment
// method; repeating the call returns the same settled bill.  A
// BillSettledEvent is published on first settlement only, best-effort,
// so a broker outage never fails the check-out and repeated calls do
// not duplicate billing log lines.
func (h *DeskHandler) CheckOut(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	var req checkOutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	method := model.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment_method must be cash or credit_card"})
	}

	bill, settled, err := h.Ledger.CheckOut(ctx, id, method)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrReservationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		case errors.Is(err, repository.ErrInvalidTransition):
			return c.JSON(http.StatusConflict, echo.Map{"error": "reservation cannot be checked out"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "check-out failed"})
	}

	if h.Publish != nil && settled {
		res, lerr := h.Ledger.ReservationByID(ctx, id)
		if lerr == nil {
			ev := queue.BillSettledEvent{
				BillID:        bill.ID,
				ReservationID: bill.ReservationID,
				UserID:        bill.UserID,
				RoomID:        res.RoomID,
				ItemCount:     len(bill.Items),
				TotalAmount:   bill.TotalAmount,
				PaymentMethod: string(bill.PaymentMethod),
				SettledAt:     time.Now().UTC().Format(time.RFC3339),
			}
			// Detach from the request context; the response should not
			// wait on the broker.
			go func() { _ = h.Publish(context.Background(), ev) }()
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"bill": bill})
}

type addBillItemReq struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
}

// AddBillItem handles POST /v1/desk/reservations/:id/bill/items.  The
// first charge on a stay opens a pending bill.
func (h *DeskHandler) AddBillItem(c echo.Context) error {
	var req addBillItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "description is required"})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
	}
	category := model.BillCategory(req.Category)
	if !category.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown bill category"})
	}

	bill, err := h.Ledger.AddBillItem(c.Request().Context(), c.Param("id"), model.BillItem{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    category,
	})
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add bill item failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"bill": bill})
}

type updateReservationReq struct {
	CheckIn       *string `json:"check_in"`
	CheckOut      *string `json:"check_out"`
	Guests        *int    `json:"guests"`
	Status        *string `json:"status"`
	HasCreditCard *bool   `json:"has_credit_card"`
}

// Update handles PATCH /v1/desk/reservations/:id.  Absent fields are
// left untouched.  A status change must be a legal lifecycle move;
// this is also how confirmed stays get flagged as no-show.
func (h *DeskHandler) Update(c echo.Context) error {
	var req updateReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	var patch model.ReservationPatch
	if req.CheckIn != nil {
		t, err := parseDate(*req.CheckIn)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_in date"})
		}
		patch.CheckIn = &t
	}
	if req.CheckOut != nil {
		t, err := parseDate(*req.CheckOut)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_out date"})
		}
		patch.CheckOut = &t
	}
	if req.Guests != nil {
		if *req.Guests < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid guest count"})
		}
		patch.Guests = req.Guests
	}
	if req.Status != nil {
		status := model.ReservationStatus(*req.Status)
		if !status.Valid() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
		}
		patch.Status = &status
	}
	patch.HasCreditCard = req.HasCreditCard

	res, err := h.Ledger.UpdateReservation(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrReservationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		case errors.Is(err, repository.ErrInvalidTransition):
			return c.JSON(http.StatusConflict, echo.Map{"error": "illegal status transition"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reservation": res})
}

type roomAvailabilityReq struct {
	IsAvailable *bool `json:"is_available"`
}

// SetRoomAvailability handles PATCH /v1/admin/rooms/:id/availability.
// Admin only; pulls a room from (or returns it to) search results
// without touching existing reservations.
func (h *DeskHandler) SetRoomAvailability(c echo.Context) error {
	var req roomAvailabilityReq
	if err := c.Bind(&req); err != nil || req.IsAvailable == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "is_available is required"})
	}
	room, err := h.Catalog.SetRoomAvailability(c.Request().Context(), c.Param("id"), *req.IsAvailable)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update room failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"room": room})
}

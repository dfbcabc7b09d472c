package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sriluxe/hotel-reservation/internal/model"
	"github.com/sriluxe/hotel-reservation/internal/queue"
	"github.com/sriluxe/hotel-reservation/internal/repository"
)

type deskFixture struct {
	catalog   *repository.CatalogRepo
	ledger    *repository.LedgerRepo
	users     *repository.UserRepo
	published chan queue.BillSettledEvent
}

func newDeskFixture() (*deskFixture, *ReservationHandler, *DeskHandler) {
	f := &deskFixture{
		catalog:   repository.NewCatalogRepo(),
		users:     repository.NewUserRepo(bcrypt.MinCost),
		published: make(chan queue.BillSettledEvent, 4),
	}
	f.ledger = repository.NewLedgerRepo(f.catalog, 0)
	desk := NewDeskHandler(f.ledger, f.catalog, f.users, func(ctx context.Context, ev queue.BillSettledEvent) error {
		f.published <- ev
		return nil
	})
	return f, NewReservationHandler(f.ledger), desk
}

func authedRequest(method, path, body, userID, role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", role)
	return c, rec
}

func createReservation(t *testing.T, h *ReservationHandler, userID string) model.Reservation {
	t.Helper()
	c, rec := authedRequest(http.MethodPost, "/v1/reservations",
		`{"room_id":"r1","check_in":"2026-09-10","check_out":"2026-09-13","guests":2}`, userID, "user")

	assert.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Reservation model.Reservation `json:"reservation"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Reservation
}

func TestCreateReservationEndpoint(t *testing.T) {
	_, resH, _ := newDeskFixture()
	res := createReservation(t, resH, "u3")

	assert.Equal(t, "u3", res.UserID)
	assert.Equal(t, int64(75000), res.TotalAmount)
	assert.Equal(t, model.StatusConfirmed, res.Status)
}

func TestCreateReservationRejectsBadWindow(t *testing.T) {
	_, resH, _ := newDeskFixture()
	c, rec := authedRequest(http.MethodPost, "/v1/reservations",
		`{"room_id":"r1","check_in":"2026-09-13","check_out":"2026-09-10","guests":2}`, "u3", "user")

	assert.NoError(t, resH.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReservationConflict(t *testing.T) {
	_, resH, _ := newDeskFixture()
	createReservation(t, resH, "u3")

	c, rec := authedRequest(http.MethodPost, "/v1/reservations",
		`{"room_id":"r1","check_in":"2026-09-11","check_out":"2026-09-14","guests":2}`, "u3", "user")
	assert.NoError(t, resH.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetReservationHiddenFromOtherGuests(t *testing.T) {
	_, resH, _ := newDeskFixture()
	res := createReservation(t, resH, "u3")

	c, rec := authedRequest(http.MethodGet, "/v1/reservations/"+res.ID, "", "u2", "user")
	c.SetParamNames("id")
	c.SetParamValues(res.ID)

	assert.NoError(t, resH.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelReservationEndpoint(t *testing.T) {
	_, resH, _ := newDeskFixture()
	res := createReservation(t, resH, "u3")

	c, rec := authedRequest(http.MethodPost, "/v1/reservations/"+res.ID+"/cancel", "", "u3", "user")
	c.SetParamNames("id")
	c.SetParamValues(res.ID)

	assert.NoError(t, resH.Cancel(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeskCheckInAndOutPublishesSettlement(t *testing.T) {
	f, resH, desk := newDeskFixture()
	res := createReservation(t, resH, "u3")

	c, rec := authedRequest(http.MethodPost, "/v1/desk/reservations/"+res.ID+"/check-in", "", "u2", "clerk")
	c.SetParamNames("id")
	c.SetParamValues(res.ID)
	assert.NoError(t, desk.CheckIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = authedRequest(http.MethodPost, "/v1/desk/reservations/"+res.ID+"/check-out",
		`{"payment_method":"cash"}`, "u2", "clerk")
	c.SetParamNames("id")
	c.SetParamValues(res.ID)
	assert.NoError(t, desk.CheckOut(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Bill model.Bill `json:"bill"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.PaymentPaid, resp.Bill.PaymentStatus)
	assert.Equal(t, int64(75000), resp.Bill.TotalAmount)

	ev := <-f.published
	assert.Equal(t, res.ID, ev.ReservationID)
	assert.Equal(t, "r1", ev.RoomID)
	assert.Equal(t, int64(75000), ev.TotalAmount)
	assert.Equal(t, "cash", ev.PaymentMethod)
}

func TestDeskCheckOutRepeatPublishesOnce(t *testing.T) {
	f, resH, desk := newDeskFixture()
	res := createReservation(t, resH, "u3")

	c, rec := authedRequest(http.MethodPost, "/v1/desk/reservations/"+res.ID+"/check-in", "", "u2", "clerk")
	c.SetParamNames("id")
	c.SetParamValues(res.ID)
	assert.NoError(t, desk.CheckIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	checkOut := func() *httptest.ResponseRecorder {
		c, rec := authedRequest(http.MethodPost, "/v1/desk/reservations/"+res.ID+"/check-out",
			`{"payment_method":"cash"}`, "u2", "clerk")
		c.SetParamNames("id")
		c.SetParamValues(res.ID)
		assert.NoError(t, desk.CheckOut(c))
		return rec
	}

	assert.Equal(t, http.StatusOK, checkOut().Code)
	<-f.published

	// The repeat settles nothing, so no second event may be emitted.
	assert.Equal(t, http.StatusOK, checkOut().Code)
	assert.Empty(t, f.published)
}

func TestDeskCheckOutValidatesPaymentMethod(t *testing.T) {
	_, resH, desk := newDeskFixture()
	res := createReservation(t, resH, "u3")

	c, rec := authedRequest(http.MethodPost, "/v1/desk/reservations/"+res.ID+"/check-out",
		`{"payment_method":"barter"}`, "u2", "clerk")
	c.SetParamNames("id")
	c.SetParamValues(res.ID)

	assert.NoError(t, desk.CheckOut(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeskAddBillItemEndpoint(t *testing.T) {
	_, resH, desk := newDeskFixture()
	res := createReservation(t, resH, "u3")

	c, rec := authedRequest(http.MethodPost, "/v1/desk/reservations/"+res.ID+"/bill/items",
		`{"description":"Laundry","amount":1200,"category":"laundry"}`, "u2", "clerk")
	c.SetParamNames("id")
	c.SetParamValues(res.ID)

	assert.NoError(t, desk.AddBillItem(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Bill model.Bill `json:"bill"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.PaymentPending, resp.Bill.PaymentStatus)
	assert.Equal(t, int64(1200), resp.Bill.TotalAmount)
}

func TestDeskAddBillItemRejectsUnknownCategory(t *testing.T) {
	_, resH, desk := newDeskFixture()
	res := createReservation(t, resH, "u3")

	c, rec := authedRequest(http.MethodPost, "/v1/desk/reservations/"+res.ID+"/bill/items",
		`{"description":"Mystery","amount":10,"category":"casino"}`, "u2", "clerk")
	c.SetParamNames("id")
	c.SetParamValues(res.ID)

	assert.NoError(t, desk.AddBillItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeskUpdateFlagsNoShow(t *testing.T) {
	_, resH, desk := newDeskFixture()
	res := createReservation(t, resH, "u3")

	c, rec := authedRequest(http.MethodPatch, "/v1/desk/reservations/"+res.ID,
		`{"status":"no-show"}`, "u2", "clerk")
	c.SetParamNames("id")
	c.SetParamValues(res.ID)

	assert.NoError(t, desk.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"no-show"`)
}

func TestDeskUpdateRejectsIllegalTransition(t *testing.T) {
	_, resH, desk := newDeskFixture()
	res := createReservation(t, resH, "u3")

	c, rec := authedRequest(http.MethodPatch, "/v1/desk/reservations/"+res.ID,
		`{"status":"checked-out"}`, "u2", "clerk")
	c.SetParamNames("id")
	c.SetParamValues(res.ID)

	assert.NoError(t, desk.Update(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdminSetRoomAvailability(t *testing.T) {
	_, _, desk := newDeskFixture()

	c, rec := authedRequest(http.MethodPatch, "/v1/admin/rooms/r1/availability",
		`{"is_available":false}`, "u1", "admin")
	c.SetParamNames("id")
	c.SetParamValues("r1")

	assert.NoError(t, desk.SetRoomAvailability(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_available":false`)
}

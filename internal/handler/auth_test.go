package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sriluxe/hotel-reservation/internal/config"
	"github.com/sriluxe/hotel-reservation/internal/repository"
)

func newTestAuthHandler() *AuthHandler {
	cfg := config.Config{
		Env:          "test",
		JWTSecret:    "test-secret",
		AccessTTLMin: 15,
		BcryptCost:   bcrypt.MinCost,
		SessionKey:   "session:user",
	}
	users := repository.NewUserRepo(cfg.BcryptCost)
	sessions := repository.NewSessionRepo(nil, cfg.SessionKey)
	return NewAuthHandler(cfg, users, sessions)
}

func postJSON(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginSucceedsForSeededAccount(t *testing.T) {
	h := newTestAuthHandler()
	c, rec := postJSON("/v1/auth/login", `{"email":"guest@example.com","password":"password"}`)

	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"token"`)
	assert.Contains(t, body, `"role":"user"`)
	assert.NotContains(t, body, "password")
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	h := newTestAuthHandler()
	c, rec := postJSON("/v1/auth/login", `{"email":"guest@example.com","password":"nope"}`)

	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterCreatesUserRoleAccount(t *testing.T) {
	h := newTestAuthHandler()
	c, rec := postJSON("/v1/auth/register", `{"name":"New Guest","email":"new@example.com","password":"s3cret"}`)

	assert.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"user"`)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	h := newTestAuthHandler()
	c, rec := postJSON("/v1/auth/register", `{"name":"Impostor","email":"guest@example.com","password":"whatever"}`)

	assert.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	h := newTestAuthHandler()
	c, rec := postJSON("/v1/auth/register", `{"email":"partial@example.com"}`)

	assert.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	h := newTestAuthHandler()
	c, rec := postJSON("/v1/auth/logout", "")

	assert.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSessionProbeDuringAndAfterRestore(t *testing.T) {
	h := newTestAuthHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Before the restore finishes the probe must not claim "signed out".
	assert.NoError(t, h.Session(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	_, _, err := h.Sessions.Restore(req.Context())
	assert.NoError(t, err)

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	assert.NoError(t, h.Session(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/sriluxe/hotel-reservation/internal/model"
	"github.com/sriluxe/hotel-reservation/internal/utils"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func runWithRole(mw echo.MiddlewareFunc, role string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/desk/reservations/res1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}
	_ = mw(okHandler)(c)
	return rec
}

func TestRequireRoleAdmitsListedRoles(t *testing.T) {
	mw := RequireRole(model.RoleClerk, model.RoleAdmin)

	assert.Equal(t, http.StatusOK, runWithRole(mw, "clerk").Code)
	assert.Equal(t, http.StatusOK, runWithRole(mw, "admin").Code)
}

func TestRequireRoleRejectsOthers(t *testing.T) {
	mw := RequireRole(model.RoleAdmin)

	assert.Equal(t, http.StatusForbidden, runWithRole(mw, "user").Code)
	assert.Equal(t, http.StatusForbidden, runWithRole(mw, "clerk").Code)
	// No role in context at all, e.g. middleware misordering.
	assert.Equal(t, http.StatusForbidden, runWithRole(mw, "").Code)
}

func TestSessionGateHoldsUntilReady(t *testing.T) {
	ready := false
	mw := SessionGate(func() bool { return ready })

	rec := runWithRole(mw, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	ready = true
	assert.Equal(t, http.StatusOK, runWithRole(mw, "").Code)
}

func runJWT(t *testing.T, secret, header string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = JWTAuth(secret)(okHandler)(c)
	return rec, c
}

func TestJWTAuthAcceptsIssuedToken(t *testing.T) {
	access, err := utils.NewAccessToken("test-secret", "u2", "clerk", 15)
	assert.NoError(t, err)

	rec, c := runJWT(t, "test-secret", "Bearer "+access.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u2", c.Get("user_id"))
	assert.Equal(t, "clerk", c.Get("role"))
}

func TestJWTAuthNormalizesRoleCase(t *testing.T) {
	access, err := utils.NewAccessToken("test-secret", "u1", "ADMIN", 15)
	assert.NoError(t, err)

	rec, c := runJWT(t, "test-secret", "Bearer "+access.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", c.Get("role"))
}

func TestJWTAuthRejectsBadTokens(t *testing.T) {
	rec, _ := runJWT(t, "test-secret", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = runJWT(t, "test-secret", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Token signed with a different secret.
	access, err := utils.NewAccessToken("other-secret", "u2", "clerk", 15)
	assert.NoError(t, err)
	rec, _ = runJWT(t, "test-secret", "Bearer "+access.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsUnknownRoleClaim(t *testing.T) {
	access, err := utils.NewAccessToken("test-secret", "u2", "superuser", 15)
	assert.NoError(t, err)

	rec, _ := runJWT(t, "test-secret", "Bearer "+access.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

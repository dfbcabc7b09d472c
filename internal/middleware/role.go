package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sriluxe/hotel-reservation/internal/model"
)

// RequireRole returns a middleware that enforces that the
// authenticated user holds one of the given roles.  It assumes JWTAuth
// already stored the role in the context under "role"; a missing or
// unexpected value is treated the same as a disallowed role and the
// request is aborted with 403 Forbidden.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[string(r)] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// SessionGate withholds authorization decisions until the session slot
// has been restored.  While ready() is false every guarded request is
// answered 503 with a short Retry-After instead of a denial, so a slow
// restore right after boot never bounces a signed-in user to the login
// flow.
func SessionGate(ready func() bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !ready() {
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "session store warming up"})
			}
			return next(c)
		}
	}
}

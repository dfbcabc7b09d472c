package handler

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"
)

var errNoIdentity = errors.New("no identity in context")

// getUserID extracts the authenticated user's ID that JWTAuth stored
// in the context.  Handlers behind the auth middleware call this; a
// failure means the middleware chain is misconfigured, not that the
// client did anything recoverable.
func getUserID(c echo.Context) (string, error) {
	id, ok := c.Get("user_id").(string)
	if !ok || id == "" {
		return "", errNoIdentity
	}
	return id, nil
}

// dateLayouts are accepted for check-in/check-out fields.  The booking
// form sends calendar dates; API clients may send full timestamps.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseOptionalDate is parseDate for query parameters that may be
// absent: an empty string yields the zero time with no error.
func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return parseDate(s)
}

// parseDate parses a date string in one of the accepted layouts and
// returns it in UTC.
func parseDate(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

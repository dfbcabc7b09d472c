package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// SearchRooms handles GET /v1/search/rooms.  Query parameters:
//
//	location   – required, hotel city matched case-insensitively
//	check_in   – optional date (2006-01-02 or RFC3339)
//	check_out  – optional date, must fall after check_in when both given
//	guests     – optional positive integer, defaults to 1
//
// The response lists rooms that are flagged available and can host the
// party.  No match is an empty list, not an error.
func (h *CatalogHandler) SearchRooms(c echo.Context) error {
	location := strings.TrimSpace(c.QueryParam("location"))
	if location == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "location is required"})
	}

	guests := 1
	if raw := c.QueryParam("guests"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid guest count"})
		}
		guests = n
	}

	checkIn, err := parseOptionalDate(c.QueryParam("check_in"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_in date"})
	}
	checkOut, err := parseOptionalDate(c.QueryParam("check_out"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_out date"})
	}
	if !checkIn.IsZero() && !checkOut.IsZero() && !checkOut.After(checkIn) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be after check_in"})
	}

	rooms := h.Catalog.SearchAvailableRooms(c.Request().Context(), location, checkIn, checkOut, guests)
	return c.JSON(http.StatusOK, echo.Map{"rooms": rooms, "count": len(rooms)})
}

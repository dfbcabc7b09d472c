package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sriluxe/hotel-reservation/internal/repository"
)

// CatalogHandler exposes the read-only hotel and room catalog to
// unauthenticated visitors.  These endpoints sit behind the response
// cache in front of the router; the catalog itself is static apart
// from room availability.
type CatalogHandler struct {
	Catalog *repository.CatalogRepo
}

func NewCatalogHandler(catalog *repository.CatalogRepo) *CatalogHandler {
	if catalog == nil {
		panic("nil CatalogRepo passed to NewCatalogHandler")
	}
	return &CatalogHandler{Catalog: catalog}
}

// ListHotels handles GET /v1/hotels.
func (h *CatalogHandler) ListHotels(c echo.Context) error {
	hotels := h.Catalog.ListHotels(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{"hotels": hotels})
}

// GetHotel handles GET /v1/hotels/:id.
func (h *CatalogHandler) GetHotel(c echo.Context) error {
	hotel, err := h.Catalog.GetHotelByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"hotel": hotel})
}

// ListHotelRooms handles GET /v1/hotels/:id/rooms.  An unknown hotel
// is a 404; a hotel without rooms is an empty list.
func (h *CatalogHandler) ListHotelRooms(c echo.Context) error {
	rooms, err := h.Catalog.ListRoomsByHotel(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": rooms})
}

// GetRoom handles GET /v1/rooms/:id.
func (h *CatalogHandler) GetRoom(c echo.Context) error {
	room, err := h.Catalog.GetRoomByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"room": room})
}

package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sriluxe/hotel-reservation/internal/model"
)

// CatalogRepo holds the static hotel and room catalog.  The catalog is
// seeded once at construction and never grows or shrinks afterwards;
// the only mutable state is each room's availability flag, which
// front-desk staff may toggle.  A read-write mutex guards that flag so
// concurrent searches stay consistent.
type CatalogRepo struct {
	mu     sync.RWMutex
	hotels map[string]model.Hotel
	rooms  map[string]model.Room
	// hotelOrder and roomOrder preserve seed order so listings are
	// deterministic (maps iterate randomly).
	hotelOrder []string
	roomOrder  []string
}

// NewCatalogRepo returns a catalog seeded with the chain's properties.
func NewCatalogRepo() *CatalogRepo {
	r := &CatalogRepo{
		hotels: make(map[string]model.Hotel),
		rooms:  make(map[string]model.Room),
	}
	for _, h := range seedHotels() {
		r.hotels[h.ID] = h
		r.hotelOrder = append(r.hotelOrder, h.ID)
	}
	for _, rm := range seedRooms() {
		r.rooms[rm.ID] = rm
		r.roomOrder = append(r.roomOrder, rm.ID)
	}
	return r
}

// ListHotels returns every hotel in seed order.
func (r *CatalogRepo) ListHotels(ctx context.Context) []model.Hotel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Hotel, 0, len(r.hotelOrder))
	for _, id := range r.hotelOrder {
		out = append(out, r.hotels[id])
	}
	return out
}

// GetHotelByID fetches a single hotel.  Absent IDs yield
// ErrHotelNotFound.
func (r *CatalogRepo) GetHotelByID(ctx context.Context, id string) (model.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.hotels[id]
	if !ok {
		return model.Hotel{}, ErrHotelNotFound
	}
	return h, nil
}

// GetRoomByID fetches a single room.  Absent IDs yield ErrRoomNotFound.
func (r *CatalogRepo) GetRoomByID(ctx context.Context, id string) (model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rm, ok := r.rooms[id]
	if !ok {
		return model.Room{}, ErrRoomNotFound
	}
	return rm, nil
}

// ListRoomsByHotel returns the rooms belonging to a hotel in seed
// order.  An unknown hotel ID yields ErrHotelNotFound rather than an
// empty slice so callers can distinguish "no rooms" from "no hotel".
func (r *CatalogRepo) ListRoomsByHotel(ctx context.Context, hotelID string) ([]model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.hotels[hotelID]; !ok {
		return nil, ErrHotelNotFound
	}
	out := make([]model.Room, 0)
	for _, id := range r.roomOrder {
		if rm := r.rooms[id]; rm.HotelID == hotelID {
			out = append(out, rm)
		}
	}
	return out, nil
}

// SearchAvailableRooms returns rooms that can host the party: the
// owning hotel's location must equal the requested location
// case-insensitively, the room must be flagged available and its
// capacity must accommodate the guest count.  The date window is part
// of the search contract but does not narrow the static catalog; date
// conflicts surface later when the ledger rejects overlapping
// reservations.  No match yields an empty slice, never an error.
func (r *CatalogRepo) SearchAvailableRooms(ctx context.Context, location string, checkIn, checkOut time.Time, guests int) []model.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matching := make(map[string]bool)
	for id, h := range r.hotels {
		if strings.EqualFold(h.Location, strings.TrimSpace(location)) {
			matching[id] = true
		}
	}
	out := make([]model.Room, 0)
	if len(matching) == 0 {
		return out
	}
	for _, id := range r.roomOrder {
		rm := r.rooms[id]
		if matching[rm.HotelID] && rm.IsAvailable && rm.Capacity >= guests {
			out = append(out, rm)
		}
	}
	return out
}

// SetRoomAvailability toggles the only mutable catalog field.  Rooms
// flagged unavailable drop out of search results but existing
// reservations are untouched.
func (r *CatalogRepo) SetRoomAvailability(ctx context.Context, roomID string, available bool) (model.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rooms[roomID]
	if !ok {
		return model.Room{}, ErrRoomNotFound
	}
	rm.IsAvailable = available
	r.rooms[roomID] = rm
	return rm, nil
}

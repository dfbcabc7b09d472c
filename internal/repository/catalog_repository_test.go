package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func searchWindow() (time.Time, time.Time) {
	in := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return in, in.AddDate(0, 0, 2)
}

func TestCatalogSeedLookups(t *testing.T) {
	repo := NewCatalogRepo()
	ctx := context.Background()

	hotels := repo.ListHotels(ctx)
	assert.Len(t, hotels, 3)
	assert.Equal(t, "h1", hotels[0].ID)

	h, err := repo.GetHotelByID(ctx, "h2")
	assert.NoError(t, err)
	assert.Equal(t, "Kandy", h.Location)

	_, err = repo.GetHotelByID(ctx, "h9")
	assert.ErrorIs(t, err, ErrHotelNotFound)

	room, err := repo.GetRoomByID(ctx, "r1")
	assert.NoError(t, err)
	assert.Equal(t, int64(25000), room.Price)

	_, err = repo.GetRoomByID(ctx, "r99")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestListRoomsByHotel(t *testing.T) {
	repo := NewCatalogRepo()
	ctx := context.Background()

	rooms, err := repo.ListRoomsByHotel(ctx, "h1")
	assert.NoError(t, err)
	assert.Len(t, rooms, 3)
	for _, rm := range rooms {
		assert.Equal(t, "h1", rm.HotelID)
	}

	_, err = repo.ListRoomsByHotel(ctx, "h9")
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestSearchAvailableRooms(t *testing.T) {
	repo := NewCatalogRepo()
	ctx := context.Background()
	in, out := searchWindow()

	// Location matching is case-insensitive.
	rooms := repo.SearchAvailableRooms(ctx, "colombo", in, out, 2)
	assert.Len(t, rooms, 3)

	// Capacity filters: only the family room and villa sleep four, and
	// only the family room is in Colombo.
	rooms = repo.SearchAvailableRooms(ctx, "Colombo", in, out, 4)
	assert.Len(t, rooms, 1)
	assert.Equal(t, "r3", rooms[0].ID)

	// Unknown locations are an empty result, not an error.
	assert.Empty(t, repo.SearchAvailableRooms(ctx, "Jaffna", in, out, 1))
}

func TestSetRoomAvailabilityAffectsSearch(t *testing.T) {
	repo := NewCatalogRepo()
	ctx := context.Background()
	in, out := searchWindow()

	room, err := repo.SetRoomAvailability(ctx, "r1", false)
	assert.NoError(t, err)
	assert.False(t, room.IsAvailable)

	for _, rm := range repo.SearchAvailableRooms(ctx, "Colombo", in, out, 2) {
		assert.NotEqual(t, "r1", rm.ID)
	}

	room, err = repo.SetRoomAvailability(ctx, "r1", true)
	assert.NoError(t, err)
	assert.True(t, room.IsAvailable)

	_, err = repo.SetRoomAvailability(ctx, "r99", false)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

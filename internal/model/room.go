package model

// Room represents a bookable room type within a hotel.  Price is the
// nightly rate in whole LKR; there is no minor currency unit.  The
// availability flag is the only mutable field and may be toggled by
// front-desk staff to take a room out of the search results.
//
// Fields:
//  ID          – catalog identifier (e.g. "r1").
//  HotelID     – owning hotel.
//  Name        – display name (e.g. "Deluxe King Room").
//  Type        – room class tag (Deluxe, Suite, Family, Villa).
//  Description – marketing copy.
//  Price       – nightly rate in whole LKR, always positive.
//  Capacity    – maximum number of guests, always positive.
//  Images      – gallery image URLs.
//  Amenities   – room amenity names.
//  IsAvailable – whether the room shows up in availability search.
type Room struct {
	ID          string   `json:"id"`
	HotelID     string   `json:"hotel_id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Capacity    int      `json:"capacity"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	IsAvailable bool     `json:"is_available"`
}

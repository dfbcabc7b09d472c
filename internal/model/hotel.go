package model

// Hotel represents a single property in the chain's catalog.  Hotels
// are loaded once at startup and never mutated afterwards; every
// field is treated as read-only by the rest of the application.
//
// Fields:
//  ID           – catalog identifier (e.g. "h1").
//  Name         – display name of the property.
//  Location     – city the hotel is in; matched case-insensitively by search.
//  Province     – administrative province of the location.
//  Description  – marketing copy shown on listing pages.
//  Image        – URL of the hero image.
//  Rating       – guest rating on a 0–5 scale.
//  Amenities    – hotel-wide amenity names.
//  IsMainBranch – whether this is the flagship property.
type Hotel struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Province     string   `json:"province"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Rating       float64  `json:"rating"`
	Amenities    []string `json:"amenities"`
	IsMainBranch bool     `json:"is_main_branch"`
}

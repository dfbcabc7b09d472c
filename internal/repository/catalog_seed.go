package repository

import "github.com/sriluxe/hotel-reservation/internal/model"

// Seed data for the SriLuxe chain.  Prices are nightly rates in whole
// LKR.  The catalog is intentionally small; it stands in for the
// read-only catalog feed the marketing site is built around.

func seedHotels() []model.Hotel {
	return []model.Hotel{
		{
			ID:           "h1",
			Name:         "SriLuxe Colombo",
			Location:     "Colombo",
			Province:     "Western Province",
			Description:  "Our flagship hotel in the heart of Colombo with stunning city views and modern amenities.",
			Image:        "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
			Rating:       4.8,
			Amenities:    []string{"Free WiFi", "Pool", "Spa", "Fitness Center", "Restaurant"},
			IsMainBranch: true,
		},
		{
			ID:          "h2",
			Name:        "SriLuxe Kandy",
			Location:    "Kandy",
			Province:    "Central Province",
			Description: "Experience cultural heritage and luxury in our Kandy hotel near the Temple of the Tooth.",
			Image:       "https://images.pexels.com/photos/338504/pexels-photo-338504.jpeg",
			Rating:      4.6,
			Amenities:   []string{"Free WiFi", "Pool", "Spa", "Restaurant", "Bar"},
		},
		{
			ID:          "h3",
			Name:        "SriLuxe Galle",
			Location:    "Galle",
			Province:    "Southern Province",
			Description: "Beachfront luxury with colonial charm in the historic Galle Fort area.",
			Image:       "https://images.pexels.com/photos/261102/pexels-photo-261102.jpeg",
			Rating:      4.7,
			Amenities:   []string{"Free WiFi", "Beach Access", "Pool", "Spa", "Restaurant"},
		},
	}
}

func seedRooms() []model.Room {
	return []model.Room{
		{
			ID:          "r1",
			HotelID:     "h1",
			Name:        "Deluxe King Room",
			Type:        "Deluxe",
			Description: "Spacious room with a king-sized bed and city view.",
			Price:       25000,
			Capacity:    2,
			Images: []string{
				"https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg",
				"https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg",
			},
			Amenities:   []string{"King Bed", "City View", "Air Conditioning", "Mini Bar", "Free WiFi"},
			IsAvailable: true,
		},
		{
			ID:          "r2",
			HotelID:     "h1",
			Name:        "Executive Suite",
			Type:        "Suite",
			Description: "Luxury suite with separate living area and premium amenities.",
			Price:       45000,
			Capacity:    2,
			Images: []string{
				"https://images.pexels.com/photos/1457842/pexels-photo-1457842.jpeg",
				"https://images.pexels.com/photos/1743229/pexels-photo-1743229.jpeg",
			},
			Amenities:   []string{"King Bed", "Separate Living Area", "City View", "Jacuzzi", "Mini Bar", "Free WiFi"},
			IsAvailable: true,
		},
		{
			ID:          "r3",
			HotelID:     "h1",
			Name:        "Family Room",
			Type:        "Family",
			Description: "Spacious room with two queen beds, perfect for families.",
			Price:       35000,
			Capacity:    4,
			Images: []string{
				"https://images.pexels.com/photos/237371/pexels-photo-237371.jpeg",
				"https://images.pexels.com/photos/279746/pexels-photo-279746.jpeg",
			},
			Amenities:   []string{"Two Queen Beds", "City View", "Air Conditioning", "Mini Bar", "Free WiFi"},
			IsAvailable: true,
		},
		{
			ID:          "r4",
			HotelID:     "h2",
			Name:        "Mountain View Room",
			Type:        "Deluxe",
			Description: "Comfortable room with stunning mountain views.",
			Price:       22000,
			Capacity:    2,
			Images: []string{
				"https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg",
				"https://images.pexels.com/photos/260922/pexels-photo-260922.jpeg",
			},
			Amenities:   []string{"Queen Bed", "Mountain View", "Air Conditioning", "Free WiFi"},
			IsAvailable: true,
		},
		{
			ID:          "r5",
			HotelID:     "h2",
			Name:        "Heritage Suite",
			Type:        "Suite",
			Description: "Luxurious suite with traditional Sri Lankan decor and modern amenities.",
			Price:       40000,
			Capacity:    2,
			Images: []string{
				"https://images.pexels.com/photos/210265/pexels-photo-210265.jpeg",
				"https://images.pexels.com/photos/262048/pexels-photo-262048.jpeg",
			},
			Amenities:   []string{"King Bed", "Mountain View", "Jacuzzi", "Mini Bar", "Free WiFi"},
			IsAvailable: true,
		},
		{
			ID:          "r6",
			HotelID:     "h3",
			Name:        "Ocean View Room",
			Type:        "Deluxe",
			Description: "Comfortable room with breathtaking ocean views.",
			Price:       28000,
			Capacity:    2,
			Images: []string{
				"https://images.pexels.com/photos/189296/pexels-photo-189296.jpeg",
				"https://images.pexels.com/photos/262047/pexels-photo-262047.jpeg",
			},
			Amenities:   []string{"Queen Bed", "Ocean View", "Air Conditioning", "Mini Bar", "Free WiFi"},
			IsAvailable: true,
		},
		{
			ID:          "r7",
			HotelID:     "h3",
			Name:        "Beach Villa",
			Type:        "Villa",
			Description: "Private villa with direct beach access and luxury amenities.",
			Price:       60000,
			Capacity:    4,
			Images: []string{
				"https://images.pexels.com/photos/53464/sheraton-palace-hotel-lobby.jpeg",
				"https://images.pexels.com/photos/261102/pexels-photo-261102.jpeg",
			},
			Amenities:   []string{"King Bed", "Private Pool", "Beach Access", "Jacuzzi", "Kitchen", "Free WiFi"},
			IsAvailable: true,
		},
	}
}

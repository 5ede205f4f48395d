package catalog

// Default returns the fixed Cadizz room catalog applied at startup.
func Default() *Catalog {
	c, err := New([]RoomType{
		{
			ID:            "std",
			Name:          "Standard",
			Beds:          "1 Queen",
			MaxGuests:     2,
			SquareMeters:  22,
			PricePerNight: 65,
			Stock:         6,
			Image:         "/assets/rooms/standard.jpg",
			Amenities:     []string{"Wi-Fi", "TV", "A/C", "Private bathroom"},
		},
		{
			ID:            "dbl",
			Name:          "Double",
			Beds:          "2 Twin",
			MaxGuests:     3,
			SquareMeters:  28,
			PricePerNight: 85,
			Stock:         5,
			Image:         "/assets/rooms/double.jpg",
			Amenities:     []string{"Wi-Fi", "TV", "A/C", "City view"},
		},
		{
			ID:            "sui",
			Name:          "Suite Cadizz",
			Beds:          "1 King",
			MaxGuests:     4,
			SquareMeters:  40,
			PricePerNight: 140,
			Stock:         3,
			Image:         "/assets/rooms/suite.jpg",
			Amenities:     []string{"Wi-Fi", "Smart TV", "A/C", "Jacuzzi", "Balcony"},
		},
	})
	if err != nil {
		panic(err)
	}

	return c
}

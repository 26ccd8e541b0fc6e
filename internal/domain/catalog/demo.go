package catalog

// DemoListingID is the backend's id for the flagship property.
const DemoListingID = "1"

// DemoListing is the built-in catalog served when the upstream backend
// is unreachable, matching the data the backend would return for the
// flagship property. Keeps the booking flow demo-able offline.
func DemoListing() *Listing {
	return &Listing{
		ID:      DemoListingID,
		Name:    "Copacabana Palace",
		Address: "Av. Atlântica, 1702 - Copacabana, Rio de Janeiro",
		Image:   "/images/copacabana-palace.jpg",
		Rating:  5.0,
		Rooms: []RoomOption{
			{
				Type:             RoomDeluxe,
				Name:             "Deluxe Room",
				NightlyRateCents: 89000,
				Size:             "30m²",
				View:             "Partial sea view",
				Features:         []string{"1 double bed", "Marble bathroom"},
			},
			{
				Type:             RoomJuniorSuite,
				Name:             "Junior Suite",
				NightlyRateCents: 120000,
				Size:             "45m²",
				View:             "Sea view • Balcony",
				Features:         []string{"1 king size bed", "Whirlpool bathroom"},
			},
			{
				Type:             RoomPresidential,
				Name:             "Presidential Suite",
				NightlyRateCents: 250000,
				Size:             "80m²",
				View:             "Panoramic view • 2 bedrooms",
				Features:         []string{"2 separate bedrooms", "Private spa area"},
			},
		},
	}
}

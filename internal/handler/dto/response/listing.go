package response

import (
	"seapass-bff/internal/domain/catalog"
)

type RoomOptionResponse struct {
	Type             string   `json:"type"`
	Name             string   `json:"name"`
	NightlyRateCents int64    `json:"nightlyRateCents"`
	Size             string   `json:"size"`
	View             string   `json:"view"`
	Features         []string `json:"features"`
}

type ListingResponse struct {
	ID      string               `json:"id"`
	Name    string               `json:"name"`
	Address string               `json:"address"`
	Image   string               `json:"image,omitempty"`
	Rating  float64              `json:"rating"`
	Rooms   []RoomOptionResponse `json:"rooms"`
}

func FromListing(listing *catalog.Listing) *ListingResponse {
	rooms := make([]RoomOptionResponse, 0, len(listing.Rooms))
	for _, room := range listing.Rooms {
		rooms = append(rooms, RoomOptionResponse{
			Type:             room.Type.String(),
			Name:             room.Name,
			NightlyRateCents: room.NightlyRateCents,
			Size:             room.Size,
			View:             room.View,
			Features:         room.Features,
		})
	}
	return &ListingResponse{
		ID:      listing.ID,
		Name:    listing.Name,
		Address: listing.Address,
		Image:   listing.Image,
		Rating:  listing.Rating,
		Rooms:   rooms,
	}
}

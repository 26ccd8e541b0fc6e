package gateway

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"seapass-bff/internal/domain/catalog"
	"seapass-bff/internal/usecase"
)

type CatalogClient struct {
	client *Client
}

func NewCatalogClient(client *Client) usecase.CatalogGateway {
	return &CatalogClient{client: client}
}

// Upstream wire shape: room prices come as currency units (890.00),
// converted to cents at the boundary.
type listingPayload struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Address string        `json:"address"`
	Image   string        `json:"image"`
	Rating  float64       `json:"rating"`
	Rooms   []roomPayload `json:"rooms"`
}

type roomPayload struct {
	Type     string   `json:"type"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Size     string   `json:"size"`
	View     string   `json:"view"`
	Features []string `json:"features"`
}

func (c *CatalogClient) FetchListing(ctx context.Context, listingID string) (*catalog.Listing, error) {
	var payload listingPayload
	path := fmt.Sprintf("/listings/%s", listingID)
	if err := c.client.doJSON(ctx, http.MethodGet, path, nil, "", nil, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain(listingID), nil
}

func (p listingPayload) toDomain(listingID string) *catalog.Listing {
	listing := &catalog.Listing{
		ID:      listingID,
		Name:    p.Name,
		Address: p.Address,
		Image:   p.Image,
		Rating:  p.Rating,
		Rooms:   make([]catalog.RoomOption, 0, len(p.Rooms)),
	}
	if p.ID != "" {
		listing.ID = p.ID
	}
	for _, room := range p.Rooms {
		listing.Rooms = append(listing.Rooms, catalog.RoomOption{
			Type:             catalog.RoomType(room.Type),
			Name:             room.Name,
			NightlyRateCents: int64(math.Round(room.Price * 100)),
			Size:             room.Size,
			View:             room.View,
			Features:         room.Features,
		})
	}
	return listing
}

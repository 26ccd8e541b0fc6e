//go:build unit || e2e

package builder

import (
	"time"

	"seapass-bff/internal/domain/catalog"
	reqdto "seapass-bff/internal/handler/dto/request"
	"seapass-bff/internal/usecase"
)

// DraftBuilder produces a fully valid reservation draft: three nights
// in the deluxe room of the demo listing with the demo guest.
type DraftBuilder struct {
	ListingID       string
	RoomType        string
	Checkin         time.Time
	Checkout        time.Time
	Adults          int
	Children        int
	Services        []string
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	GuestCPF        string
	SpecialRequests string
	TermsAccepted   bool
}

func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		ListingID:     catalog.DemoListingID,
		RoomType:      string(catalog.RoomDeluxe),
		Checkin:       time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
		Checkout:      time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC),
		Adults:        2,
		Children:      0,
		GuestName:     "João Silva",
		GuestEmail:    "joao.silva@email.com",
		GuestPhone:    "11999999999",
		GuestCPF:      "12345678900",
		TermsAccepted: true,
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) BuildInput() usecase.DraftInput {
	return usecase.DraftInput{
		ListingID:       b.ListingID,
		RoomType:        b.RoomType,
		Checkin:         b.Checkin,
		Checkout:        b.Checkout,
		Adults:          b.Adults,
		Children:        b.Children,
		Services:        b.Services,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		GuestCPF:        b.GuestCPF,
		SpecialRequests: b.SpecialRequests,
		TermsAccepted:   b.TermsAccepted,
	}
}

func (b *DraftBuilder) BuildRequestDTO() reqdto.DraftRequest {
	req := reqdto.DraftRequest{
		ListingID:       b.ListingID,
		RoomType:        b.RoomType,
		Adults:          b.Adults,
		Children:        b.Children,
		Services:        b.Services,
		SpecialRequests: b.SpecialRequests,
		TermsAccepted:   b.TermsAccepted,
		Guest: &reqdto.GuestInfo{
			Name:  b.GuestName,
			Email: b.GuestEmail,
			Phone: b.GuestPhone,
			CPF:   b.GuestCPF,
		},
	}
	if !b.Checkin.IsZero() {
		req.Checkin = b.Checkin.Format(time.DateOnly)
	}
	if !b.Checkout.IsZero() {
		req.Checkout = b.Checkout.Format(time.DateOnly)
	}
	return req
}

package request

import (
	"errors"
	"time"

	"seapass-bff/internal/usecase"
)

var ErrBadDateFormat = errors.New("dates must be formatted as YYYY-MM-DD")

type GuestInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	CPF   string `json:"cpf"`
}

// DraftRequest is one wizard state as sent by the page. Quote accepts
// it half-filled; Submit validates it in full downstream.
type DraftRequest struct {
	ListingID       string     `json:"listingId" binding:"required"`
	RoomType        string     `json:"roomType,omitempty"`
	Checkin         string     `json:"checkin,omitempty"`
	Checkout        string     `json:"checkout,omitempty"`
	Adults          int        `json:"adults"`
	Children        int        `json:"children"`
	Services        []string   `json:"services,omitempty"`
	Guest           *GuestInfo `json:"guest,omitempty"`
	SpecialRequests string     `json:"specialRequests,omitempty"`
	TermsAccepted   bool       `json:"termsAccepted"`
}

func (r DraftRequest) ToInput() (usecase.DraftInput, error) {
	checkin, err := parseDate(r.Checkin)
	if err != nil {
		return usecase.DraftInput{}, err
	}
	checkout, err := parseDate(r.Checkout)
	if err != nil {
		return usecase.DraftInput{}, err
	}

	input := usecase.DraftInput{
		ListingID:       r.ListingID,
		RoomType:        r.RoomType,
		Checkin:         checkin,
		Checkout:        checkout,
		Adults:          r.Adults,
		Children:        r.Children,
		Services:        r.Services,
		SpecialRequests: r.SpecialRequests,
		TermsAccepted:   r.TermsAccepted,
	}
	if r.Guest != nil {
		input.GuestName = r.Guest.Name
		input.GuestEmail = r.Guest.Email
		input.GuestPhone = r.Guest.Phone
		input.GuestCPF = r.Guest.CPF
	}
	return input, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, ErrBadDateFormat
	}
	return date, nil
}

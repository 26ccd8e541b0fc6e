package response

import (
	"fmt"

	"seapass-bff/internal/usecase"

	"github.com/jinzhu/copier"
)

// NotInformed fills confirmation fields the snapshot never captured;
// the page renders the placeholder instead of failing.
const NotInformed = "not informed"

type ConfirmationResponse struct {
	BookingID       string   `json:"bookingId"`
	Status          string   `json:"status"`
	HotelName       string   `json:"hotelName"`
	HotelAddress    string   `json:"hotelAddress"`
	RoomType        string   `json:"roomType"`
	RoomName        string   `json:"roomName"`
	Checkin         string   `json:"checkin"`
	Checkout        string   `json:"checkout"`
	Nights          int      `json:"nights"`
	Adults          int      `json:"adults"`
	Children        int      `json:"children"`
	Services        []string `json:"services"`
	GuestName       string   `json:"guestName"`
	GuestEmail      string   `json:"guestEmail"`
	GuestPhone      string   `json:"guestPhone"`
	GuestCPF        string   `json:"guestCpf"`
	SpecialRequests string   `json:"specialRequests,omitempty"`
	TotalCents      int64    `json:"totalCents"`
	CreatedAt       string   `json:"createdAt"`
}

func FromSnapshot(snap *usecase.Snapshot) *ConfirmationResponse {
	resp := &ConfirmationResponse{}
	_ = copier.Copy(resp, snap)

	for _, field := range []*string{
		&resp.BookingID, &resp.Status,
		&resp.HotelName, &resp.HotelAddress,
		&resp.RoomType, &resp.RoomName,
		&resp.Checkin, &resp.Checkout,
		&resp.GuestName, &resp.GuestEmail,
		&resp.GuestPhone, &resp.GuestCPF,
	} {
		if *field == "" {
			*field = NotInformed
		}
	}
	if resp.Services == nil {
		resp.Services = []string{}
	}
	return resp
}

// ReceiptView is the ConfirmationResponse plus the fields the printable
// receipt needs preformatted.
type ReceiptView struct {
	ConfirmationResponse
	Total string
}

func NewReceiptView(snap *usecase.Snapshot) *ReceiptView {
	resp := FromSnapshot(snap)
	return &ReceiptView{
		ConfirmationResponse: *resp,
		Total:                formatBRL(resp.TotalCents),
	}
}

func formatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR$ %d.%02d", sign, cents/100, cents%100)
}

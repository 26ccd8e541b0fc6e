package usecase

import (
	"context"

	"seapass-bff/internal/domain/catalog"
	"seapass-bff/internal/domain/reservation"
	"seapass-bff/internal/domain/settings"
)

// CatalogGateway fetches listing data from the upstream backend.
type CatalogGateway interface {
	FetchListing(ctx context.Context, listingID string) (*catalog.Listing, error)
}

// BookingRequest is the draft snapshot sent upstream on booking
// creation, mirroring the backend's POST /bookings payload.
type BookingRequest struct {
	ListingID        string           `json:"listingId"`
	RoomType         string           `json:"roomType"`
	Checkin          string           `json:"checkin"`
	Checkout         string           `json:"checkout"`
	Adults           int              `json:"adults"`
	Children         int              `json:"children"`
	Services         []string         `json:"services"`
	TotalAmountCents int64            `json:"totalAmountCents"`
	GuestInfo        BookingGuestInfo `json:"guestInfo"`
	SpecialRequests  string           `json:"specialRequests,omitempty"`
	TermsAccepted    bool             `json:"termsAccepted"`
}

type BookingGuestInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	CPF   string `json:"cpf"`
}

type PaymentSession struct {
	SessionID  string
	PaymentURL string
}

type BookingGateway interface {
	CheckAvailability(ctx context.Context, listingID string, stay reservation.StayRange) (bool, error)
	CreateBooking(ctx context.Context, req BookingRequest, bearer string) (*reservation.BookingRecord, error)
	CreatePaymentSession(ctx context.Context, bookingID string, bearer string) (*PaymentSession, error)
}

type GuestProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	TaxID string `json:"taxId"`
}

type ProfileGateway interface {
	FetchProfile(ctx context.Context, bearer string) (*GuestProfile, error)
}

// Snapshot is the flattened projection of a completed booking written
// for the confirmation page. One JSON blob per session key,
// last-write-wins, read back exactly once by the confirmation view.
type Snapshot struct {
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

// SnapshotStore is the session-scoped blob store behind the
// confirmation page. Load returns nil without error when nothing has
// been saved yet.
type SnapshotStore interface {
	Save(ctx context.Context, sessionKey string, snap *Snapshot) error
	Load(ctx context.Context, sessionKey string) (*Snapshot, error)
	Clear(ctx context.Context, sessionKey string) error
}

type SettingsStore interface {
	Save(ctx context.Context, sessionKey string, prefs settings.Preferences) error
	Load(ctx context.Context, sessionKey string) (*settings.Preferences, error)
}

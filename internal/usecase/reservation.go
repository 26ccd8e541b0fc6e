package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"seapass-bff/internal/domain/catalog"
	"seapass-bff/internal/domain/reservation"
	"seapass-bff/internal/pkg/clock"
	"seapass-bff/internal/pkg/errs"

	"github.com/google/uuid"
)

// ValidationError carries every field-level violation found in a draft
// so the wizard can surface them all in one pass.
type ValidationError struct {
	Fields []reservation.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("reservation validation failed: %d field error(s)", len(e.Fields))
}

func (e *ValidationError) Is(target error) bool {
	return target == errs.ErrValidationFailed
}

// AuthContext is the caller identity extracted by the handler layer.
// Everything is optional: an anonymous caller runs in demo mode.
type AuthContext struct {
	Bearer    string
	Subject   string
	SessionID string
}

// SessionKey scopes the snapshot and settings blobs. Authenticated
// subject wins over the client-chosen session id.
func (a AuthContext) SessionKey() string {
	if a.Subject != "" {
		return a.Subject
	}
	if a.SessionID != "" {
		return a.SessionID
	}
	return "demo"
}

// DraftInput carries one wizard state from the handler layer. Zero
// values mean "not filled in yet"; Quote tolerates a partial draft,
// Submit does not.
type DraftInput struct {
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

type QuoteResult struct {
	Listing   *catalog.Listing
	Room      *catalog.RoomOption
	Breakdown reservation.Breakdown
}

type SubmitResult struct {
	Booking     reservation.BookingRecord
	SessionID   string
	RedirectURL string
	Snapshot    *Snapshot
}

type ReservationUseCase interface {
	Quote(ctx context.Context, input DraftInput) (*QuoteResult, error)
	Submit(ctx context.Context, input DraftInput, auth AuthContext) (*SubmitResult, error)
}

type reservationUseCaseImpl struct {
	catalog        CatalogUseCase
	gateway        BookingGateway
	snapshots      SnapshotStore
	calculator     *reservation.Calculator
	policy         FallbackPolicy
	confirmPageURL string
	clock          clock.Clock
	logger         *slog.Logger
}

func NewReservationUseCase(
	catalogUC CatalogUseCase,
	gateway BookingGateway,
	snapshots SnapshotStore,
	calculator *reservation.Calculator,
	policy FallbackPolicy,
	confirmPageURL string,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		catalog:        catalogUC,
		gateway:        gateway,
		snapshots:      snapshots,
		calculator:     calculator,
		policy:         policy,
		confirmPageURL: confirmPageURL,
		clock:          clk,
		logger:         logger,
	}
}

// Quote recomputes the price breakdown for the current draft state.
// It is callable at any point of the wizard: with missing dates or no
// selected room it returns a zeroed breakdown instead of failing.
func (r *reservationUseCaseImpl) Quote(ctx context.Context, input DraftInput) (*QuoteResult, error) {
	listing, draft, room, err := r.buildDraft(ctx, input)
	if err != nil {
		return nil, err
	}

	return &QuoteResult{
		Listing:   listing,
		Room:      room,
		Breakdown: r.calculator.Breakdown(draft, room),
	}, nil
}

// Submit runs the four-step pipeline: local validation, availability
// check, booking creation, payment session. Validation failures are
// always fatal; upstream failures degrade to fallback values under the
// lenient policy so the flow reaches a terminal state even offline.
func (r *reservationUseCaseImpl) Submit(ctx context.Context, input DraftInput, auth AuthContext) (*SubmitResult, error) {
	listing, draft, room, err := r.buildDraft(ctx, input)
	if err != nil {
		return nil, err
	}

	if fieldErrs := reservation.Validate(draft); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	if err := r.checkAvailability(ctx, draft); err != nil {
		return nil, err
	}

	breakdown := r.calculator.Breakdown(draft, room)
	booking, err := r.createBooking(ctx, draft, breakdown, auth.Bearer)
	if err != nil {
		return nil, err
	}

	session, err := r.createPaymentSession(ctx, booking.ID, auth.Bearer)
	if err != nil {
		return nil, err
	}

	snap := r.buildSnapshot(listing, draft, room, breakdown, booking)
	if saveErr := r.snapshots.Save(ctx, auth.SessionKey(), snap); saveErr != nil {
		// The booking already exists; losing the confirmation blob is
		// not worth failing the whole submission over.
		r.logger.Warn("failed to persist reservation snapshot",
			"booking_id", booking.ID, "error", saveErr.Error())
	}

	return &SubmitResult{
		Booking:     *booking,
		SessionID:   session.SessionID,
		RedirectURL: session.PaymentURL,
		Snapshot:    snap,
	}, nil
}

func (r *reservationUseCaseImpl) buildDraft(ctx context.Context, input DraftInput) (*catalog.Listing, *reservation.Draft, *catalog.RoomOption, error) {
	listing, err := r.catalog.GetListing(ctx, input.ListingID)
	if err != nil {
		return nil, nil, nil, err
	}

	draft := reservation.NewDraft(input.ListingID)

	var room *catalog.RoomOption
	if input.RoomType != "" {
		roomType := catalog.RoomType(input.RoomType)
		if selErr := draft.SelectRoom(listing, roomType); selErr != nil {
			return nil, nil, nil, errs.Mark(selErr, errs.ErrUnknownRoomType)
		}
		selected, _ := listing.Room(roomType)
		room = &selected
	}

	if !input.Checkin.IsZero() || !input.Checkout.IsZero() {
		draft.SetStay(input.Checkin, input.Checkout)
	}

	if guestErr := draft.SetGuests(input.Adults, input.Children); guestErr != nil {
		return nil, nil, nil, &ValidationError{Fields: []reservation.FieldError{
			{Field: "guests", Message: guestErr.Error()},
		}}
	}

	for _, id := range input.Services {
		draft.ToggleService(reservation.ServiceID(id), true)
	}

	draft.SetContact(reservation.NewContact(input.GuestName, input.GuestEmail, input.GuestPhone, input.GuestCPF))
	draft.SetSpecialRequests(input.SpecialRequests)
	draft.AcceptTerms(input.TermsAccepted)

	return listing, draft, room, nil
}

func (r *reservationUseCaseImpl) checkAvailability(ctx context.Context, draft *reservation.Draft) error {
	available, err := r.gateway.CheckAvailability(ctx, draft.ListingID(), draft.Stay())
	if err != nil {
		if !r.policy.AssumeAvailable {
			return errs.Mark(err, errs.ErrGatewayUnavailable)
		}
		r.logger.Warn("availability check degraded, assuming available",
			"listing_id", draft.ListingID(), "error", err.Error())
		return nil
	}
	if !available {
		return errs.ErrDatesUnavailable
	}
	return nil
}

func (r *reservationUseCaseImpl) createBooking(
	ctx context.Context,
	draft *reservation.Draft,
	breakdown reservation.Breakdown,
	bearer string,
) (*reservation.BookingRecord, error) {
	req := buildBookingRequest(draft, breakdown)

	booking, err := r.gateway.CreateBooking(ctx, req, bearer)
	if err == nil {
		return booking, nil
	}
	if !r.policy.SynthesizeBooking {
		return nil, errs.Mark(err, errs.ErrGatewayUnavailable)
	}

	synthesized := &reservation.BookingRecord{
		ID:     uuid.NewString(),
		Status: reservation.StatusPendingPayment,
	}
	r.logger.Warn("booking creation degraded to synthesized record",
		"booking_id", synthesized.ID, "error", err.Error())
	return synthesized, nil
}

func (r *reservationUseCaseImpl) createPaymentSession(ctx context.Context, bookingID, bearer string) (*PaymentSession, error) {
	session, err := r.gateway.CreatePaymentSession(ctx, bookingID, bearer)
	if err == nil {
		return session, nil
	}
	if !r.policy.SynthesizePayment {
		return nil, errs.Mark(err, errs.ErrGatewayUnavailable)
	}

	// Skip real payment entirely and land on the confirmation page.
	synthesized := &PaymentSession{
		SessionID:  "mock_session_" + uuid.NewString(),
		PaymentURL: r.confirmPageURL,
	}
	r.logger.Warn("payment session degraded to synthesized session",
		"booking_id", bookingID, "session_id", synthesized.SessionID, "error", err.Error())
	return synthesized, nil
}

func buildBookingRequest(draft *reservation.Draft, breakdown reservation.Breakdown) BookingRequest {
	services := make([]string, 0, len(draft.Services()))
	for _, id := range draft.Services() {
		services = append(services, id.String())
	}

	contact := draft.Contact()
	return BookingRequest{
		ListingID:        draft.ListingID(),
		RoomType:         draft.RoomType().String(),
		Checkin:          draft.Stay().Checkin().Format(time.DateOnly),
		Checkout:         draft.Stay().Checkout().Format(time.DateOnly),
		Adults:           draft.Guests().Adults(),
		Children:         draft.Guests().Children(),
		Services:         services,
		TotalAmountCents: breakdown.Total.Cents(),
		GuestInfo: BookingGuestInfo{
			Name:  contact.Name(),
			Email: contact.Email(),
			Phone: contact.Phone(),
			CPF:   contact.TaxID(),
		},
		SpecialRequests: draft.SpecialRequests(),
		TermsAccepted:   draft.TermsAccepted(),
	}
}

func (r *reservationUseCaseImpl) buildSnapshot(
	listing *catalog.Listing,
	draft *reservation.Draft,
	room *catalog.RoomOption,
	breakdown reservation.Breakdown,
	booking *reservation.BookingRecord,
) *Snapshot {
	services := make([]string, 0, len(draft.Services()))
	for _, id := range draft.Services() {
		services = append(services, id.String())
	}

	contact := draft.Contact()
	snap := &Snapshot{
		BookingID:       booking.ID,
		Status:          booking.Status.String(),
		HotelName:       listing.Name,
		HotelAddress:    listing.Address,
		RoomType:        draft.RoomType().String(),
		Checkin:         draft.Stay().Checkin().Format(time.DateOnly),
		Checkout:        draft.Stay().Checkout().Format(time.DateOnly),
		Nights:          breakdown.Nights,
		Adults:          draft.Guests().Adults(),
		Children:        draft.Guests().Children(),
		Services:        services,
		GuestName:       contact.Name(),
		GuestEmail:      contact.Email(),
		GuestPhone:      contact.Phone(),
		GuestCPF:        contact.TaxID(),
		SpecialRequests: draft.SpecialRequests(),
		TotalCents:      breakdown.Total.Cents(),
		CreatedAt:       r.clock.Now().UTC().Format(time.RFC3339),
	}
	if room != nil {
		snap.RoomName = room.Name
	}
	return snap
}

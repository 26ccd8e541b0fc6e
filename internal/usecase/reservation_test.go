//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"seapass-bff/internal/domain/catalog"
	"seapass-bff/internal/domain/reservation"
	"seapass-bff/internal/pkg/clock"
	"seapass-bff/internal/pkg/errs"
	"seapass-bff/internal/usecase"
	"seapass-bff/tests/common/builder"
	usecasemock "seapass-bff/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const confirmPageURL = "http://localhost:8080/confirmation"

var errUpstreamDown = errors.New("connection refused")

type ReservationUseCaseTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockCatalog   *usecasemock.MockCatalogUseCase
	mockGateway   *usecasemock.MockBookingGateway
	mockSnapshots *usecasemock.MockSnapshotStore
	clock         *clock.MockClock
}

func TestReservationUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ReservationUseCaseTestSuite))
}

func (s *ReservationUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = usecasemock.NewMockCatalogUseCase(s.mockCtrl)
	s.mockGateway = usecasemock.NewMockBookingGateway(s.mockCtrl)
	s.mockSnapshots = usecasemock.NewMockSnapshotStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
}

func (s *ReservationUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReservationUseCaseTestSuite) newUseCase(policy usecase.FallbackPolicy) usecase.ReservationUseCase {
	return usecase.NewReservationUseCase(
		s.mockCatalog,
		s.mockGateway,
		s.mockSnapshots,
		reservation.NewDefaultCalculator(),
		policy,
		confirmPageURL,
		s.clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *ReservationUseCaseTestSuite) expectListing() {
	s.mockCatalog.EXPECT().GetListing(gomock.Any(), catalog.DemoListingID).
		Return(catalog.DemoListing(), nil)
}

// ================================================================================
// Quote
// ================================================================================

func (s *ReservationUseCaseTestSuite) TestQuote() {
	s.Run("full draft yields full breakdown", func() {
		s.expectListing()
		uc := s.newUseCase(usecase.LenientFallback())

		input := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.Services = []string{"breakfast", "spa"}
		}).BuildInput()

		result, err := uc.Quote(context.Background(), input)
		s.Require().NoError(err)
		s.Equal(3, result.Breakdown.Nights)
		s.Equal(int64(267000), result.Breakdown.RoomSubtotal.Cents())
		s.Equal(int64(26700), result.Breakdown.Taxes.Cents())
		s.Equal(int64(3*8500+35000), result.Breakdown.ServicesSubtotal.Cents())
		s.Equal(int64(293700+60500), result.Breakdown.Total.Cents())
		s.Equal("Deluxe Room", result.Room.Name)
	})

	s.Run("partial draft yields zero breakdown instead of failing", func() {
		s.expectListing()
		uc := s.newUseCase(usecase.LenientFallback())

		input := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.RoomType = ""
		}).BuildInput()

		result, err := uc.Quote(context.Background(), input)
		s.Require().NoError(err)
		s.Nil(result.Room)
		s.Equal(reservation.Breakdown{}, result.Breakdown)
	})

	s.Run("unknown room type", func() {
		s.expectListing()
		uc := s.newUseCase(usecase.LenientFallback())

		input := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.RoomType = "penthouse"
		}).BuildInput()

		_, err := uc.Quote(context.Background(), input)
		s.Require().True(errs.Is(err, errs.ErrUnknownRoomType))
	})

	s.Run("negative guest counts become a field error", func() {
		s.expectListing()
		uc := s.newUseCase(usecase.LenientFallback())

		input := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			b.Adults = -1
		}).BuildInput()

		_, err := uc.Quote(context.Background(), input)
		s.Require().ErrorIs(err, errs.ErrValidationFailed)

		var vErr *usecase.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Require().Len(vErr.Fields, 1)
		s.Equal("guests", vErr.Fields[0].Field)
	})
}

// ================================================================================
// Submit
// ================================================================================

func (s *ReservationUseCaseTestSuite) TestSubmit_Success() {
	s.expectListing()
	s.mockGateway.EXPECT().CheckAvailability(gomock.Any(), catalog.DemoListingID, gomock.Any()).
		Return(true, nil)
	s.mockGateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), "token-123").
		DoAndReturn(func(_ context.Context, req usecase.BookingRequest, _ string) (*reservation.BookingRecord, error) {
			s.Equal("deluxe", req.RoomType)
			s.Equal("2026-10-10", req.Checkin)
			s.Equal("2026-10-13", req.Checkout)
			s.Equal(int64(293700), req.TotalAmountCents)
			s.Equal("João Silva", req.GuestInfo.Name)
			s.True(req.TermsAccepted)
			return &reservation.BookingRecord{ID: "bk-1", Status: reservation.StatusConfirmed}, nil
		})
	s.mockGateway.EXPECT().CreatePaymentSession(gomock.Any(), "bk-1", "token-123").
		Return(&usecase.PaymentSession{SessionID: "cs_123", PaymentURL: "https://pay.example/cs_123"}, nil)
	s.mockSnapshots.EXPECT().Save(gomock.Any(), "user-42", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, snap *usecase.Snapshot) error {
			s.Equal("bk-1", snap.BookingID)
			s.Equal("confirmed", snap.Status)
			s.Equal("Copacabana Palace", snap.HotelName)
			s.Equal("Deluxe Room", snap.RoomName)
			s.Equal(3, snap.Nights)
			s.Equal(int64(293700), snap.TotalCents)
			s.Equal("2026-09-01T12:00:00Z", snap.CreatedAt)
			return nil
		})

	uc := s.newUseCase(usecase.LenientFallback())
	auth := usecase.AuthContext{Bearer: "token-123", Subject: "user-42"}

	result, err := uc.Submit(context.Background(), builder.NewDraftBuilder().BuildInput(), auth)
	s.Require().NoError(err)
	s.Equal("bk-1", result.Booking.ID)
	s.Equal("cs_123", result.SessionID)
	s.Equal("https://pay.example/cs_123", result.RedirectURL)
	s.NotNil(result.Snapshot)
}

func (s *ReservationUseCaseTestSuite) TestSubmit_ValidationIsAlwaysFatal() {
	s.expectListing()
	uc := s.newUseCase(usecase.LenientFallback())

	input := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
		b.GuestName = ""
		b.GuestEmail = ""
		b.TermsAccepted = false
	}).BuildInput()

	_, err := uc.Submit(context.Background(), input, usecase.AuthContext{})
	s.Require().ErrorIs(err, errs.ErrValidationFailed)

	var vErr *usecase.ValidationError
	s.Require().ErrorAs(err, &vErr)
	got := make([]string, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		got = append(got, f.Field)
	}
	s.ElementsMatch([]string{"fullname", "email", "terms"}, got)
}

func (s *ReservationUseCaseTestSuite) TestSubmit_UnavailableDatesAbort() {
	s.expectListing()
	s.mockGateway.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)

	uc := s.newUseCase(usecase.LenientFallback())

	_, err := uc.Submit(context.Background(), builder.NewDraftBuilder().BuildInput(), usecase.AuthContext{})
	s.Require().ErrorIs(err, errs.ErrDatesUnavailable)
}

func (s *ReservationUseCaseTestSuite) TestSubmit_LenientDegradesEveryUpstreamFailure() {
	s.expectListing()
	s.mockGateway.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, errUpstreamDown)
	s.mockGateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errUpstreamDown)
	s.mockGateway.EXPECT().CreatePaymentSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errUpstreamDown)
	s.mockSnapshots.EXPECT().Save(gomock.Any(), "demo", gomock.Any()).Return(nil)

	uc := s.newUseCase(usecase.LenientFallback())

	result, err := uc.Submit(context.Background(), builder.NewDraftBuilder().BuildInput(), usecase.AuthContext{})
	s.Require().NoError(err)
	s.NotEmpty(result.Booking.ID)
	s.Equal(reservation.StatusPendingPayment, result.Booking.Status)
	s.Contains(result.SessionID, "mock_session_")
	s.Equal(confirmPageURL, result.RedirectURL)
}

func (s *ReservationUseCaseTestSuite) TestSubmit_StrictSurfacesUpstreamFailures() {
	s.Run("availability check failure", func() {
		s.expectListing()
		s.mockGateway.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, errUpstreamDown)

		uc := s.newUseCase(usecase.StrictFallback())

		_, err := uc.Submit(context.Background(), builder.NewDraftBuilder().BuildInput(), usecase.AuthContext{})
		s.Require().True(errs.Is(err, errs.ErrGatewayUnavailable))
	})

	s.Run("booking creation failure", func() {
		s.expectListing()
		s.mockGateway.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		s.mockGateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errUpstreamDown)

		uc := s.newUseCase(usecase.StrictFallback())

		_, err := uc.Submit(context.Background(), builder.NewDraftBuilder().BuildInput(), usecase.AuthContext{})
		s.Require().True(errs.Is(err, errs.ErrGatewayUnavailable))
	})

	s.Run("payment session failure", func() {
		s.expectListing()
		s.mockGateway.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)
		s.mockGateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&reservation.BookingRecord{ID: "bk-1", Status: reservation.StatusConfirmed}, nil)
		s.mockGateway.EXPECT().CreatePaymentSession(gomock.Any(), "bk-1", gomock.Any()).
			Return(nil, errUpstreamDown)

		uc := s.newUseCase(usecase.StrictFallback())

		_, err := uc.Submit(context.Background(), builder.NewDraftBuilder().BuildInput(), usecase.AuthContext{})
		s.Require().True(errs.Is(err, errs.ErrGatewayUnavailable))
	})
}

func (s *ReservationUseCaseTestSuite) TestSubmit_SnapshotSaveFailureIsNotFatal() {
	s.expectListing()
	s.mockGateway.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil)
	s.mockGateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&reservation.BookingRecord{ID: "bk-1", Status: reservation.StatusConfirmed}, nil)
	s.mockGateway.EXPECT().CreatePaymentSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&usecase.PaymentSession{SessionID: "cs_1", PaymentURL: "https://pay.example/cs_1"}, nil)
	s.mockSnapshots.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	uc := s.newUseCase(usecase.LenientFallback())

	result, err := uc.Submit(context.Background(), builder.NewDraftBuilder().BuildInput(), usecase.AuthContext{})
	s.Require().NoError(err)
	s.Equal("bk-1", result.Booking.ID)
}

func (s *ReservationUseCaseTestSuite) TestSubmit_SessionKeyPrecedence() {
	cases := []struct {
		name string
		auth usecase.AuthContext
		key  string
	}{
		{"subject wins over session id", usecase.AuthContext{Subject: "user-1", SessionID: "sess-1"}, "user-1"},
		{"session id when anonymous", usecase.AuthContext{SessionID: "sess-1"}, "sess-1"},
		{"demo when nothing identifies the caller", usecase.AuthContext{}, "demo"},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			s.expectListing()
			s.mockGateway.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(true, nil)
			s.mockGateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&reservation.BookingRecord{ID: "bk-1", Status: reservation.StatusConfirmed}, nil)
			s.mockGateway.EXPECT().CreatePaymentSession(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&usecase.PaymentSession{SessionID: "cs_1", PaymentURL: "u"}, nil)
			s.mockSnapshots.EXPECT().Save(gomock.Any(), c.key, gomock.Any()).Return(nil)

			uc := s.newUseCase(usecase.LenientFallback())
			_, err := uc.Submit(context.Background(), builder.NewDraftBuilder().BuildInput(), c.auth)
			s.Require().NoError(err)
		})
	}
}

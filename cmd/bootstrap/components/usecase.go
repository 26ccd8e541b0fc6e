package components

import (
	"log/slog"
	"strings"

	"seapass-bff/internal/domain/reservation"
	"seapass-bff/internal/pkg/clock"
	"seapass-bff/internal/pkg/config"
	"seapass-bff/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewFallbackPolicy,
		NewPriceCalculator,
		usecase.NewCatalogUseCase,
		NewReservationUseCase,
		usecase.NewConfirmationUseCase,
		usecase.NewSettingsUseCase,
		usecase.NewProfileUseCase,
	),
)

func NewFallbackPolicy(cfg config.Config) usecase.FallbackPolicy {
	return usecase.FallbackPolicyFromMode(cfg.Booking.FallbackMode)
}

func NewPriceCalculator(cfg config.Config) *reservation.Calculator {
	return reservation.NewCalculator(cfg.Booking.TaxRateBps, reservation.DefaultServiceTable())
}

func NewReservationUseCase(
	catalogUC usecase.CatalogUseCase,
	bookingGW usecase.BookingGateway,
	snapshots usecase.SnapshotStore,
	calculator *reservation.Calculator,
	policy usecase.FallbackPolicy,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) usecase.ReservationUseCase {
	confirmPageURL := strings.TrimRight(cfg.Server.PublicBaseURL, "/") + "/confirmation"
	return usecase.NewReservationUseCase(catalogUC, bookingGW, snapshots, calculator, policy, confirmPageURL, clk, logger)
}

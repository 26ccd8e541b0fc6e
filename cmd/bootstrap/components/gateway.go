package components

import (
	"log/slog"

	"seapass-bff/internal/infra/gateway"
	"seapass-bff/internal/infra/kvstore"
	"seapass-bff/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewUpstreamClient,
		gateway.NewCatalogClient,
		gateway.NewBookingClient,
		gateway.NewProfileClient,
		kvstore.NewSnapshotStore,
		kvstore.NewSettingsStore,
	),
)

func NewUpstreamClient(cfg config.Config, logger *slog.Logger) *gateway.Client {
	return gateway.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logger)
}

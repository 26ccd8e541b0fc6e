package usecase

import (
	"context"
	"log/slog"

	"seapass-bff/internal/domain/catalog"
	"seapass-bff/internal/pkg/errs"
)

type CatalogUseCase interface {
	GetListing(ctx context.Context, listingID string) (*catalog.Listing, error)
}

type catalogUseCaseImpl struct {
	gateway CatalogGateway
	policy  FallbackPolicy
	logger  *slog.Logger
}

func NewCatalogUseCase(gateway CatalogGateway, policy FallbackPolicy, logger *slog.Logger) CatalogUseCase {
	return &catalogUseCaseImpl{
		gateway: gateway,
		policy:  policy,
		logger:  logger,
	}
}

// GetListing fetches the listing from upstream, degrading to the
// built-in demo catalog under the lenient policy so the reservation
// wizard keeps working with the backend down.
func (c *catalogUseCaseImpl) GetListing(ctx context.Context, listingID string) (*catalog.Listing, error) {
	listing, err := c.gateway.FetchListing(ctx, listingID)
	if err == nil {
		return listing, nil
	}

	if !c.policy.ServeDemoCatalog {
		return nil, errs.Mark(err, errs.ErrListingNotFound)
	}

	c.logger.Warn("listing fetch degraded to demo catalog",
		"listing_id", listingID, "error", err.Error())
	demo := catalog.DemoListing()
	demo.ID = listingID
	return demo, nil
}

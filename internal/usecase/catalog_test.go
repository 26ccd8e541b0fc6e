//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"seapass-bff/internal/domain/catalog"
	"seapass-bff/internal/pkg/errs"
	"seapass-bff/internal/usecase"
	usecasemock "seapass-bff/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCatalogUseCase_GetListing(t *testing.T) {
	t.Run("returns upstream listing when the fetch succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := usecasemock.NewMockCatalogGateway(ctrl)
		gw.EXPECT().FetchListing(gomock.Any(), "42").
			Return(&catalog.Listing{ID: "42", Name: "Hotel Fasano"}, nil)

		uc := usecase.NewCatalogUseCase(gw, usecase.LenientFallback(), discardLogger())

		listing, err := uc.GetListing(context.Background(), "42")
		require.NoError(t, err)
		assert.Equal(t, "Hotel Fasano", listing.Name)
	})

	t.Run("lenient policy degrades to the demo catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := usecasemock.NewMockCatalogGateway(ctrl)
		gw.EXPECT().FetchListing(gomock.Any(), "42").
			Return(nil, errUpstreamDown)

		uc := usecase.NewCatalogUseCase(gw, usecase.LenientFallback(), discardLogger())

		listing, err := uc.GetListing(context.Background(), "42")
		require.NoError(t, err)
		assert.Equal(t, "42", listing.ID)
		assert.Equal(t, "Copacabana Palace", listing.Name)
		assert.Len(t, listing.Rooms, 3)
	})

	t.Run("strict policy surfaces the failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := usecasemock.NewMockCatalogGateway(ctrl)
		gw.EXPECT().FetchListing(gomock.Any(), "42").
			Return(nil, errUpstreamDown)

		uc := usecase.NewCatalogUseCase(gw, usecase.StrictFallback(), discardLogger())

		_, err := uc.GetListing(context.Background(), "42")
		require.True(t, errs.Is(err, errs.ErrListingNotFound))
	})
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"seapass-bff/internal/domain/catalog"
	"seapass-bff/internal/handler/api"
	"seapass-bff/internal/pkg/errs"
	"seapass-bff/tests/common/httptest"
	usecasemock "seapass-bff/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newListingRouter(t *testing.T) (*gin.Engine, *usecasemock.MockCatalogUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mockCatalog := usecasemock.NewMockCatalogUseCase(ctrl)
	router := gin.New()
	router.GET("/listings/:id", api.NewListingHandler(mockCatalog).GetListing)
	return router, mockCatalog
}

func TestListingHandler_GetListing(t *testing.T) {
	t.Run("success: returns rooms with rates in cents", func(t *testing.T) {
		router, mockCatalog := newListingRouter(t)
		mockCatalog.EXPECT().GetListing(gomock.Any(), "1").
			Return(catalog.DemoListing(), nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/listings/1", nil, "")

		var body struct {
			Name  string `json:"name"`
			Rooms []struct {
				Type             string `json:"type"`
				NightlyRateCents int64  `json:"nightlyRateCents"`
			} `json:"rooms"`
		}
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "Copacabana Palace", body.Name)
		require.Len(t, body.Rooms, 3)
		assert.Equal(t, "deluxe", body.Rooms[0].Type)
		assert.EqualValues(t, 89000, body.Rooms[0].NightlyRateCents)
	})

	t.Run("error: 404 when the listing cannot be served", func(t *testing.T) {
		router, mockCatalog := newListingRouter(t)
		mockCatalog.EXPECT().GetListing(gomock.Any(), "99").
			Return(nil, errs.ErrListingNotFound)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/listings/99", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "")
	})
}

package api

import (
	"net/http"

	resdto "seapass-bff/internal/handler/dto/response"
	"seapass-bff/internal/handler/httperr"
	"seapass-bff/internal/pkg/errs"
	"seapass-bff/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewListingHandler(catalogUseCase usecase.CatalogUseCase) *ListingHandler {
	return &ListingHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary Get listing
// @Description Get a hotel listing with its room options and nightly rates
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [get]
func (h *ListingHandler) GetListing(c *gin.Context) {
	listingID := c.Param("id")

	listing, err := h.catalogUseCase.GetListing(c.Request.Context(), listingID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrListingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromListing(listing))
}

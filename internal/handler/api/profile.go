package api

import (
	"net/http"

	"seapass-bff/internal/handler/httperr"
	"seapass-bff/internal/handler/middleware"
	"seapass-bff/internal/pkg/errs"
	"seapass-bff/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// @Summary Get guest profile
// @Description Get the guest profile used to prefill the contact form
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} usecase.GuestProfile
// @Failure 502 {object} map[string]string
// @Router /profile [get]
func (h *ProfileHandler) Current(c *gin.Context) {
	profile, err := h.profileUseCase.Current(c.Request.Context(), middleware.AuthFromContext(c))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrGatewayUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Profile service is unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

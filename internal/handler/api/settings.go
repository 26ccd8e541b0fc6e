package api

import (
	"net/http"

	reqdto "seapass-bff/internal/handler/dto/request"
	"seapass-bff/internal/handler/httperr"
	"seapass-bff/internal/handler/middleware"
	"seapass-bff/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsUseCase usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
	}
}

// @Summary Get settings
// @Description Get the stored preferences for the current session, or the defaults
// @Tags settings
// @Produce json
// @Param X-Session-ID header string false "Anonymous session identifier"
// @Success 200 {object} settings.Preferences
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	prefs, err := h.settingsUseCase.Get(c.Request.Context(), middleware.AuthFromContext(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// @Summary Update settings
// @Description Replace the stored preferences for the current session
// @Tags settings
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Anonymous session identifier"
// @Param request body reqdto.UpdateSettingsRequest true "Preferences"
// @Success 200 {object} settings.Preferences
// @Failure 400 {object} map[string]string
// @Router /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	prefs, err := h.settingsUseCase.Update(c.Request.Context(), middleware.AuthFromContext(c), req.ToDomain())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

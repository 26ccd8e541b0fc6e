package api

import (
	"net/http"

	"seapass-bff/internal/domain/reservation"
	reqdto "seapass-bff/internal/handler/dto/request"
	resdto "seapass-bff/internal/handler/dto/response"
	"seapass-bff/internal/handler/httperr"
	"seapass-bff/internal/handler/middleware"
	"seapass-bff/internal/pkg/errs"
	"seapass-bff/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
	calculator         *reservation.Calculator
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase, calculator *reservation.Calculator) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
		calculator:         calculator,
	}
}

// @Summary Quote reservation draft
// @Description Price a reservation draft without submitting it
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.DraftRequest true "Reservation draft"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/quote [post]
func (h *ReservationHandler) Quote(c *gin.Context) {
	var req reqdto.DraftRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.reservationUseCase.Quote(c.Request.Context(), input)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(result))
}

// @Summary Submit reservation
// @Description Validate the draft, check availability, create the booking and open a payment session
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Anonymous session identifier"
// @Param request body reqdto.DraftRequest true "Reservation draft"
// @Success 201 {object} resdto.SubmitResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Submit(c *gin.Context) {
	var req reqdto.DraftRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.reservationUseCase.Submit(c.Request.Context(), input, middleware.AuthFromContext(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

// @Summary List service add-ons
// @Description List the optional services available on a reservation with their prices
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ServiceAddonResponse
// @Router /reservations/services [get]
func (h *ReservationHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromServiceTable(h.calculator.Addons()))
}

func (h *ReservationHandler) renderError(c *gin.Context, err error) {
	var validationErr *usecase.ValidationError

	switch {
	case errs.As(err, &validationErr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Reservation validation failed",
			resdto.FromFieldErrors(validationErr.Fields))
	case errs.Is(err, errs.ErrUnknownRoomType):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown room type for this listing", nil)
	case errs.Is(err, errs.ErrListingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
	case errs.Is(err, errs.ErrDatesUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Selected dates are not available", nil)
	case errs.Is(err, errs.ErrGatewayUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Booking service is unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

package api

import (
	"html/template"
	"net/http"

	resdto "seapass-bff/internal/handler/dto/response"
	"seapass-bff/internal/handler/httperr"
	"seapass-bff/internal/handler/middleware"
	"seapass-bff/internal/pkg/errs"
	"seapass-bff/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ConfirmationHandler struct {
	confirmationUseCase usecase.ConfirmationUseCase
	receiptTemplate     *template.Template
}

func NewConfirmationHandler(confirmationUseCase usecase.ConfirmationUseCase) *ConfirmationHandler {
	return &ConfirmationHandler{
		confirmationUseCase: confirmationUseCase,
		receiptTemplate:     template.Must(template.New("receipt").Parse(receiptHTML)),
	}
}

// @Summary Get last confirmation
// @Description Get the last submitted reservation for the current session
// @Tags confirmation
// @Produce json
// @Param X-Session-ID header string false "Anonymous session identifier"
// @Success 200 {object} resdto.ConfirmationResponse
// @Failure 404 {object} map[string]string
// @Router /confirmation [get]
func (h *ConfirmationHandler) Last(c *gin.Context) {
	snap, err := h.confirmationUseCase.Last(c.Request.Context(), middleware.AuthFromContext(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSnapshot(snap))
}

// @Summary Get printable receipt
// @Description Render the last submitted reservation as a printable HTML receipt
// @Tags confirmation
// @Produce html
// @Param X-Session-ID header string false "Anonymous session identifier"
// @Success 200 {string} string "HTML receipt"
// @Failure 404 {object} map[string]string
// @Router /confirmation/receipt [get]
func (h *ConfirmationHandler) Receipt(c *gin.Context) {
	snap, err := h.confirmationUseCase.Last(c.Request.Context(), middleware.AuthFromContext(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if execErr := h.receiptTemplate.Execute(c.Writer, resdto.NewReceiptView(snap)); execErr != nil {
		_ = c.Error(execErr)
	}
}

// @Summary Clear confirmation
// @Description Discard the stored confirmation for the current session
// @Tags confirmation
// @Param X-Session-ID header string false "Anonymous session identifier"
// @Success 204
// @Router /confirmation [delete]
func (h *ConfirmationHandler) Clear(c *gin.Context) {
	if err := h.confirmationUseCase.Clear(c.Request.Context(), middleware.AuthFromContext(c)); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ConfirmationHandler) renderError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrSnapshotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No reservation has been submitted in this session", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

const receiptHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Reservation Receipt</title>
<style>
body { font-family: Georgia, serif; max-width: 640px; margin: 2rem auto; color: #222; }
h1 { font-size: 1.4rem; border-bottom: 2px solid #222; padding-bottom: .5rem; }
table { width: 100%; border-collapse: collapse; margin: 1rem 0; }
td { padding: .35rem 0; vertical-align: top; }
td:first-child { color: #666; width: 40%; }
.total { font-weight: bold; border-top: 1px solid #222; }
.status { text-transform: uppercase; letter-spacing: .05em; }
</style>
</head>
<body>
<h1>{{.HotelName}}</h1>
<p>{{.HotelAddress}}</p>
<table>
<tr><td>Booking</td><td>{{.BookingID}}</td></tr>
<tr><td>Status</td><td class="status">{{.Status}}</td></tr>
<tr><td>Room</td><td>{{.RoomName}}</td></tr>
<tr><td>Check-in</td><td>{{.Checkin}}</td></tr>
<tr><td>Check-out</td><td>{{.Checkout}}</td></tr>
<tr><td>Nights</td><td>{{.Nights}}</td></tr>
<tr><td>Guests</td><td>{{.Adults}} adult(s), {{.Children}} child(ren)</td></tr>
{{if .Services}}<tr><td>Services</td><td>{{range .Services}}{{.}}<br>{{end}}</td></tr>{{end}}
<tr><td>Guest</td><td>{{.GuestName}}</td></tr>
<tr><td>Email</td><td>{{.GuestEmail}}</td></tr>
<tr><td>Phone</td><td>{{.GuestPhone}}</td></tr>
{{if .SpecialRequests}}<tr><td>Special requests</td><td>{{.SpecialRequests}}</td></tr>{{end}}
<tr class="total"><td>Total</td><td>{{.Total}}</td></tr>
</table>
<p>Issued {{.CreatedAt}}</p>
</body>
</html>
`

package response

import (
	"seapass-bff/internal/domain/reservation"
	"seapass-bff/internal/usecase"
)

type QuoteResponse struct {
	Nights                int                 `json:"nights"`
	RoomSubtotalCents     int64               `json:"roomSubtotalCents"`
	TaxesCents            int64               `json:"taxesCents"`
	ServicesSubtotalCents int64               `json:"servicesSubtotalCents"`
	TotalCents            int64               `json:"totalCents"`
	Room                  *RoomOptionResponse `json:"room,omitempty"`
}

func FromQuote(result *usecase.QuoteResult) *QuoteResponse {
	resp := &QuoteResponse{
		Nights:                result.Breakdown.Nights,
		RoomSubtotalCents:     result.Breakdown.RoomSubtotal.Cents(),
		TaxesCents:            result.Breakdown.Taxes.Cents(),
		ServicesSubtotalCents: result.Breakdown.ServicesSubtotal.Cents(),
		TotalCents:            result.Breakdown.Total.Cents(),
	}
	if result.Room != nil {
		resp.Room = &RoomOptionResponse{
			Type:             result.Room.Type.String(),
			Name:             result.Room.Name,
			NightlyRateCents: result.Room.NightlyRateCents,
			Size:             result.Room.Size,
			View:             result.Room.View,
			Features:         result.Room.Features,
		}
	}
	return resp
}

type SubmitResponse struct {
	BookingID   string `json:"bookingId"`
	Status      string `json:"status"`
	SessionID   string `json:"sessionId,omitempty"`
	RedirectURL string `json:"redirectUrl"`
}

func FromSubmitResult(result *usecase.SubmitResult) *SubmitResponse {
	return &SubmitResponse{
		BookingID:   result.Booking.ID,
		Status:      result.Booking.Status.String(),
		SessionID:   result.SessionID,
		RedirectURL: result.RedirectURL,
	}
}

type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func FromFieldErrors(fieldErrs []reservation.FieldError) []FieldErrorResponse {
	out := make([]FieldErrorResponse, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, FieldErrorResponse{Field: fe.Field, Message: fe.Message})
	}
	return out
}

type ServiceAddonResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	PerNight       bool   `json:"perNight"`
}

func FromServiceTable(table []reservation.ServiceAddon) []ServiceAddonResponse {
	out := make([]ServiceAddonResponse, 0, len(table))
	for _, addon := range table {
		out = append(out, ServiceAddonResponse{
			ID:             addon.ID.String(),
			Name:           addon.Name,
			UnitPriceCents: addon.UnitPriceCents,
			PerNight:       addon.PerNight,
		})
	}
	return out
}

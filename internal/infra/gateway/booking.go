package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"seapass-bff/internal/domain/reservation"
	"seapass-bff/internal/infra"
	"seapass-bff/internal/usecase"
)

type BookingClient struct {
	client *Client
}

func NewBookingClient(client *Client) usecase.BookingGateway {
	return &BookingClient{client: client}
}

func (c *BookingClient) CheckAvailability(ctx context.Context, listingID string, stay reservation.StayRange) (bool, error) {
	query := url.Values{}
	query.Set("checkin", stay.Checkin().Format(time.DateOnly))
	query.Set("checkout", stay.Checkout().Format(time.DateOnly))

	var payload struct {
		Available bool   `json:"available"`
		Message   string `json:"message"`
	}
	path := fmt.Sprintf("/listings/%s/availability", listingID)
	if err := c.client.doJSON(ctx, http.MethodGet, path, query, "", nil, &payload); err != nil {
		return false, err
	}
	return payload.Available, nil
}

func (c *BookingClient) CreateBooking(ctx context.Context, req usecase.BookingRequest, bearer string) (*reservation.BookingRecord, error) {
	var payload struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := c.client.doJSON(ctx, http.MethodPost, "/bookings", nil, bearer, req, &payload); err != nil {
		return nil, err
	}
	if payload.ID == "" {
		return nil, infra.WrapGatewayErr(infra.KindUnavailable, "booking response missing id", nil)
	}

	status := reservation.Status(payload.Status)
	if !status.IsValid() {
		status = reservation.StatusPendingPayment
	}
	return &reservation.BookingRecord{ID: payload.ID, Status: status}, nil
}

func (c *BookingClient) CreatePaymentSession(ctx context.Context, bookingID string, bearer string) (*usecase.PaymentSession, error) {
	body := map[string]string{"bookingId": bookingID}

	var payload struct {
		SessionID  string `json:"sessionId"`
		PaymentURL string `json:"paymentUrl"`
	}
	if err := c.client.doJSON(ctx, http.MethodPost, "/payments/create-session", nil, bearer, body, &payload); err != nil {
		return nil, err
	}
	if payload.PaymentURL == "" {
		return nil, infra.WrapGatewayErr(infra.KindUnavailable, "payment session missing redirect url", nil)
	}
	return &usecase.PaymentSession{
		SessionID:  payload.SessionID,
		PaymentURL: payload.PaymentURL,
	}, nil
}

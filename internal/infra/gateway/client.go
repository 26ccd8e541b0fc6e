// Package gateway holds the HTTP clients for the upstream SeaPass
// backend. Every call is attempted exactly once with the client's
// timeout; retry and fallback decisions belong to the usecase layer.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"seapass-bff/internal/infra"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, bearer string, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return infra.WrapGatewayErr(infra.KindRejected, "encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return infra.WrapGatewayErr(infra.KindRejected, "build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapGatewayErr(infra.KindUnavailable, fmt.Sprintf("%s %s", method, path), err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("upstream call",
		"method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return infra.WrapGatewayErr(infra.KindUnavailable, "read response body", err)
	}

	switch {
	case resp.StatusCode >= 500:
		return infra.WrapGatewayErr(infra.KindUnavailable, upstreamMessage(resp.StatusCode, raw), nil)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return infra.WrapGatewayErr(infra.KindUnauthorized, upstreamMessage(resp.StatusCode, raw), nil)
	case resp.StatusCode == http.StatusNotFound:
		return infra.WrapGatewayErr(infra.KindNotFound, upstreamMessage(resp.StatusCode, raw), nil)
	case resp.StatusCode >= 400:
		return infra.WrapGatewayErr(infra.KindRejected, upstreamMessage(resp.StatusCode, raw), nil)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return infra.WrapGatewayErr(infra.KindUnavailable, "decode response body", err)
	}
	return nil
}

// upstreamMessage prefers the backend's message field over a bare
// status code so degraded paths log something actionable.
func upstreamMessage(status int, raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Message != "" {
			return fmt.Sprintf("upstream %d: %s", status, payload.Message)
		}
		if payload.Error != "" {
			return fmt.Sprintf("upstream %d: %s", status, payload.Error)
		}
	}
	return fmt.Sprintf("upstream returned status %d", status)
}

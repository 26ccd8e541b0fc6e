package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"seapass-bff/internal/usecase"

	"github.com/tidwall/gjson"
)

type ProfileClient struct {
	client *Client
}

func NewProfileClient(client *Client) usecase.ProfileGateway {
	return &ProfileClient{client: client}
}

// FetchProfile reads /users/me. Older backend revisions answer with
// Portuguese field names (nome, telefone, cpf), newer ones in English,
// so both spellings are accepted.
func (c *ProfileClient) FetchProfile(ctx context.Context, bearer string) (*usecase.GuestProfile, error) {
	var raw json.RawMessage
	if err := c.client.doJSON(ctx, http.MethodGet, "/users/me", nil, bearer, nil, &raw); err != nil {
		return nil, err
	}

	body := gjson.ParseBytes(raw)
	return &usecase.GuestProfile{
		Name:  firstString(body, "name", "nome"),
		Email: firstString(body, "email"),
		Phone: firstString(body, "phone", "telefone"),
		TaxID: firstString(body, "taxId", "cpf"),
	}, nil
}

func firstString(body gjson.Result, paths ...string) string {
	for _, path := range paths {
		if value := body.Get(path); value.Exists() && value.String() != "" {
			return value.String()
		}
	}
	return ""
}

//go:build unit

package gateway_test

import (
	"context"
	"net/http"
	"testing"

	"seapass-bff/internal/infra"
	"seapass-bff/internal/infra/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileClient_FetchProfile(t *testing.T) {
	t.Run("english field names", func(t *testing.T) {
		client := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/me", r.URL.Path)
			assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"name":"Maria Souza","email":"maria@email.com","phone":"11988887777","taxId":"98765432100"}`))
		})

		profile, err := gateway.NewProfileClient(client).FetchProfile(context.Background(), "token-1")
		require.NoError(t, err)
		assert.Equal(t, "Maria Souza", profile.Name)
		assert.Equal(t, "maria@email.com", profile.Email)
		assert.Equal(t, "11988887777", profile.Phone)
		assert.Equal(t, "98765432100", profile.TaxID)
	})

	t.Run("portuguese field names from older backends", func(t *testing.T) {
		client := newUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"nome":"João Silva","email":"joao.silva@email.com","telefone":"11999999999","cpf":"12345678900"}`))
		})

		profile, err := gateway.NewProfileClient(client).FetchProfile(context.Background(), "token-1")
		require.NoError(t, err)
		assert.Equal(t, "João Silva", profile.Name)
		assert.Equal(t, "11999999999", profile.Phone)
		assert.Equal(t, "12345678900", profile.TaxID)
	})

	t.Run("missing fields come back empty", func(t *testing.T) {
		client := newUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"email":"x@email.com"}`))
		})

		profile, err := gateway.NewProfileClient(client).FetchProfile(context.Background(), "token-1")
		require.NoError(t, err)
		assert.Empty(t, profile.Name)
		assert.Equal(t, "x@email.com", profile.Email)
	})

	t.Run("403 maps to unauthorized", func(t *testing.T) {
		client := newUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
		})

		_, err := gateway.NewProfileClient(client).FetchProfile(context.Background(), "token-1")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnauthorized))
	})
}

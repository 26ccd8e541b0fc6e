//go:build unit

package kvstore_test

import (
	"context"
	"testing"

	"seapass-bff/internal/domain/settings"
	"seapass-bff/internal/infra/kvstore"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save then load round-trips", func(t *testing.T) {
		store := kvstore.NewSettingsStore(newTestRedis(t))

		prefs := settings.Defaults()
		prefs.DarkMode = true
		prefs.FontSize = settings.FontLarge
		require.NoError(t, store.Save(ctx, "sess-1", prefs))

		got, err := store.Load(ctx, "sess-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, prefs, *got)
	})

	t.Run("load with nothing stored returns nil", func(t *testing.T) {
		store := kvstore.NewSettingsStore(newTestRedis(t))

		got, err := store.Load(ctx, "sess-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupt blob is treated as absent", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		require.NoError(t, mr.Set("seapass:settings:sess-1", "]["))

		store := kvstore.NewSettingsStore(client)
		got, err := store.Load(ctx, "sess-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

package kvstore

import (
	"context"
	"encoding/json"
	"errors"

	"seapass-bff/internal/domain/settings"
	"seapass-bff/internal/infra"
	"seapass-bff/internal/usecase"

	"github.com/redis/go-redis/v9"
)

const settingsKeyPrefix = "seapass:settings:"

type SettingsStore struct {
	redis *redis.Client
}

func NewSettingsStore(client *redis.Client) usecase.SettingsStore {
	return &SettingsStore{redis: client}
}

func (s *SettingsStore) key(sessionKey string) string {
	return settingsKeyPrefix + sessionKey
}

func (s *SettingsStore) Save(ctx context.Context, sessionKey string, prefs settings.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return infra.WrapGatewayErr(infra.KindStoreFailure, "encode preferences", err)
	}
	if err := s.redis.Set(ctx, s.key(sessionKey), data, 0).Err(); err != nil {
		return infra.WrapGatewayErr(infra.KindStoreFailure, "save preferences", err)
	}
	return nil
}

func (s *SettingsStore) Load(ctx context.Context, sessionKey string) (*settings.Preferences, error) {
	data, err := s.redis.Get(ctx, s.key(sessionKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapGatewayErr(infra.KindStoreFailure, "load preferences", err)
	}

	var prefs settings.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, nil
	}
	return &prefs, nil
}

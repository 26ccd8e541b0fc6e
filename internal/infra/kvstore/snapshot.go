// Package kvstore persists the session-scoped blobs (last completed
// reservation, preference panel) as flat JSON values in Redis. One key
// per session, last-write-wins, no versioning.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"

	"seapass-bff/internal/infra"
	"seapass-bff/internal/usecase"

	"github.com/redis/go-redis/v9"
)

const snapshotKeyPrefix = "seapass:reservation:last:"

type SnapshotStore struct {
	redis *redis.Client
}

func NewSnapshotStore(client *redis.Client) usecase.SnapshotStore {
	return &SnapshotStore{redis: client}
}

func (s *SnapshotStore) key(sessionKey string) string {
	return snapshotKeyPrefix + sessionKey
}

func (s *SnapshotStore) Save(ctx context.Context, sessionKey string, snap *usecase.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return infra.WrapGatewayErr(infra.KindStoreFailure, "encode snapshot", err)
	}
	if err := s.redis.Set(ctx, s.key(sessionKey), data, 0).Err(); err != nil {
		return infra.WrapGatewayErr(infra.KindStoreFailure, "save snapshot", err)
	}
	return nil
}

func (s *SnapshotStore) Load(ctx context.Context, sessionKey string) (*usecase.Snapshot, error) {
	data, err := s.redis.Get(ctx, s.key(sessionKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapGatewayErr(infra.KindStoreFailure, "load snapshot", err)
	}

	var snap usecase.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// A corrupt blob is treated as absent; the confirmation page
		// shows placeholders instead of erroring.
		return nil, nil
	}
	return &snap, nil
}

func (s *SnapshotStore) Clear(ctx context.Context, sessionKey string) error {
	if err := s.redis.Del(ctx, s.key(sessionKey)).Err(); err != nil {
		return infra.WrapGatewayErr(infra.KindStoreFailure, "clear snapshot", err)
	}
	return nil
}

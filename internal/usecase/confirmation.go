package usecase

import (
	"context"

	"seapass-bff/internal/pkg/errs"
)

type ConfirmationUseCase interface {
	Last(ctx context.Context, auth AuthContext) (*Snapshot, error)
	Clear(ctx context.Context, auth AuthContext) error
}

type confirmationUseCaseImpl struct {
	snapshots SnapshotStore
}

func NewConfirmationUseCase(snapshots SnapshotStore) ConfirmationUseCase {
	return &confirmationUseCaseImpl{snapshots: snapshots}
}

func (c *confirmationUseCaseImpl) Last(ctx context.Context, auth AuthContext) (*Snapshot, error) {
	snap, err := c.snapshots.Load(ctx, auth.SessionKey())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if snap == nil {
		return nil, errs.ErrSnapshotNotFound
	}
	return snap, nil
}

func (c *confirmationUseCaseImpl) Clear(ctx context.Context, auth AuthContext) error {
	if err := c.snapshots.Clear(ctx, auth.SessionKey()); err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return nil
}

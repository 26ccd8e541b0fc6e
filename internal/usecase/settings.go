package usecase

import (
	"context"

	"seapass-bff/internal/domain/settings"
	"seapass-bff/internal/pkg/errs"
)

type SettingsUseCase interface {
	Get(ctx context.Context, auth AuthContext) (settings.Preferences, error)
	Update(ctx context.Context, auth AuthContext, prefs settings.Preferences) (settings.Preferences, error)
}

type settingsUseCaseImpl struct {
	store SettingsStore
}

func NewSettingsUseCase(store SettingsStore) SettingsUseCase {
	return &settingsUseCaseImpl{store: store}
}

// Get returns the stored preferences, normalized, or the defaults when
// the session has never saved any.
func (s *settingsUseCaseImpl) Get(ctx context.Context, auth AuthContext) (settings.Preferences, error) {
	prefs, err := s.store.Load(ctx, auth.SessionKey())
	if err != nil {
		return settings.Preferences{}, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if prefs == nil {
		return settings.Defaults(), nil
	}
	return prefs.Normalize(), nil
}

func (s *settingsUseCaseImpl) Update(ctx context.Context, auth AuthContext, prefs settings.Preferences) (settings.Preferences, error) {
	normalized := prefs.Normalize()
	if err := s.store.Save(ctx, auth.SessionKey(), normalized); err != nil {
		return settings.Preferences{}, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return normalized, nil
}

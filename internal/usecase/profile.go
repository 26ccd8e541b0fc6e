package usecase

import (
	"context"
	"log/slog"

	"seapass-bff/internal/pkg/errs"
)

type ProfileUseCase interface {
	Current(ctx context.Context, auth AuthContext) (*GuestProfile, error)
}

type profileUseCaseImpl struct {
	gateway ProfileGateway
	policy  FallbackPolicy
	logger  *slog.Logger
}

func NewProfileUseCase(gateway ProfileGateway, policy FallbackPolicy, logger *slog.Logger) ProfileUseCase {
	return &profileUseCaseImpl{
		gateway: gateway,
		policy:  policy,
		logger:  logger,
	}
}

// DemoProfile prefills the wizard's contact form when no credential is
// present or the upstream profile endpoint is down.
func DemoProfile() *GuestProfile {
	return &GuestProfile{
		Name:  "João Silva",
		Email: "joao.silva@email.com",
		Phone: "11999999999",
		TaxID: "12345678900",
	}
}

func (p *profileUseCaseImpl) Current(ctx context.Context, auth AuthContext) (*GuestProfile, error) {
	if auth.Bearer == "" {
		if !p.policy.ServeDemoProfile {
			return nil, errs.ErrGatewayUnavailable
		}
		return DemoProfile(), nil
	}

	profile, err := p.gateway.FetchProfile(ctx, auth.Bearer)
	if err == nil {
		return profile, nil
	}
	if !p.policy.ServeDemoProfile {
		return nil, errs.Mark(err, errs.ErrGatewayUnavailable)
	}

	p.logger.Warn("profile fetch degraded to demo profile", "error", err.Error())
	return DemoProfile(), nil
}

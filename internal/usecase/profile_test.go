//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"seapass-bff/internal/pkg/errs"
	"seapass-bff/internal/usecase"
	usecasemock "seapass-bff/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfileUseCase_Current(t *testing.T) {
	t.Run("anonymous caller gets the demo profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := usecasemock.NewMockProfileGateway(ctrl)

		uc := usecase.NewProfileUseCase(gw, usecase.LenientFallback(), discardLogger())

		profile, err := uc.Current(context.Background(), usecase.AuthContext{})
		require.NoError(t, err)
		assert.Equal(t, "João Silva", profile.Name)
		assert.Equal(t, "joao.silva@email.com", profile.Email)
	})

	t.Run("anonymous caller under strict policy is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := usecasemock.NewMockProfileGateway(ctrl)

		uc := usecase.NewProfileUseCase(gw, usecase.StrictFallback(), discardLogger())

		_, err := uc.Current(context.Background(), usecase.AuthContext{})
		require.True(t, errs.Is(err, errs.ErrGatewayUnavailable))
	})

	t.Run("bearer is forwarded and upstream profile returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := usecasemock.NewMockProfileGateway(ctrl)
		gw.EXPECT().FetchProfile(gomock.Any(), "token-1").
			Return(&usecase.GuestProfile{Name: "Maria Souza"}, nil)

		uc := usecase.NewProfileUseCase(gw, usecase.LenientFallback(), discardLogger())

		profile, err := uc.Current(context.Background(), usecase.AuthContext{Bearer: "token-1"})
		require.NoError(t, err)
		assert.Equal(t, "Maria Souza", profile.Name)
	})

	t.Run("upstream failure degrades to the demo profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := usecasemock.NewMockProfileGateway(ctrl)
		gw.EXPECT().FetchProfile(gomock.Any(), "token-1").
			Return(nil, errUpstreamDown)

		uc := usecase.NewProfileUseCase(gw, usecase.LenientFallback(), discardLogger())

		profile, err := uc.Current(context.Background(), usecase.AuthContext{Bearer: "token-1"})
		require.NoError(t, err)
		assert.Equal(t, "João Silva", profile.Name)
	})

	t.Run("upstream failure under strict policy surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := usecasemock.NewMockProfileGateway(ctrl)
		gw.EXPECT().FetchProfile(gomock.Any(), "token-1").
			Return(nil, errUpstreamDown)

		uc := usecase.NewProfileUseCase(gw, usecase.StrictFallback(), discardLogger())

		_, err := uc.Current(context.Background(), usecase.AuthContext{Bearer: "token-1"})
		require.True(t, errs.Is(err, errs.ErrGatewayUnavailable))
	})
}

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/accbox/internal/adapter"
	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/internal/mock"
	"github.com/MKhiriev/accbox/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockAPIAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockAPIAdapter(ctrl)
	return NewAuthService(mockAdapter, logger.Nop()), mockAdapter
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Login(ctx, models.LoginRequest{Username: "alice", Password: "secret"}).
		Return(models.LoginResponse{Token: "tok", User: models.User{ID: 3, Username: "alice"}}, nil)

	user, err := svc.Login(ctx, "  alice ", "secret")

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), " ", "secret")
	assert.ErrorIs(t, err, ErrEmptyCredentials)

	_, err = svc.Login(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.LoginResponse{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, "2 attempts left"))

	_, err := svc.Login(context.Background(), "alice", "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.Contains(t, err.Error(), "2 attempts left")
}

func TestAuthService_Login_Locked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.LoginResponse{}, fmt.Errorf("%w: %s", adapter.ErrLocked, "retry in 15 minutes"))

	_, err := svc.Login(context.Background(), "alice", "nope")

	assert.ErrorIs(t, err, ErrAccountLocked)
	assert.Contains(t, err.Error(), "retry in 15 minutes")
}

func TestAuthService_TokenState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)

	gomock.InOrder(
		mockAdapter.EXPECT().Token().Return("tok"),
		mockAdapter.EXPECT().SetToken(""),
		mockAdapter.EXPECT().Token().Return(""),
	)

	assert.True(t, svc.Authenticated())
	svc.Logout()
	assert.False(t, svc.Authenticated())
}

func TestAuthService_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{Status: "healthy"}, nil)
	h, err := svc.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)

	mockAdapter.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{}, fmt.Errorf("%w: %s", adapter.ErrBadGateway, "proxy down"))
	_, err = svc.Health(context.Background())
	assert.ErrorIs(t, err, ErrServer)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-login-kit/internal/adapter"
	"github.com/MKhiriev/go-login-kit/internal/logger"
	"github.com/MKhiriev/go-login-kit/internal/mock"
	"github.com/MKhiriev/go-login-kit/internal/validators"
	"github.com/MKhiriev/go-login-kit/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestAuthService(t *testing.T) (*clientAuthService, *mock.MockAuthAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	authAdapter := mock.NewMockAuthAdapter(ctrl)

	svc := NewClientAuthService(authAdapter, validators.NewCredentialsValidator(), logger.Nop()).(*clientAuthService)
	svc.now = func() time.Time { return fixedNow }

	return svc, authAdapter
}

func signedToken(t *testing.T, subject string, expiresAt time.Time) models.Token {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: subject}
	if !expiresAt.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	token, err := models.ParseToken(signed)
	require.NoError(t, err)
	return token
}

func TestClientAuthService_Login_Success(t *testing.T) {
	svc, authAdapter := newTestAuthService(t)
	ctx := context.Background()

	token := signedToken(t, "42", fixedNow.Add(time.Hour))
	authAdapter.EXPECT().
		Login(ctx, models.Credentials{Email: "a@b.com", Password: "password1"}).
		Return(token, nil)

	session, err := svc.Login(ctx, models.Credentials{Email: "  a@b.com ", Password: "password1"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), session.UserID)
	assert.Equal(t, "a@b.com", session.Email)
	assert.Equal(t, token.SignedString, session.Token)
	assert.True(t, session.ExpiresAt.Equal(fixedNow.Add(time.Hour)))
}

func TestClientAuthService_Login_NoExpiry(t *testing.T) {
	svc, authAdapter := newTestAuthService(t)

	authAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(signedToken(t, "7", time.Time{}), nil)

	session, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "password1"})

	require.NoError(t, err)
	assert.True(t, session.ExpiresAt.IsZero())
}

func TestClientAuthService_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		creds    models.Credentials
		wantKind validators.ErrorKind
	}{
		{
			name:     "bad email",
			creds:    models.Credentials{Email: "abc", Password: "password1"},
			wantKind: validators.InvalidPattern,
		},
		{
			name:     "short password",
			creds:    models.Credentials{Email: "a@b.com", Password: "short"},
			wantKind: validators.InsufficientLength,
		},
		{
			name:     "both invalid",
			creds:    models.Credentials{Email: "", Password: ""},
			wantKind: validators.InvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// adapter must not be called
			svc, _ := newTestAuthService(t)

			_, err := svc.Login(context.Background(), tt.creds)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCredentials)

			var vErr *validators.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantKind, vErr.Kind)
		})
	}
}

func TestClientAuthService_Login_ServerError(t *testing.T) {
	svc, authAdapter := newTestAuthService(t)

	authAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, adapter.ErrUnauthorized)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "password1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestClientAuthService_Login_BadSubject(t *testing.T) {
	svc, authAdapter := newTestAuthService(t)

	authAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(signedToken(t, "not-a-number", time.Time{}), nil)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "password1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClientAuthService_Login_ExpiredToken(t *testing.T) {
	svc, authAdapter := newTestAuthService(t)

	authAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(signedToken(t, "1", fixedNow.Add(-time.Minute)), nil)

	session, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "password1"})

	require.ErrorIs(t, err, ErrTokenIsExpired)
	assert.Equal(t, models.Session{}, session)
}

func TestClientAuthService_RequestPasswordReset(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, authAdapter := newTestAuthService(t)
		authAdapter.EXPECT().
			RequestPasswordReset(gomock.Any(), models.PasswordResetRequest{Email: "a@b.com"}).
			Return(nil)

		err := svc.RequestPasswordReset(context.Background(), " a@b.com ")
		require.NoError(t, err)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		err := svc.RequestPasswordReset(context.Background(), "not-an-email")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.ErrorIs(t, err, validators.ErrInvalidEmail)
	})

	t.Run("server error", func(t *testing.T) {
		svc, authAdapter := newTestAuthService(t)
		authAdapter.EXPECT().RequestPasswordReset(gomock.Any(), gomock.Any()).Return(adapter.ErrNotFound)

		err := svc.RequestPasswordReset(context.Background(), "a@b.com")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPasswordReset)
		assert.ErrorIs(t, err, adapter.ErrNotFound)
		assert.False(t, errors.Is(err, ErrInvalidCredentials))
	})
}

func TestNewClientServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := NewClientServices(mock.NewMockAuthAdapter(ctrl), nil)

	require.NotNil(t, services)
	assert.NotNil(t, services.AuthService)
}

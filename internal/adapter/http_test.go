package adapter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-login-kit/internal/config"
	"github.com/MKhiriev/go-login-kit/internal/logger"
	"github.com/MKhiriev/go-login-kit/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) AuthAdapter {
	t.Helper()
	a, err := NewHTTPAuthAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func signedToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-sign-key"))
	require.NoError(t, err)
	return s
}

// ── NewHTTPAuthAdapter ──────────────────────────────────────────────────────

func TestNewHTTPAuthAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPAuthAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
	assert.Nil(t, a)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, "42", expiresAt)
	creds := models.Credentials{Email: "a@b.com", Password: "abcdefgh"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		_, err := uuid.Parse(r.Header.Get(traceIDHeader))
		assert.NoError(t, err, "trace id must be a UUID")

		var got models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, creds, got)

		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Login(context.Background(), creds)
	require.NoError(t, err)

	assert.Equal(t, token, got.String())
	userID, err := got.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	require.NotNil(t, got.ExpiresAt)
	assert.True(t, expiresAt.Equal(got.ExpiresAt.Time))
}

func TestAdapter_TraceIDIsFreshPerRequest(t *testing.T) {
	seen := make(map[string]bool)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get(traceIDHeader)] = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	for range 3 {
		require.NoError(t, a.RequestPasswordReset(context.Background(), models.PasswordResetRequest{Email: "a@b.com"}))
	}
	assert.Len(t, seen, 3)
}

func TestAdapter_ResponseLogCarriesTraceID(t *testing.T) {
	traceIDs := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceIDs <- r.Header.Get(traceIDHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	a, err := NewHTTPAuthAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, logger.NewLogger("adapter-test", &buf, "debug"))
	require.NoError(t, err)

	require.NoError(t, a.RequestPasswordReset(context.Background(), models.PasswordResetRequest{Email: "a@b.com"}))
	sentTraceID := <-traceIDs
	require.NotEmpty(t, sentTraceID)

	var found bool
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		if entry["message"] != "auth server response" {
			continue
		}
		found = true
		assert.Equal(t, sentTraceID, entry["trace_id"])
		assert.Equal(t, float64(http.StatusNoContent), entry["status"])
		assert.Equal(t, "adapter-test", entry["role"])
	}
	assert.True(t, found, "expected a response log entry")
}

func TestLogin_MissingAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{})
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestLogin_MalformedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer not-a-jwt")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{})
	assert.Error(t, err)
}

func TestLogin_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"too many requests", http.StatusTooManyRequests, ErrTooManyRequests},
		{"internal error", http.StatusInternalServerError, ErrServerUnavailable},
		{"bad gateway", http.StatusBadGateway, ErrServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestLogin_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestLogin_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Login(context.Background(), models.Credentials{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login request")
}

// ── RequestPasswordReset ────────────────────────────────────────────────────

func TestRequestPasswordReset_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/password-reset", r.URL.Path)

		var got models.PasswordResetRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "a@b.com", got.Email)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).RequestPasswordReset(context.Background(), models.PasswordResetRequest{Email: "a@b.com"})
	assert.NoError(t, err)
}

func TestRequestPasswordReset_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).RequestPasswordReset(context.Background(), models.PasswordResetRequest{Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrNotFound)
}

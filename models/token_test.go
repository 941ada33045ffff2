package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return signed
}

func TestParseToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed := signTestToken(t, jwt.RegisteredClaims{Subject: "42", ExpiresAt: jwt.NewNumericDate(exp)})

	token, err := ParseToken(signed)
	require.NoError(t, err)

	userID, err := token.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, signed, token.String())
	require.NotNil(t, token.ExpiresAt)
	assert.True(t, exp.Equal(token.ExpiresAt.Time))
}

func TestParseToken_Malformed(t *testing.T) {
	_, err := ParseToken("not.a.jwt")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestToken_GetUserID_Errors(t *testing.T) {
	tests := []struct {
		name    string
		subject string
	}{
		{name: "empty subject", subject: ""},
		{name: "non-numeric subject", subject: "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseToken(signTestToken(t, jwt.RegisteredClaims{Subject: tt.subject}))
			require.NoError(t, err)

			_, err = token.GetUserID()
			assert.Error(t, err)
		})
	}
}

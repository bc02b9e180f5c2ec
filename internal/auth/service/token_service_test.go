package service

import (
	"testing"
	"time"

	autherror "github.com/AnthoniusHendriyanto/todo-service/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		expiry time.Duration
	}{
		{
			name:   "valid parameters",
			secret: "test-secret-key",
			expiry: 24 * time.Hour,
		},
		{
			name:   "empty secret",
			secret: "",
			expiry: time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.secret, tt.expiry)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.secret, ts.secret)
			assert.Equal(t, tt.expiry, ts.expiry)
			assert.NotNil(t, ts.revoked)
		})
	}
}

func TestTokenService_IssueAndResolve(t *testing.T) {
	tests := []struct {
		name   string
		userID string
	}{
		{
			name:   "round trip returns the issued user id",
			userID: "user-123",
		},
		{
			name:   "uuid-shaped user id",
			userID: "a9f4dc3e-9d93-4a8e-8fda-1f2a79a6f001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService("test-secret-key", 24*time.Hour)

			token, err := ts.Issue(tt.userID)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			userID, err := ts.Resolve(token)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, userID)
		})
	}
}

func TestTokenService_Issue_EmbedsExpiry(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	ts := NewTokenService("test-secret-key", 24*time.Hour)
	ts.now = func() time.Time { return issuedAt }

	token, err := ts.Issue("user-123")
	require.NoError(t, err)

	claims := &JWTCustomClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret-key"), nil
	}, jwt.WithTimeFunc(func() time.Time { return issuedAt }))
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, issuedAt.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestTokenService_Resolve_Expired(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	ts := NewTokenService("test-secret-key", 24*time.Hour)
	ts.now = func() time.Time { return issuedAt }

	token, err := ts.Issue("user-123")
	require.NoError(t, err)

	// One second inside the window still resolves.
	ts.now = func() time.Time { return issuedAt.Add(24*time.Hour - time.Second) }
	userID, err := ts.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)

	// Past the window it fails with the expiry error, not the generic one.
	ts.now = func() time.Time { return issuedAt.Add(24*time.Hour + time.Second) }
	_, err = ts.Resolve(token)
	assert.ErrorIs(t, err, autherror.ErrTokenExpired)
}

func TestTokenService_Resolve_Invalid(t *testing.T) {
	ts := NewTokenService("test-secret-key", 24*time.Hour)

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "garbage string",
			token: func() string { return "not-a-token" },
		},
		{
			name:  "empty string",
			token: func() string { return "" },
		},
		{
			name: "signed with a different secret",
			token: func() string {
				other := NewTokenService("other-secret", 24*time.Hour)
				token, err := other.Issue("user-123")
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "unsigned algorithm",
			token: func() string {
				claims := JWTCustomClaims{UserID: "user-123"}
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.Resolve(tt.token())
			assert.ErrorIs(t, err, autherror.ErrTokenInvalid)
		})
	}
}

func TestTokenService_Revoke(t *testing.T) {
	ts := NewTokenService("test-secret-key", 24*time.Hour)

	token, err := ts.Issue("user-123")
	require.NoError(t, err)

	assert.False(t, ts.IsRevoked(token))

	ts.Revoke(token)
	assert.True(t, ts.IsRevoked(token))

	// Revocation is permanent and idempotent.
	ts.Revoke(token)
	assert.True(t, ts.IsRevoked(token))

	// Resolve stays independent of revocation: the signature and expiry are
	// still good, so the guard must perform both checks.
	userID, err := ts.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenService_Revoke_OnlyExactString(t *testing.T) {
	ts := NewTokenService("test-secret-key", 24*time.Hour)

	first, err := ts.Issue("user-123")
	require.NoError(t, err)
	second, err := ts.Issue("user-123")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	ts.Revoke(first)

	assert.True(t, ts.IsRevoked(first))
	assert.False(t, ts.IsRevoked(second))
}

package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/AnthoniusHendriyanto/todo-service/internal/auth/service TokenGenerator

import (
	"errors"
	"sync"
	"time"

	autherror "github.com/AnthoniusHendriyanto/todo-service/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenGenerator interface {
	Issue(userID string) (string, error)
	Resolve(tokenString string) (string, error)
	Revoke(tokenString string)
	IsRevoked(tokenString string) bool
}

// TokenService issues and validates stateless HS256 bearer tokens. Revoked
// token strings are tracked in a process-wide set so logout can invalidate a
// credential before its embedded expiry. The set is never pruned, not even
// past a token's own expiry; unbounded growth is an accepted trade-off for
// keeping revocation a plain lookup.
type TokenService struct {
	secret string
	expiry time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	revoked map[string]struct{}
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret:  secret,
		expiry:  expiry,
		now:     time.Now,
		revoked: make(map[string]struct{}),
	}
}

// Issue produces a signed token binding userID with an absolute expiry of
// issuance time plus the configured duration.
func (ts *TokenService) Issue(userID string) (string, error) {
	now := ts.now()

	claims := JWTCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.secret))
}

// Resolve verifies the signature and expiry and returns the embedded user id.
// It deliberately does not consult the revocation set; that check belongs to
// the session guard so the two stay independently testable.
func (ts *TokenService) Resolve(tokenString string) (string, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherror.ErrTokenInvalid
		}
		return []byte(ts.secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return ts.now() }))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", autherror.ErrTokenExpired
		}
		return "", autherror.ErrTokenInvalid
	}

	if !token.Valid || claims.UserID == "" {
		return "", autherror.ErrTokenInvalid
	}

	return claims.UserID, nil
}

// Revoke marks the exact token string as unusable for the rest of the
// process lifetime. There is no un-revoke.
func (ts *TokenService) Revoke(tokenString string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.revoked[tokenString] = struct{}{}
}

func (ts *TokenService) IsRevoked(tokenString string) bool {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	_, ok := ts.revoked[tokenString]

	return ok
}

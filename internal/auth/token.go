package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/coffeehouse-cms/internal/domain"
)

// SessionTTL is the fixed session lifetime. Tokens are never refreshed; a
// user re-authenticates after expiry.
const SessionTTL = 8 * time.Hour

// clockSkewLeeway tolerates small issuer/verifier clock drift.
const clockSkewLeeway = 15 * time.Second

// ErrInvalidToken covers any verification failure: bad signature, malformed
// token, wrong signing method, or expiry.
var ErrInvalidToken = errors.New("invalid token")

// SessionClaims is the signed session payload. The jti (RegisteredClaims.ID)
// is informational; no server-side revocation list exists, so an issued
// token stays honorable until expiry even after logout.
type SessionClaims struct {
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed session tokens.
type TokenManager struct {
	secret []byte
}

// NewTokenManager builds a manager. An empty secret is refused; the config
// layer treats a missing secret as a fatal startup error.
func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("token signing secret must not be empty")
	}
	return &TokenManager{secret: []byte(secret)}, nil
}

// Issue builds and signs a session token for the user.
func (tm *TokenManager) Issue(userID, username string, role domain.Role) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(SessionTTL)
	claims := &SessionClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify validates signature and expiry and returns the decoded claims.
// Any failure collapses into ErrInvalidToken; callers treat the session as
// absent rather than surfacing parser details.
func (tm *TokenManager) Verify(tokenStr string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithLeeway(clockSkewLeeway))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/coffeehouse-cms/internal/domain"
)

const testSecret = "test-secret"

func newTestManager(t *testing.T) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager(testSecret)
	require.NoError(t, err)
	return tm
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager("")
	assert.Error(t, err)
}

func TestIssueAndVerify(t *testing.T) {
	tm := newTestManager(t)

	token, expiresAt, err := tm.Issue("user-1", "admin", domain.RoleAdmin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(SessionTTL), expiresAt, 5*time.Second)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestIssueGeneratesUniqueJTI(t *testing.T) {
	tm := newTestManager(t)

	first, _, err := tm.Issue("user-1", "admin", domain.RoleAdmin)
	require.NoError(t, err)
	second, _, err := tm.Issue("user-1", "admin", domain.RoleAdmin)
	require.NoError(t, err)

	firstClaims, err := tm.Verify(first)
	require.NoError(t, err)
	secondClaims, err := tm.Verify(second)
	require.NoError(t, err)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestVerifyRejectsExpired(t *testing.T) {
	tm := newTestManager(t)

	// Expired beyond the clock-skew leeway.
	claims := &SessionClaims{
		Username: "admin",
		Role:     domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ID:        "jti-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToleratesClockSkew(t *testing.T) {
	tm := newTestManager(t)

	// Expired a few seconds ago, within the 15s leeway.
	claims := &SessionClaims{
		Username: "admin",
		Role:     domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ID:        "jti-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-5 * time.Second)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.NoError(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tm := newTestManager(t)

	other, err := NewTokenManager("other-secret")
	require.NoError(t, err)
	token, _, err := other.Issue("user-1", "admin", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSigningMethod(t *testing.T) {
	tm := newTestManager(t)

	claims := &SessionClaims{
		Username: "admin",
		Role:     domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	tm := newTestManager(t)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestVerifyRejectsTampered(t *testing.T) {
	tm := newTestManager(t)

	token, _, err := tm.Issue("user-1", "admin", domain.RoleStaff)
	require.NoError(t, err)

	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	_, err = tm.Verify(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("admin123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "admin123", hash)

	assert.NoError(t, ComparePassword(hash, "admin123"))
}

func TestComparePasswordRejectsMutations(t *testing.T) {
	const password = "admin123"
	hash, err := HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)

	for i := 0; i < len(password); i++ {
		mutated := []byte(password)
		mutated[i] ^= 0x01
		assert.Error(t, ComparePassword(hash, string(mutated)), "mutation at index %d", i)
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := HashPassword("", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestComparePasswordMalformedHash(t *testing.T) {
	// Well-formed input against a garbage hash fails, never panics.
	assert.Error(t, ComparePassword("not-a-bcrypt-hash", "admin123"))
}

package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	require.Len(t, salt, 64) // 32 bytes hex encoded

	hash, err := hasher.Hash(salt, "s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.NoError(t, hasher.Compare(hash, salt, "s3cret-pass"))
	require.Error(t, hasher.Compare(hash, salt, "wrong-pass"))
	require.Error(t, hasher.Compare(hash, "other-salt", "s3cret-pass"))
}

func TestBcryptHasher_SaltsAreUnique(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.GenerateSalt()
	require.NoError(t, err)
	second, err := hasher.GenerateSalt()
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestBcryptHasher_LongPassword(t *testing.T) {
	// The SHA256 pre-hash keeps arbitrarily long passwords within bcrypt's
	// input limit.
	hasher := NewBcryptHasher(bcrypt.MinCost)

	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	hash, err := hasher.Hash(salt, string(long))
	require.NoError(t, err)
	require.NoError(t, hasher.Compare(hash, salt, string(long)))
}

package authutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.Nil(t, err)
	require.NotEqual(t, "secret1", hash)

	require.True(t, CheckPassword(hash, "secret1"))
	require.False(t, CheckPassword(hash, "secret2"))

	// same password hashes differently each time, the salt is random
	hash2, err := HashPassword("secret1")
	require.Nil(t, err)
	require.NotEqual(t, hash, hash2)
}

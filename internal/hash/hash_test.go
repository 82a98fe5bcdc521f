package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MinCost)

	digest, err := h.Hash("x")
	require.NoError(t, err)
	assert.NotEqual(t, "x", digest)
	assert.True(t, h.Verify("x", digest))
	assert.False(t, h.Verify("y", digest))

	again, err := h.Hash("x")
	require.NoError(t, err)
	assert.NotEqual(t, digest, again, "digests must be salted")
}

func TestBcrypt_TooLong(t *testing.T) {
	t.Parallel()

	_, err := NewBcrypt(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	require.Error(t, err)
}

func TestNewBcrypt_OutOfRangeCost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).Cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(99).Cost)
}

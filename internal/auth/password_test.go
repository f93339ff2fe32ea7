package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasherRoundTrip(t *testing.T) {
	h, err := NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	digest, err := h.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", digest)

	ok, err := h.Verify("hunter2", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("hunter3", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasherSalts(t *testing.T) {
	h, err := NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHasherMalformedDigest(t *testing.T) {
	h, err := NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	ok, err := h.Verify("x", "not-bcrypt")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewHasherRejectsBadCost(t *testing.T) {
	_, err := NewHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}

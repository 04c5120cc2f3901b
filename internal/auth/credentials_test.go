package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexTokenSource(t *testing.T) {
	src := HexTokenSource{}

	first, err := src.NewToken()
	require.NoError(t, err)
	assert.Len(t, first, 64)
	_, err = hex.DecodeString(first)
	require.NoError(t, err)

	second, err := src.NewToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{}

	hash, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, h.Compare(hash, "secret"))
	assert.False(t, h.Compare(hash, "wrong"))
	assert.False(t, h.Compare("not-a-hash", "secret"))
}

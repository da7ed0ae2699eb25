package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordVerifies(t *testing.T) {
	h1, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	h2, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	// random salt: distinct hashes, both verify against the plaintext
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword("s3cret-pass", h1))
	assert.True(t, CheckPassword("s3cret-pass", h2))
	assert.False(t, CheckPassword("wrong-pass", h1))
}

func TestHashPasswordNotPlaintext(t *testing.T) {
	h, err := HashPassword("hello1")
	require.NoError(t, err)
	assert.NotEqual(t, "hello1", h)
	assert.NotContains(t, h, "hello1")
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("anything", ""))
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("anything", "$2a$corrupted"))
}

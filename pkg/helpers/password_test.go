package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "self-describing bcrypt hash, got %q", hash)

	assert.True(t, CheckPassword("secret1", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)

	assert.True(t, CheckPassword("secret1", h1))
	assert.True(t, CheckPassword("secret1", h2))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("secret1", "not-a-bcrypt-hash"))
}

func TestHashPasswordLongMultibyte(t *testing.T) {
	// 25 characters but 100 bytes: within the length rules, beyond
	// bcrypt's 72-byte input limit. Must hash and verify, not error.
	long := strings.Repeat("😀", 25)

	hash, err := HashPassword(long)
	require.NoError(t, err)
	assert.True(t, CheckPassword(long, hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPasswordTruncatesAt72Bytes(t *testing.T) {
	base := strings.Repeat("a", 72)
	hash, err := HashPassword(base + "tail")
	require.NoError(t, err)

	// bcrypt never sees bytes past 72; suffixes beyond that are ignored.
	assert.True(t, CheckPassword(base+"tail", hash))
	assert.True(t, CheckPassword(base+"othertail", hash))
	assert.False(t, CheckPassword(strings.Repeat("a", 71)+"btail", hash))
}

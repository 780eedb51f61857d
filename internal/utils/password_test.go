package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.False(t, NeedsRehash(hash))

	ok, err := CheckPassword(hash, "rahasia123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword(hash, "salah")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckPasswordLegacyHashes(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"pbkdf2", "pbkdf2:sha256:1000$Xy7salt0$86762322c82da7fa3a78dc4d90548cde80381ddeeb10c5e43d2ae72a110c6b00"},
		{"scrypt", "scrypt:16384:8:1$Ab3saltZ$dc35e8fb0e8b92eaf5cccc32982b88ba012335e952849eaf5b66e415f22778d7740a0d9d6e301a35f285272861fb78707c1416b747d095e40f3d4c0eb9052bc1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, NeedsRehash(tt.stored))

			ok, err := CheckPassword(tt.stored, "rahasia123")
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = CheckPassword(tt.stored, "rahasia124")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestCheckPasswordUnknownFormat(t *testing.T) {
	for _, stored := range []string{"plain", "md5:abc$def$00", "pbkdf2:sha256:1000$onlysalt", "pbkdf2:whirlpool:10$s$00"} {
		ok, err := CheckPassword(stored, "x")
		assert.False(t, ok, stored)
		assert.ErrorIs(t, err, ErrUnknownHash, stored)
	}
}

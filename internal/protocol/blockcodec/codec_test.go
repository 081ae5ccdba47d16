package blockcodec_test

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipcrypt/internal/domain"
	"clipcrypt/internal/protocol/blockcodec"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// FIPS-197 Appendix C.3 (AES-256).
func TestCodec_KnownAnswer(t *testing.T) {
	var key domain.SymmetricKey
	copy(key[:], mustHex(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"))
	var pt, want domain.Block
	copy(pt[:], mustHex(t, "00112233445566778899aabbccddeeff"))
	copy(want[:], mustHex(t, "8ea2b7ca516745bfeafc49904b496089"))

	c, err := blockcodec.New(key)
	require.NoError(t, err)

	assert.Equal(t, want, c.EncryptBlock(pt))
	assert.Equal(t, pt, c.DecryptBlock(want))
}

func TestCodec_RoundTrip(t *testing.T) {
	var key domain.SymmetricKey
	_, err := rand.Read(key[:])
	require.NoError(t, err)
	c, err := blockcodec.New(key)
	require.NoError(t, err)

	for i := 0; i < 64; i++ {
		var b domain.Block
		_, err := rand.Read(b[:])
		require.NoError(t, err)
		require.Equal(t, b, c.DecryptBlock(c.EncryptBlock(b)))
	}
}

func TestCodec_IsBlockIndependent(t *testing.T) {
	c, err := blockcodec.New(domain.SymmetricKey{1})
	require.NoError(t, err)

	b := domain.Block{'s', 'a', 'm', 'e'}
	assert.Equal(t, c.EncryptBlock(b), c.EncryptBlock(b))
	assert.NotEqual(t, b, c.EncryptBlock(b))
}

func TestCodec_KeysDiffer(t *testing.T) {
	a, err := blockcodec.New(domain.SymmetricKey{1})
	require.NoError(t, err)
	b, err := blockcodec.New(domain.SymmetricKey{2})
	require.NoError(t, err)

	var blk domain.Block
	assert.NotEqual(t, a.EncryptBlock(blk), b.EncryptBlock(blk))
}

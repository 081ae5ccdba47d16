package crypto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipcrypt/internal/crypto"
	"clipcrypt/internal/domain"
)

// makeKeyPair returns a fresh X448 key pair.
func makeKeyPair(t *testing.T) domain.KeyPair {
	t.Helper()
	kp, err := crypto.GenerateX448()
	require.NoError(t, err, "GenerateX448")
	return kp
}

func TestGenerateX448_Fresh(t *testing.T) {
	a := makeKeyPair(t)
	b := makeKeyPair(t)
	assert.NotEqual(t, a.Public, b.Public)
	assert.NotEqual(t, domain.X448Public{}, a.Public)
	assert.Equal(t, a.Public, crypto.ExportPublic(a))
}

func TestAgree_Symmetric(t *testing.T) {
	for i := 0; i < 8; i++ {
		alice := makeKeyPair(t)
		bob := makeKeyPair(t)

		sharedA, err := crypto.Agree(alice.Private, bob.Public)
		require.NoError(t, err)
		sharedB, err := crypto.Agree(bob.Private, alice.Public)
		require.NoError(t, err)

		require.Equal(t, sharedA, sharedB, "shared secrets differ")
		require.Equal(t, crypto.DeriveKey(sharedA), crypto.DeriveKey(sharedB), "session keys differ")
	}
}

func TestAgree_LowOrderPointFails(t *testing.T) {
	alice := makeKeyPair(t)
	_, err := crypto.Agree(alice.Private, domain.X448Public{})
	require.ErrorIs(t, err, crypto.ErrAgreementFailure)
}

func TestImportPublic_RoundTrip(t *testing.T) {
	kp := makeKeyPair(t)
	pub, err := crypto.ImportPublic(kp.Public.Slice())
	require.NoError(t, err)
	assert.Equal(t, kp.Public, pub)
}

func TestImportPublic_Rejects(t *testing.T) {
	one := make([]byte, domain.X448KeySize)
	one[0] = 1

	cases := map[string][]byte{
		"empty":      nil,
		"short":      make([]byte, 32),
		"long":       make([]byte, 57),
		"zero point": make([]byte, domain.X448KeySize),
		"u=1":        one,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := crypto.ImportPublic(in)
			require.ErrorIs(t, err, crypto.ErrInvalidPublicKey)
		})
	}
}

func TestParsePublicKey(t *testing.T) {
	kp := makeKeyPair(t)
	text := crypto.EncodePublicKey(kp.Public)
	require.Len(t, text, 76)

	pub, err := crypto.ParsePublicKey("  " + text + "\n")
	require.NoError(t, err)
	assert.Equal(t, kp.Public, pub)
}

func TestParsePublicKey_ReportsDecodeError(t *testing.T) {
	text := crypto.EncodePublicKey(makeKeyPair(t).Public)
	bad := text[:10] + "!" + text[11:]

	_, err := crypto.ParsePublicKey(bad)
	require.ErrorIs(t, err, crypto.ErrInvalidPublicKey)

	var decErr *crypto.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, crypto.DecodeSymbol, decErr.Kind)
	assert.Equal(t, 10, decErr.Position)
}

func TestParsePublicKey_WrongLength(t *testing.T) {
	_, err := crypto.ParsePublicKey(crypto.B64([]byte(strings.Repeat("k", 32))))
	require.ErrorIs(t, err, crypto.ErrInvalidPublicKey)
}

func TestFingerprint(t *testing.T) {
	a := makeKeyPair(t)
	b := makeKeyPair(t)

	fp := crypto.Fingerprint(a.Public)
	assert.Len(t, fp.String(), 20)
	assert.Equal(t, fp, crypto.Fingerprint(a.Public))
	assert.NotEqual(t, fp, crypto.Fingerprint(b.Public))
}

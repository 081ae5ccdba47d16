package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipcrypt/internal/crypto"
)

func TestDecodeB64_OK(t *testing.T) {
	b, err := crypto.DecodeB64("QUJD")
	require.NoError(t, err)
	assert.Equal(t, []byte("ABC"), b)

	b, err = crypto.DecodeB64("")
	require.NoError(t, err)
	assert.Empty(t, b)

	assert.Equal(t, "QUI=", crypto.B64([]byte("AB")))
}

func TestDecodeB64_Errors(t *testing.T) {
	cases := []struct {
		in   string
		kind crypto.DecodeErrorKind
		pos  int
	}{
		{"QUJ", crypto.DecodeLength, 3},
		{"QUJDQU", crypto.DecodeLength, 6},
		{"QU JD", crypto.DecodeSymbol, 2},
		{"QUJDQUJD!", crypto.DecodeSymbol, 8},
		{"QUJD!A==", crypto.DecodeSymbol, 4},
		{"QU=D", crypto.DecodePadding, 2},
		{"Q===", crypto.DecodePadding, 1},
		{"QQ==QUJD", crypto.DecodeTrailing, 4},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := crypto.DecodeB64(tc.in)
			var decErr *crypto.DecodeError
			require.ErrorAs(t, err, &decErr)
			assert.Equal(t, tc.kind, decErr.Kind)
			assert.Equal(t, tc.pos, decErr.Position)
		})
	}
}

func TestDecodeError_Message(t *testing.T) {
	err := &crypto.DecodeError{Kind: crypto.DecodeSymbol, Position: 7}
	assert.Equal(t, "base64 symbol error at position 7", err.Error())
}

package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// DecodeErrorKind classifies a base64 decoding failure.
type DecodeErrorKind string

const (
	DecodeSymbol   DecodeErrorKind = "symbol"
	DecodeLength   DecodeErrorKind = "length"
	DecodePadding  DecodeErrorKind = "padding"
	DecodeTrailing DecodeErrorKind = "trailing"
)

// DecodeError reports why and where base64 input was rejected.
type DecodeError struct {
	Kind     DecodeErrorKind
	Position int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("base64 %s error at position %d", e.Kind, e.Position)
}

const stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// DecodeB64 decodes standard, padded base64. Failures are *DecodeError
// pointing at the first offending byte, or at len(s) for truncated input.
func DecodeB64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return b, nil
	}
	var corrupt base64.CorruptInputError
	if !errors.As(err, &corrupt) {
		return nil, err
	}
	pos := int(corrupt)
	kind := DecodeSymbol
	switch {
	case pos >= len(s):
		kind, pos = DecodeLength, len(s)
	case s[pos] == '=':
		kind = DecodePadding
	case strings.IndexByte(s[:pos], '=') >= 0:
		kind = DecodeTrailing
	case strings.IndexByte(stdAlphabet, s[pos]) >= 0:
		// a valid symbol is only rejected when the final quantum is short
		kind, pos = DecodeLength, len(s)
	}
	return nil, &DecodeError{Kind: kind, Position: pos}
}

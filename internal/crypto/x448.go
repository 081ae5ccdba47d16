package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cloudflare/circl/dh/x448"

	"clipcrypt/internal/domain"
	"clipcrypt/internal/util/memzero"
)

var (
	// ErrInvalidPublicKey is returned when a peer key has the wrong length,
	// is not valid base64 or is a low-order point.
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrAgreementFailure is returned when the Diffie–Hellman output is
	// degenerate and no session key can be derived.
	ErrAgreementFailure = errors.New("key agreement failed")
)

// lowOrderProbe is clamped by x448.Shared, which clears the cofactor, so any
// low-order point multiplied by it yields the all-zero output.
var lowOrderProbe = x448.Key{1}

// GenerateX448 returns a fresh ephemeral X448 key pair.
func GenerateX448() (domain.KeyPair, error) {
	var sk, pk x448.Key
	if _, err := io.ReadFull(rand.Reader, sk[:]); err != nil {
		return domain.KeyPair{}, fmt.Errorf("read entropy: %w", err)
	}
	x448.KeyGen(&pk, &sk)
	kp := domain.KeyPair{
		Private: domain.X448Private(sk),
		Public:  domain.X448Public(pk),
	}
	memzero.Zero(sk[:])
	return kp, nil
}

// ExportPublic returns the public half of kp.
func ExportPublic(kp domain.KeyPair) domain.X448Public { return kp.Public }

// EncodePublicKey renders pub in the exchange format (standard base64).
func EncodePublicKey(pub domain.X448Public) string { return B64(pub.Slice()) }

// ImportPublic validates raw bytes received from a peer.
func ImportPublic(b []byte) (domain.X448Public, error) {
	var pub domain.X448Public
	if len(b) != domain.X448KeySize {
		return pub, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidPublicKey, domain.X448KeySize, len(b))
	}
	var pk, out x448.Key
	copy(pk[:], b)
	if !x448.Shared(&out, &lowOrderProbe, &pk) {
		return pub, fmt.Errorf("%w: low-order point", ErrInvalidPublicKey)
	}
	copy(pub[:], b)
	return pub, nil
}

// ParsePublicKey decodes a base64 public key as pasted by a user.
// Surrounding whitespace is ignored.
func ParsePublicKey(text string) (domain.X448Public, error) {
	raw, err := DecodeB64(strings.TrimSpace(text))
	if err != nil {
		return domain.X448Public{}, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return ImportPublic(raw)
}

// Agree computes X448 Diffie–Hellman between our private scalar and the
// peer's public key.
func Agree(priv domain.X448Private, pub domain.X448Public) (domain.SharedSecret, error) {
	sk := x448.Key(priv)
	pk := x448.Key(pub)
	defer memzero.Zero(sk[:])

	var shared x448.Key
	if !x448.Shared(&shared, &sk, &pk) {
		return domain.SharedSecret{}, ErrAgreementFailure
	}
	out := domain.SharedSecret(shared)
	memzero.Zero(shared[:])
	return out, nil
}

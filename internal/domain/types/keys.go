package types

const (
	// X448KeySize is the length of X448 scalars, points and shared secrets.
	X448KeySize = 56
	// SymmetricKeySize is the length of the AES-256 session key.
	SymmetricKeySize = 32
)

// X448Public is an X448 public key (a Montgomery u-coordinate).
type X448Public [X448KeySize]byte

// Slice returns the key as a []byte.
func (p X448Public) Slice() []byte { return p[:] }

// X448Private is an X448 private scalar.
type X448Private [X448KeySize]byte

// KeyPair is the ephemeral key pair generated once per session.
type KeyPair struct {
	Private X448Private
	Public  X448Public
}

// SharedSecret is the raw X448 Diffie-Hellman output.
type SharedSecret [X448KeySize]byte

// SymmetricKey keys the block cipher for the whole session.
type SymmetricKey [SymmetricKeySize]byte

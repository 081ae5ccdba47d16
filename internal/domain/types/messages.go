package types

// BlockSize is the cipher block length in bytes.
const BlockSize = 16

// Block is the atomic unit of cipher operation.
type Block [BlockSize]byte

// Direction tells which way a line went through the message pipeline.
type Direction int

const (
	// Encrypted means the line was plaintext and Text holds its Frame.
	Encrypted Direction = iota + 1
	// Decrypted means the line was a Frame and Text holds the plaintext.
	Decrypted
)

// String returns a short name for the direction.
func (d Direction) String() string {
	switch d {
	case Encrypted:
		return "encrypted"
	case Decrypted:
		return "decrypted"
	default:
		return "unknown"
	}
}

// Result is what the message pipeline produced for one input line.
type Result struct {
	Direction Direction
	Text      string
}

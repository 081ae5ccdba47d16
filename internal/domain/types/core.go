package types

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Frame is the textual wire form of an encrypted message: "enc-" followed by
// the standard base64 encoding of the ciphertext blocks.
type Frame string

// String returns the string form of the frame.
func (f Frame) String() string { return string(f) }

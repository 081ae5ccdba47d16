// Package frame implements the message pipeline between console lines and
// encrypted frames.
//
// # Format
//
// A frame is the literal prefix "enc-" followed by the standard, padded
// base64 encoding of N×16 ciphertext bytes (N ≥ 0). Plaintext is split into
// 16-byte blocks and the final short block is right-padded with ASCII spaces.
// Each block goes through the BlockCodec on its own.
//
// # Dispatch
//
// Process routes a line by the "enc-" prefix alone: prefixed lines are
// decrypted, everything else is encrypted, even when it happens to be valid
// base64.
//
// # Errors
//
// Decrypt fails with ErrMalformedFrame (bad base64, wrapping a
// *crypto.DecodeError), ErrUnalignedCiphertext (body not a multiple of the
// block size) or ErrInvalidPlaintextEncoding (decrypted bytes are not UTF-8,
// usually a key mismatch). A failed decrypt returns no partial plaintext.
//
// Padding spaces cannot be told apart from spaces the sender typed at the end
// of a message; Decrypt trims all trailing spaces.
package frame

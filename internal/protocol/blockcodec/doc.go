// Package blockcodec applies AES-256 to single 16-byte blocks under the
// session key.
//
// Every block is processed on its own with no chaining, IV or tag, which is
// ECB mode in effect. Identical plaintext blocks encrypt to identical
// ciphertext blocks and ciphertext can be reordered or altered without
// detection. The wire format depends on this, so it is kept as is; it gives
// confidentiality of individual blocks only.
//
// Concurrency: a Codec is immutable after New and safe for concurrent use.
package blockcodec

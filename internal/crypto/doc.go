// Package crypto exposes the minimal primitives used by clipcrypt.
//
// Contents
//
//   - X448 key generation, public-key import/export and Diffie–Hellman
//     (GenerateX448, ExportPublic, ImportPublic, ParsePublicKey, Agree)
//   - Session key derivation, a single SHA-256 over the shared secret
//     (DeriveKey)
//   - Standard base64 with positioned decode errors (B64, DecodeB64)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// All functions return fixed-size array types defined in internal/domain.
// Private scalars and shared secrets are wiped from intermediate buffers with
// internal/util/memzero; callers own the returned values and should wipe them
// once consumed.
package crypto

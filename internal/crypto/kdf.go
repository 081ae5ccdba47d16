package crypto

import (
	sha256 "github.com/minio/sha256-simd"

	"clipcrypt/internal/domain"
)

// DeriveKey hashes the raw shared secret into the AES-256 session key.
// There is no salt or info string: both parties holding the same secret
// arrive at the same key with no further negotiation.
func DeriveKey(secret domain.SharedSecret) domain.SymmetricKey {
	return domain.SymmetricKey(sha256.Sum256(secret[:]))
}

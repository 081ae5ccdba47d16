package blockcodec

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"clipcrypt/internal/domain"
)

// Codec encrypts and decrypts single blocks with one fixed key.
type Codec struct {
	block cipher.Block
}

// New returns a Codec keyed with key.
func New(key domain.SymmetricKey) (*Codec, error) {
	b, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("aes-256 cipher: %w", err)
	}
	return &Codec{block: b}, nil
}

// EncryptBlock applies the forward cipher to in.
func (c *Codec) EncryptBlock(in domain.Block) domain.Block {
	var out domain.Block
	c.block.Encrypt(out[:], in[:])
	return out
}

// DecryptBlock applies the inverse cipher to in.
func (c *Codec) DecryptBlock(in domain.Block) domain.Block {
	var out domain.Block
	c.block.Decrypt(out[:], in[:])
	return out
}

// Compile-time assertion that Codec implements domain.BlockCodec.
var _ domain.BlockCodec = (*Codec)(nil)

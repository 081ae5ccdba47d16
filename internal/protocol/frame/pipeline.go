package frame

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"clipcrypt/internal/crypto"
	"clipcrypt/internal/domain"
)

// Prefix marks a line as an encrypted frame.
const Prefix = "enc-"

// padByte fills the final plaintext block.
const padByte = ' '

var (
	ErrMalformedFrame           = errors.New("malformed frame")
	ErrUnalignedCiphertext      = errors.New("ciphertext is not a whole number of blocks")
	ErrInvalidPlaintextEncoding = errors.New("decrypted message is not valid UTF-8")
)

// Pipeline drives a BlockCodec over whole messages.
type Pipeline struct {
	codec domain.BlockCodec
}

// New returns a Pipeline using codec for every block.
func New(codec domain.BlockCodec) *Pipeline {
	return &Pipeline{codec: codec}
}

// IsFrame reports whether line is routed to the decrypt path.
func IsFrame(line string) bool { return strings.HasPrefix(line, Prefix) }

// Encrypt pads, encrypts and frames plaintext. Empty input yields a frame
// with an empty body.
func (p *Pipeline) Encrypt(plaintext string) domain.Frame {
	src := []byte(plaintext)
	out := make([]byte, 0, blocksFor(len(src))*domain.BlockSize)
	for off := 0; off < len(src); off += domain.BlockSize {
		var blk domain.Block
		n := copy(blk[:], src[off:])
		for i := n; i < domain.BlockSize; i++ {
			blk[i] = padByte
		}
		ct := p.codec.EncryptBlock(blk)
		out = append(out, ct[:]...)
	}
	return domain.Frame(Prefix + crypto.B64(out))
}

// Decrypt recovers the plaintext of frame with trailing padding removed.
func (p *Pipeline) Decrypt(frame string) (string, error) {
	body, ok := strings.CutPrefix(frame, Prefix)
	if !ok {
		return "", fmt.Errorf("%w: missing %q prefix", ErrMalformedFrame, Prefix)
	}
	ct, err := crypto.DecodeB64(strings.TrimSpace(body))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedFrame, err)
	}
	if len(ct)%domain.BlockSize != 0 {
		return "", fmt.Errorf("%w: got %d bytes", ErrUnalignedCiphertext, len(ct))
	}

	pt := make([]byte, 0, len(ct))
	for off := 0; off < len(ct); off += domain.BlockSize {
		var blk domain.Block
		copy(blk[:], ct[off:off+domain.BlockSize])
		out := p.codec.DecryptBlock(blk)
		pt = append(pt, out[:]...)
	}
	if i := firstInvalidUTF8(pt); i >= 0 {
		return "", fmt.Errorf("%w: invalid sequence at byte %d", ErrInvalidPlaintextEncoding, i)
	}
	return strings.TrimRight(string(pt), string(padByte)), nil
}

// Process encrypts or decrypts line depending on its prefix.
func (p *Pipeline) Process(line string) (domain.Result, error) {
	if IsFrame(line) {
		text, err := p.Decrypt(line)
		if err != nil {
			return domain.Result{}, err
		}
		return domain.Result{Direction: domain.Decrypted, Text: text}, nil
	}
	return domain.Result{Direction: domain.Encrypted, Text: p.Encrypt(line).String()}, nil
}

func blocksFor(n int) int {
	return (n + domain.BlockSize - 1) / domain.BlockSize
}

// firstInvalidUTF8 returns the offset of the first invalid sequence in b, or -1.
func firstInvalidUTF8(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// Compile-time assertion that Pipeline implements domain.MessagePipeline.
var _ domain.MessagePipeline = (*Pipeline)(nil)

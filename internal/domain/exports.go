package domain

import (
	"errors"

	interfaces "clipcrypt/internal/domain/interfaces"
	types "clipcrypt/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	X448Public   = types.X448Public
	X448Private  = types.X448Private
	KeyPair      = types.KeyPair
	SharedSecret = types.SharedSecret
	SymmetricKey = types.SymmetricKey
	Fingerprint  = types.Fingerprint
	Frame        = types.Frame
	Block        = types.Block
	Direction    = types.Direction
	Result       = types.Result
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Clipboard       = interfaces.Clipboard
	LineSource      = interfaces.LineSource
	Printer         = interfaces.Printer
	BlockCodec      = interfaces.BlockCodec
	MessagePipeline = interfaces.MessagePipeline
)

const (
	X448KeySize = types.X448KeySize
	BlockSize   = types.BlockSize

	Encrypted = types.Encrypted
	Decrypted = types.Decrypted
)

// ErrInterrupted is returned by a LineSource when the user asked to quit
// while it was waiting for input.
var ErrInterrupted = errors.New("interrupted")

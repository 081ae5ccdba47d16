package interfaces

import domaintypes "clipcrypt/internal/domain/types"

// BlockCodec encrypts and decrypts single blocks under the session key.
type BlockCodec interface {
	EncryptBlock(block domaintypes.Block) domaintypes.Block
	DecryptBlock(block domaintypes.Block) domaintypes.Block
}

// MessagePipeline turns input lines into frames or recovered plaintext.
type MessagePipeline interface {
	Encrypt(plaintext string) domaintypes.Frame
	Decrypt(frame string) (string, error)
	Process(line string) (domaintypes.Result, error)
}

// Package session runs one interactive encrypted conversation.
//
// It generates an ephemeral X448 key pair, publishes the public key through
// the clipboard and console, waits for the peer's public key, derives the
// AES-256 session key and then feeds every further input line through the
// frame pipeline: plaintext lines become frames (printed and copied), frames
// become plaintext (printed).
//
// Invalid peer keys, bad frames and failed reads after the handshake are
// reported and the loop continues. Failing to copy, failing to agree on a key,
// input errors during the handshake and a long run of failed reads end the
// session with an error. Interruption and end of input after the handshake end
// it cleanly.
package session

// Package commands defines the clipcrypt CLI.
//
// Commands
//
//   - (root)        Run an encrypted session: share keys, then encrypt and decrypt lines
//   - fingerprint   Validate a base64 public key and print its fingerprint
//
// # Implementation
//
// Persistent flags are bound to a viper instance, so every option can also
// come from a CLIPCRYPT_* environment variable or a YAML file given with
// --config. The root command wires the console, clipboard and session before
// running, and cancels the session on SIGINT or SIGTERM.
package commands

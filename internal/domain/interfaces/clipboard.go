package interfaces

// Clipboard is the out-of-band side channel used to hand public keys and
// frames to the user.
type Clipboard interface {
	Copy(text string) error
	Paste() (string, error)
}

package interfaces

import "context"

// LineSource yields one line of user input at a time.
//
// ReadLine blocks until a line is available, the input ends (io.EOF) or ctx
// is cancelled. The returned line carries no trailing newline.
type LineSource interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Printer is the console output sink.
type Printer interface {
	// Info prints guidance text.
	Info(format string, args ...any)
	// Result prints a value the user will copy or read: a public key, a frame
	// or a decrypted message.
	Result(text string)
	// Problem prints a diagnostic for a recoverable error, followed by an
	// optional hint.
	Problem(err error, hint string)
}

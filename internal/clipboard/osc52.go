package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// OSC52 copies by asking the terminal emulator to set its clipboard.
type OSC52 struct {
	w      io.Writer
	tmux   bool
	screen bool
}

// NewOSC52 returns an OSC52 backend writing to w. Sequences are wrapped for
// tmux or GNU screen when the environment says we run inside one.
func NewOSC52(w io.Writer) *OSC52 {
	return &OSC52{
		w:      w,
		tmux:   os.Getenv("TMUX") != "",
		screen: strings.HasPrefix(os.Getenv("TERM"), "screen"),
	}
}

// Copy writes the escape sequence carrying text.
func (c *OSC52) Copy(text string) error {
	seq := osc52.New(text)
	switch {
	case c.tmux:
		seq = seq.Tmux()
	case c.screen:
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.w); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}
	return nil
}

// Paste is not available: reading the clipboard back needs a terminal
// round-trip most emulators refuse.
func (c *OSC52) Paste() (string, error) { return "", ErrPasteUnsupported }

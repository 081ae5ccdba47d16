package clipboard

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"clipcrypt/internal/domain"
)

// ErrPasteUnsupported is returned by backends that can only copy.
var ErrPasteUnsupported = errors.New("clipboard paste is not supported by this backend")

// Mode selects the clipboard backend.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeSystem Mode = "system"
	ModeOSC52  Mode = "osc52"
	ModeNone   Mode = "none"
)

// ParseMode validates a mode name from configuration.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAuto, ModeSystem, ModeOSC52, ModeNone:
		return m, nil
	case "":
		return ModeAuto, nil
	default:
		return "", fmt.Errorf("unknown clipboard mode %q (want auto, system, osc52 or none)", s)
	}
}

// New returns the backend for mode. OSC 52 sequences are written to term;
// interactive tells ModeAuto whether term is a terminal.
func New(mode Mode, term io.Writer, interactive bool) (domain.Clipboard, error) {
	switch mode {
	case ModeSystem:
		if clipboard.Unsupported {
			return nil, errors.New("system clipboard is unavailable (install xclip, xsel or wl-clipboard)")
		}
		return System{}, nil
	case ModeOSC52:
		return NewOSC52(term), nil
	case ModeNone:
		return None{}, nil
	case ModeAuto, "":
		switch {
		case !clipboard.Unsupported:
			return System{}, nil
		case interactive:
			return NewOSC52(term), nil
		default:
			return None{}, nil
		}
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q", mode)
	}
}

// System uses the desktop clipboard.
type System struct{}

// Copy replaces the clipboard contents with text.
func (System) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}

// Paste returns the current clipboard contents.
func (System) Paste() (string, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read system clipboard: %w", err)
	}
	return s, nil
}

// None discards copies and cannot paste.
type None struct{}

func (None) Copy(string) error       { return nil }
func (None) Paste() (string, error) { return "", ErrPasteUnsupported }

// Compile-time assertions that the backends implement domain.Clipboard.
var (
	_ domain.Clipboard = System{}
	_ domain.Clipboard = None{}
	_ domain.Clipboard = (*OSC52)(nil)
)

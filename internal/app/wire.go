package app

import (
	"errors"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"

	"clipcrypt/internal/clipboard"
	"clipcrypt/internal/console"
	"clipcrypt/internal/domain"
	sessionsvc "clipcrypt/internal/services/session"
)

// Streams are the process's standard files.
type Streams struct {
	In  *os.File
	Out *os.File
	Err *os.File
}

// StdStreams returns os.Stdin, os.Stdout and os.Stderr.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Wire bundles the console, clipboard, logger and session for the CLI.
type Wire struct {
	Logger    zerolog.Logger
	Printer   domain.Printer
	Input     domain.LineSource
	Clipboard domain.Clipboard
	Session   *sessionsvc.Service

	closers []func() error
}

// NewWire constructs the dependency graph from cfg. Close must be called to
// restore the terminal.
func NewWire(cfg Config, s Streams) (*Wire, error) {
	outTTY := console.IsTerminal(s.Out)
	interactive := outTTY && console.IsTerminal(s.In)

	logger, err := NewLogger(colorable.NewColorable(s.Err), cfg.LogLevel, cfg.NoColor || !console.IsTerminal(s.Err))
	if err != nil {
		return nil, err
	}

	mode, err := clipboard.ParseMode(cfg.Clipboard)
	if err != nil {
		return nil, err
	}
	clip, err := clipboard.New(mode, s.Out, interactive)
	if err != nil {
		return nil, err
	}

	w := &Wire{
		Logger:    logger,
		Printer:   console.NewPrinter(colorable.NewColorable(s.Out), cfg.NoColor || !outTTY),
		Clipboard: clip,
	}

	if interactive {
		ls := console.NewLinerSource()
		w.Input = ls
		w.closers = append(w.closers, ls.Close)
	} else {
		ss := console.NewScannerSource(s.In)
		w.Input = ss
		w.closers = append(w.closers, ss.Close)
	}

	w.Session = sessionsvc.New(w.Input, w.Printer, w.Clipboard, logger)

	logger.Debug().
		Str("clipboard", string(mode)).
		Bool("interactive", interactive).
		Msg("wired")
	return w, nil
}

// Close releases the terminal and any other held resources.
func (w *Wire) Close() error {
	var errs []error
	for i := len(w.closers) - 1; i >= 0; i-- {
		if err := w.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	w.closers = nil
	return errors.Join(errs...)
}

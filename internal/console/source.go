package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"clipcrypt/internal/domain"
)

// maxLine bounds a single input line; frames of long messages are large.
const maxLine = 1 << 20

// ErrLineTooLong is returned for an input line longer than maxLine bytes. The
// line is discarded and the next ReadLine continues with the following one.
var ErrLineTooLong = errors.New("input line too long")

type lineResult struct {
	line string
	err  error
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ScannerSource reads lines from any reader. The prompt is ignored.
type ScannerSource struct {
	lines chan lineResult
	done  chan struct{}
	once  sync.Once
}

// NewScannerSource starts reading r in the background. Close stops it.
func NewScannerSource(r io.Reader) *ScannerSource {
	s := &ScannerSource{
		lines: make(chan lineResult),
		done:  make(chan struct{}),
	}
	go s.scan(r)
	return s
}

// scan stops at end of input or at the first read error.
func (s *ScannerSource) scan(r io.Reader) {
	defer close(s.lines)
	br := bufio.NewReaderSize(r, 64*1024)
	for {
		line, err := readLine(br)
		if errors.Is(err, io.EOF) {
			return
		}
		select {
		case s.lines <- lineResult{line: line, err: err}:
		case <-s.done:
			return
		}
		if err != nil && !errors.Is(err, ErrLineTooLong) {
			return
		}
	}
}

// readLine returns the next line without its terminator. An over-long line
// is drained and reported as ErrLineTooLong.
func readLine(br *bufio.Reader) (string, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		frag, isPrefix, err := br.ReadLine()
		if err != nil {
			return "", err
		}
		if !tooLong {
			if len(buf)+len(frag) > maxLine {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, frag...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", ErrLineTooLong
	}
	return strings.TrimRight(string(buf), "\r"), nil
}

// ReadLine returns the next line, io.EOF at end of input, or
// domain.ErrInterrupted once ctx is done.
func (s *ScannerSource) ReadLine(ctx context.Context, _ string) (string, error) {
	select {
	case <-ctx.Done():
		return "", domain.ErrInterrupted
	case res, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

// Close stops the background reader once it next delivers a line.
func (s *ScannerSource) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

// LinerSource reads from the controlling terminal with line editing.
type LinerSource struct {
	state   *liner.State
	pending chan lineResult
}

// NewLinerSource puts the terminal under liner's control. Close must be called
// to restore it.
func NewLinerSource() *LinerSource {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	return &LinerSource{state: st}
}

// ReadLine shows prompt and waits for a line. A prompt left open by a
// cancelled call is picked up by the next one.
func (s *LinerSource) ReadLine(ctx context.Context, prompt string) (string, error) {
	if s.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := s.state.Prompt(prompt)
			ch <- lineResult{line: line, err: err}
		}()
		s.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", domain.ErrInterrupted
	case res := <-s.pending:
		s.pending = nil
		if errors.Is(res.err, liner.ErrPromptAborted) {
			return "", domain.ErrInterrupted
		}
		return res.line, res.err
	}
}

// Close restores the terminal mode.
func (s *LinerSource) Close() error { return s.state.Close() }

// Compile-time assertions that the sources implement domain.LineSource.
var (
	_ domain.LineSource = (*ScannerSource)(nil)
	_ domain.LineSource = (*LinerSource)(nil)
)

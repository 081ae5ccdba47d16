package console

import (
	"io"

	"github.com/fatih/color"

	"clipcrypt/internal/domain"
)

// ColorPrinter writes user-facing output, colored by kind.
type ColorPrinter struct {
	w       io.Writer
	info    *color.Color
	result  *color.Color
	problem *color.Color
	hint    *color.Color
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer, noColor bool) *ColorPrinter {
	p := &ColorPrinter{
		w:       w,
		info:    color.New(color.FgCyan),
		result:  color.New(color.Bold),
		problem: color.New(color.FgRed),
		hint:    color.New(color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{p.info, p.result, p.problem, p.hint} {
			c.DisableColor()
		}
	}
	return p
}

func (p *ColorPrinter) Info(format string, args ...any) {
	_, _ = p.info.Fprintf(p.w, format+"\n", args...)
}

func (p *ColorPrinter) Result(text string) {
	_, _ = p.result.Fprintln(p.w, text)
	_, _ = io.WriteString(p.w, "\n")
}

func (p *ColorPrinter) Problem(err error, hint string) {
	_, _ = p.problem.Fprintf(p.w, "error: %v\n", err)
	if hint != "" {
		_, _ = p.hint.Fprintln(p.w, hint)
	}
}

// Compile-time assertion that ColorPrinter implements domain.Printer.
var _ domain.Printer = (*ColorPrinter)(nil)

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/zephyrtronium/tracecalc"
)

// setColor decides whether output to w is colored. mode is auto, always, or
// never.
func setColor(mode string, w io.Writer) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		f, ok := w.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		} else {
			color.NoColor = false
		}
	}
}

// printer writes evaluations to the terminal.
type printer struct {
	w      io.Writer
	tree   *color.Color
	step   *color.Color
	result *color.Color
	caret  *color.Color
	err    *color.Color
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:      w,
		tree:   color.New(color.Bold),
		step:   color.New(color.FgHiBlue),
		result: color.New(color.Bold, color.FgHiGreen),
		caret:  color.New(color.FgYellow),
		err:    color.New(color.FgRed),
	}
}

func (p *printer) expr(s string) {
	p.tree.Fprintln(p.w, "  "+s)
}

func (p *printer) reduction(s string) {
	p.step.Fprintln(p.w, "→ "+s)
}

func (p *printer) value(v int64) {
	p.result.Fprintf(p.w, "= %d\n", v)
}

// failure reports an error in src. Errors that locate their input get the
// source line with a caret line under the offending text.
func (p *printer) failure(src string, err error) {
	var ierr tracecalc.InputError
	if errors.As(err, &ierr) {
		fmt.Fprintln(p.w, "  "+src)
		p.caret.Fprintln(p.w, "  "+caretLine(src, ierr.Location()))
	}
	p.err.Fprintf(p.w, "error: %v\n", err)
}

func (p *printer) println(s string) {
	fmt.Fprintln(p.w, s)
}

// caretLine creates a line that marks the span s of src when printed beneath
// it. Tabs in the prefix are kept so that the marks line up.
func caretLine(src string, s tracecalc.Span) string {
	if s.Start > len(src) {
		s.Start = len(src)
	}
	var b strings.Builder
	for _, r := range src[:s.Start] {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	n := utf8.RuneCountInString(s.Text)
	if n < 1 {
		n = 1
	}
	b.WriteString(strings.Repeat("^", n))
	return b.String()
}

// Package render turns decoded bspwm report tokens into one status line.
package render

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"

	"golang.org/x/term"

	"github.com/xFA25E/bratus/pkg/report"
)

// Renderer writes one formatted line per call: a fragment per known token,
// a trailing newline, then a flush of w.
type Renderer interface {
	Render(w *bufio.Writer, tokens iter.Seq[report.Token]) error
}

// Format selects a renderer. Bar markup is the default; terminal output and
// auto-detection are only used when asked for.
type Format string

const (
	FormatAuto     Format = "auto"
	FormatBar      Format = "bar"
	FormatTerminal Format = "terminal"
)

// ParseFormat validates a --format value. The empty string means bar.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatBar:
		return FormatBar, nil
	case FormatAuto, FormatTerminal:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (expected auto, bar, terminal)", s)
	}
}

// Resolve turns auto into terminal when w is a TTY and bar otherwise. The
// zero Format is bar.
func (f Format) Resolve(w io.Writer) Format {
	switch f {
	case "":
		return FormatBar
	case FormatAuto:
		if isTTYWriter(w) {
			return FormatTerminal
		}
		return FormatBar
	default:
		return f
	}
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Options are shared by every renderer.
type Options struct {
	Palette Palette

	// MaxLabelWidth truncates monitor and desktop names to this many terminal
	// cells. Zero means unlimited.
	MaxLabelWidth int

	// LabelCase transforms monitor and desktop names.
	LabelCase Case
}

// New returns the renderer for f. Auto is resolved against out.
func New(f Format, out io.Writer, opts Options) Renderer {
	if f.Resolve(out) == FormatTerminal {
		return NewTerminal(out, opts)
	}
	return NewBar(opts)
}

// layout is the padding around a label.
type layout struct {
	prefix, suffix string
}

// layoutFor returns the padding for m, and false for markers that produce no
// output.
func layoutFor(m report.Marker) (layout, bool) {
	switch m {
	case 'm', 'f', 'o', 'u':
		return layout{" ", "  "}, true
	case 'M', 'F', 'O', 'U':
		return layout{"-", "- "}, true
	case 'L', 'T', 'G':
		return layout{" ", ""}, true
	default:
		return layout{}, false
	}
}

// writeLine is the loop shared by the renderers. colorize receives the shaped
// label and its category.
func writeLine(w *bufio.Writer, tokens iter.Seq[report.Token], sh *shaper, colorize func(report.Category, string) string) error {
	for tok := range tokens {
		l, ok := layoutFor(tok.Marker)
		if !ok {
			continue
		}
		cat := tok.Marker.Category()
		label := colorize(cat, sh.shape(cat, tok.Label))
		if _, err := w.WriteString(l.prefix); err != nil {
			return err
		}
		if _, err := w.WriteString(label); err != nil {
			return err
		}
		if _, err := w.WriteString(l.suffix); err != nil {
			return err
		}
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	return w.Flush()
}

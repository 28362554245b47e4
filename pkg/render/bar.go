package render

import (
	"bufio"
	"iter"

	"github.com/xFA25E/bratus/pkg/report"
)

// Bar renders for lemonbar-style status bars, coloring labels with
// %{F#RRGGBB}...%{F-} markup.
type Bar struct {
	palette Palette
	shaper  *shaper
}

// NewBar creates a bar renderer.
func NewBar(opts Options) *Bar {
	return &Bar{palette: opts.Palette, shaper: newShaper(opts)}
}

// Render writes one status line.
func (b *Bar) Render(w *bufio.Writer, tokens iter.Seq[report.Token]) error {
	return writeLine(w, tokens, b.shaper, func(cat report.Category, label string) string {
		return b.palette.For(cat).Markup(label)
	})
}

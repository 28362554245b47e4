package render

import (
	"bufio"
	"io"
	"iter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/xFA25E/bratus/pkg/report"
)

// Terminal renders the same layout as Bar but colors labels with ANSI
// escapes via lipgloss, for reading the status in a terminal.
type Terminal struct {
	styles map[report.Category]lipgloss.Style
	shaper *shaper
}

// NewTerminal creates a terminal renderer whose color profile is detected
// from out.
func NewTerminal(out io.Writer, opts Options) *Terminal {
	return newTerminal(lipgloss.NewRenderer(out), opts)
}

// NewTerminalWithProfile creates a terminal renderer with a fixed color
// profile, regardless of what out is.
func NewTerminalWithProfile(out io.Writer, profile termenv.Profile, opts Options) *Terminal {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(profile)
	return newTerminal(r, opts)
}

func newTerminal(r *lipgloss.Renderer, opts Options) *Terminal {
	styles := make(map[report.Category]lipgloss.Style, len(report.Categories))
	for _, cat := range report.Categories {
		c := opts.Palette.For(cat)
		if !c.IsSet() {
			continue
		}
		styles[cat] = r.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return &Terminal{styles: styles, shaper: newShaper(opts)}
}

// Render writes one status line.
func (t *Terminal) Render(w *bufio.Writer, tokens iter.Seq[report.Token]) error {
	return writeLine(w, tokens, t.shaper, func(cat report.Category, label string) string {
		style, ok := t.styles[cat]
		if !ok {
			return label
		}
		return style.Render(label)
	})
}

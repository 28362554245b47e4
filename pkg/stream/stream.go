// Package stream drives the read, decode, render loop over a report stream.
package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xFA25E/bratus/pkg/render"
	"github.com/xFA25E/bratus/pkg/report"
)

// Options tune the loop.
type Options struct {
	// Dedup skips a line byte-identical to the one just before it, line
	// ending included.
	Dedup bool

	// Stats, if non-nil, is updated as lines are processed.
	Stats *Stats
}

// Stats counts processed lines.
type Stats struct {
	Lines    int // lines read
	Rendered int // lines rendered
	Skipped  int // duplicates not rendered
}

// Run reads report lines from r and renders each to out until r is
// exhausted. A clean EOF returns nil, a read or write error is returned.
// Reads are not interruptible; cancelling ctx stops the loop before the next
// line is rendered, and the caller is expected to close r to unblock it.
func Run(ctx context.Context, r *bufio.Reader, out io.Writer, rnd render.Renderer, opts Options) error {
	w := bufio.NewWriter(out)
	stats := opts.Stats
	if stats == nil {
		stats = &Stats{}
	}

	var prev string
	seen := false
	for {
		line, readErr := r.ReadString('\n')
		if len(line) > 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			stats.Lines++
			if opts.Dedup && seen && line == prev {
				stats.Skipped++
			} else {
				if err := rnd.Render(w, report.Tokens(trimEOL(line))); err != nil {
					return fmt.Errorf("writing status: %w", err)
				}
				stats.Rendered++
				prev, seen = line, true
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading reports: %w", readErr)
		}
	}
}

// trimEOL removes one trailing "\n" or "\r\n".
func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// Package report decodes bspwm status reports, the lines printed by
// `bspc subscribe report`, into marker/label tokens.
//
// A report looks like
//
//	WMeDP1:Oterm:o2:f3:LT:TT:G
//
// The first byte is a frame marker and carries nothing per token. The rest is
// a list of ':' separated entries whose first byte is the marker and whose
// remainder is the label. There is no escaping, so labels cannot contain ':'.
package report

import (
	"iter"
	"slices"
	"strings"
)

// Separator splits the entries of a report line.
const Separator = ":"

// Token is one decoded report entry.
type Token struct {
	Marker Marker
	Label  string
}

// Tokens yields the tokens of line in order. The frame marker is discarded and
// entries shorter than two bytes are dropped silently; they are filler, not
// malformed input. The sequence holds no state and can be ranged over again.
func Tokens(line string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		if len(line) < 2 {
			return
		}
		for entry := range strings.SplitSeq(line[1:], Separator) {
			if len(entry) < 2 {
				continue
			}
			if !yield(Token{Marker: Marker(entry[0]), Label: entry[1:]}) {
				return
			}
		}
	}
}

// Tokenize collects the tokens of line into a slice.
func Tokenize(line string) []Token {
	return slices.Collect(Tokens(line))
}

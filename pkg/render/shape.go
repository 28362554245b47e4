package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/xFA25E/bratus/pkg/report"
)

// Case is a text transform applied to monitor and desktop names.
type Case string

const (
	CaseNone  Case = "none"
	CaseUpper Case = "upper"
	CaseLower Case = "lower"
	CaseTitle Case = "title"
)

// ParseCase validates a --label-case value. The empty string means none.
func ParseCase(s string) (Case, error) {
	switch Case(s) {
	case "", CaseNone:
		return CaseNone, nil
	case CaseUpper, CaseLower, CaseTitle:
		return Case(s), nil
	default:
		return "", fmt.Errorf("unknown label case %q (expected none, upper, lower, title)", s)
	}
}

// ellipsis marks a truncated label.
const ellipsis = "…"

// shaper applies the label options. Window state labels are single letters
// with fixed meaning and are never shaped.
type shaper struct {
	maxWidth int
	caser    *cases.Caser
}

func newShaper(opts Options) *shaper {
	s := &shaper{maxWidth: opts.MaxLabelWidth}
	var c cases.Caser
	switch opts.LabelCase {
	case CaseUpper:
		c = cases.Upper(language.Und)
	case CaseLower:
		c = cases.Lower(language.Und)
	case CaseTitle:
		c = cases.Title(language.Und)
	default:
		return s
	}
	s.caser = &c
	return s
}

func (s *shaper) shape(cat report.Category, label string) string {
	if cat == report.CategoryState {
		return label
	}
	if s.caser != nil {
		label = s.caser.String(label)
	}
	if s.maxWidth > 0 {
		label = runewidth.Truncate(label, s.maxWidth, ellipsis)
	}
	return label
}

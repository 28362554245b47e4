package render

import (
	"errors"
	"fmt"

	"github.com/xFA25E/bratus/pkg/report"
)

// ErrInvalidColor is returned by ParseColor for anything other than "" or
// #RRGGBB.
var ErrInvalidColor = errors.New("invalid hex color")

// Color is an optional #RRGGBB color. The zero value means no color.
type Color struct {
	hex string
}

// ParseColor accepts the empty string (no color) or exactly '#' followed by
// six hex digits.
func ParseColor(s string) (Color, error) {
	if s == "" {
		return Color{}, nil
	}
	if len(s) != 7 || s[0] != '#' || !isHex(s[1:]) {
		return Color{}, fmt.Errorf("%w: %s", ErrInvalidColor, s)
	}
	return Color{hex: s}, nil
}

// MustParseColor is ParseColor that panics on error. For tests and constants.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// IsSet reports whether the color holds a value.
func (c Color) IsSet() bool { return c.hex != "" }

// Hex returns the #RRGGBB value, or "" when unset.
func (c Color) Hex() string { return c.hex }

func (c Color) String() string {
	if c.hex == "" {
		return "none"
	}
	return c.hex
}

// Markup wraps label in the bar foreground markup %{F#RRGGBB}label%{F-}.
// An unset color returns label unchanged.
func (c Color) Markup(label string) string {
	if c.hex == "" {
		return label
	}
	return "%{F" + c.hex + "}" + label + "%{F-}"
}

// Palette holds one color per category.
type Palette struct {
	Monitor  Color
	Free     Color
	Occupied Color
	Urgent   Color
	State    Color
}

// For returns the color configured for cat. Unknown categories get no color.
func (p Palette) For(cat report.Category) Color {
	switch cat {
	case report.CategoryMonitor:
		return p.Monitor
	case report.CategoryFree:
		return p.Free
	case report.CategoryOccupied:
		return p.Occupied
	case report.CategoryUrgent:
		return p.Urgent
	case report.CategoryState:
		return p.State
	default:
		return Color{}
	}
}

// Set returns a copy of p with cat's color replaced.
func (p Palette) Set(cat report.Category, c Color) Palette {
	switch cat {
	case report.CategoryMonitor:
		p.Monitor = c
	case report.CategoryFree:
		p.Free = c
	case report.CategoryOccupied:
		p.Occupied = c
	case report.CategoryUrgent:
		p.Urgent = c
	case report.CategoryState:
		p.State = c
	}
	return p
}

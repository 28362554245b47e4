package render

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xFA25E/bratus/pkg/report"
)

func TestParseColor_Empty(t *testing.T) {
	c, err := ParseColor("")
	require.NoError(t, err)

	assert.False(t, c.IsSet())
	assert.Equal(t, "none", c.String())
	assert.Equal(t, "desk", c.Markup("desk"))
}

func TestParseColor_Valid(t *testing.T) {
	for _, s := range []string{"#000000", "#ffffff", "#FFFFFF", "#a1B2c3", "#0f0F0f"} {
		c, err := ParseColor(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, c.Hex())
		assert.Equal(t, "%{F"+s+"}x%{F-}", c.Markup("x"))
	}
}

func TestParseColor_AnyHexDigits(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 5000 {
		s := fmt.Sprintf("#%06x", rng.IntN(1<<24))
		_, err := ParseColor(s)
		require.NoError(t, err, s)
	}
}

func TestParseColor_Invalid(t *testing.T) {
	tests := []string{
		"#",
		"#fff",
		"#12345",
		"#1234567",
		"123456",
		"1234567",
		"#12345g",
		"#-12345",
		"# 12345",
		"#ééé",
		" #123456",
		"red",
	}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			_, err := ParseColor(s)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidColor)
			assert.EqualError(t, err, "invalid hex color: "+s)
		})
	}
}

func TestMustParseColor_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseColor("nope") })
	assert.NotPanics(t, func() { MustParseColor("#abcdef") })
}

func TestPalette_ForAndSet(t *testing.T) {
	var p Palette
	for i, cat := range report.Categories {
		p = p.Set(cat, MustParseColor(fmt.Sprintf("#00000%d", i)))
	}

	for i, cat := range report.Categories {
		assert.Equal(t, fmt.Sprintf("#00000%d", i), p.For(cat).Hex(), cat.String())
	}
	assert.False(t, p.For(report.CategoryUnknown).IsSet())
	assert.Equal(t, p, p.Set(report.CategoryUnknown, MustParseColor("#ffffff")))
}

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/xFA25E/bratus/internal/diag"
	"github.com/xFA25E/bratus/pkg/render"
	"github.com/xFA25E/bratus/pkg/report"
)

// Source records where a resolved value came from.
type Source string

const (
	SourceCLI     Source = "cli"
	SourceEnv     Source = "env"
	SourceFile    Source = "file"
	SourceDefault Source = "default"
)

// Environment variables read during resolution.
const (
	EnvFormat  = "BRATUS_FORMAT"
	EnvNoColor = "NO_COLOR"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ConfigFile    string
	ColorMonitor  string
	ColorFree     string
	ColorOccupied string
	ColorUrgent   string
	ColorState    string
	Format        string
	MaxLabelWidth int
	LabelCase     string
	NoDedup       bool
	Debug         bool

	// Set holds the names of flags given on the command line. Unset flags do
	// not override lower priority sources.
	Set map[string]bool
}

func (c CliFlags) color(cat report.Category) string {
	switch cat {
	case report.CategoryMonitor:
		return c.ColorMonitor
	case report.CategoryFree:
		return c.ColorFree
	case report.CategoryOccupied:
		return c.ColorOccupied
	case report.CategoryUrgent:
		return c.ColorUrgent
	case report.CategoryState:
		return c.ColorState
	default:
		return ""
	}
}

// ColorFlag returns the flag name for cat's color, e.g. "color-free".
func ColorFlag(cat report.Category) string {
	return "color-" + cat.String()
}

// ColorEnv returns the environment variable for cat's color, e.g.
// "BRATUS_COLOR_FREE".
func ColorEnv(cat report.Category) string {
	return "BRATUS_COLOR_" + strings.ToUpper(cat.String())
}

// Resolved is the final configuration. It is not modified after Resolve.
type Resolved struct {
	Palette       render.Palette
	Format        render.Format
	MaxLabelWidth int
	LabelCase     render.Case
	Dedup         bool
	Debug         bool

	// NoColor is set by NO_COLOR. It only affects terminal output: bar
	// markup is consumed by the bar, not by a terminal.
	NoColor bool

	// Resolution metadata, for debug output.
	ConfigPath   string
	ColorSources map[report.Category]Source
	FormatSource Source
}

// RenderOptions returns the options for render.New with format f, the
// already resolved output format. Under NO_COLOR terminal output keeps only
// the colors given on the command line.
func (r *Resolved) RenderOptions(f render.Format) render.Options {
	palette := r.Palette
	if r.NoColor && f == render.FormatTerminal {
		for _, cat := range report.Categories {
			if r.ColorSources[cat] != SourceCLI {
				palette = palette.Set(cat, render.Color{})
			}
		}
	}
	return render.Options{
		Palette:       palette,
		MaxLabelWidth: r.MaxLabelWidth,
		LabelCase:     r.LabelCase,
	}
}

// Resolve merges flags, environment, config file and defaults, and validates
// the result.
func Resolve(cli CliFlags) (*Resolved, error) {
	file, path, err := loadFileFor(cli.ConfigFile)
	if err != nil {
		return nil, err
	}

	res := &Resolved{
		ConfigPath:   path,
		ColorSources: make(map[report.Category]Source, len(report.Categories)),
		Dedup:        true,
	}

	if err := res.resolveColors(cli, file); err != nil {
		return nil, err
	}
	if err := res.resolveFormat(cli, file); err != nil {
		return nil, err
	}
	if err := res.resolveLabels(cli, file); err != nil {
		return nil, err
	}

	if cli.Set["no-dedup"] {
		res.Dedup = !cli.NoDedup
	} else if file.Dedup != nil {
		res.Dedup = *file.Dedup
	}
	res.Debug = cli.Debug || diag.DebugFromEnv() || file.Debug

	return res, nil
}

func (r *Resolved) resolveColors(cli CliFlags, file *File) error {
	r.NoColor = os.Getenv(EnvNoColor) != ""

	for _, cat := range report.Categories {
		value, source, origin := "", SourceDefault, ""
		if cli.Set[ColorFlag(cat)] {
			value, source, origin = cli.color(cat), SourceCLI, "--"+ColorFlag(cat)
		} else if v, ok := os.LookupEnv(ColorEnv(cat)); ok {
			value, source, origin = v, SourceEnv, ColorEnv(cat)
		} else if v := file.Colors.get(cat); v != "" {
			value, source, origin = v, SourceFile, r.ConfigPath+": colors."+cat.String()
		}

		c, err := render.ParseColor(value)
		if err != nil {
			return fmt.Errorf("%s: %w", origin, err)
		}
		r.Palette = r.Palette.Set(cat, c)
		r.ColorSources[cat] = source
	}
	return nil
}

func (r *Resolved) resolveFormat(cli CliFlags, file *File) error {
	value, source := "", SourceDefault
	if cli.Set["format"] {
		value, source = cli.Format, SourceCLI
	} else if v := os.Getenv(EnvFormat); v != "" {
		value, source = v, SourceEnv
	} else if file.Format != "" {
		value, source = file.Format, SourceFile
	}

	f, err := render.ParseFormat(value)
	if err != nil {
		return fmt.Errorf("format from %s: %w", source, err)
	}
	r.Format, r.FormatSource = f, source
	return nil
}

func (r *Resolved) resolveLabels(cli CliFlags, file *File) error {
	r.MaxLabelWidth = file.MaxLabelWidth
	if cli.Set["max-label-width"] {
		r.MaxLabelWidth = cli.MaxLabelWidth
	}
	if r.MaxLabelWidth < 0 {
		return fmt.Errorf("max label width must not be negative, got %d", r.MaxLabelWidth)
	}

	value := file.LabelCase
	if cli.Set["label-case"] {
		value = cli.LabelCase
	}
	c, err := render.ParseCase(value)
	if err != nil {
		return err
	}
	r.LabelCase = c
	return nil
}

// loadFileFor loads the explicit config file, or the discovered one. A
// missing explicit file is an error; a missing discovered file is not.
func loadFileFor(explicit string) (*File, string, error) {
	path := explicit
	if path == "" {
		path = FindConfigFile()
	}
	if path == "" {
		return &File{}, "", nil
	}
	f, err := LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

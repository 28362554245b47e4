package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xFA25E/bratus/pkg/render"
	"github.com/xFA25E/bratus/pkg/report"
)

func TestResolve_Defaults(t *testing.T) {
	isolate(t)

	res, err := Resolve(CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, render.Palette{}, res.Palette)
	assert.Equal(t, render.FormatBar, res.Format)
	assert.Equal(t, render.CaseNone, res.LabelCase)
	assert.Zero(t, res.MaxLabelWidth)
	assert.True(t, res.Dedup)
	assert.False(t, res.Debug)
	assert.Empty(t, res.ConfigPath)
	for _, cat := range report.Categories {
		assert.Equal(t, SourceDefault, res.ColorSources[cat], cat.String())
	}
}

func TestResolve_CLIColors(t *testing.T) {
	isolate(t)

	res, err := Resolve(CliFlags{
		ColorFree:   "#6c6c6c",
		ColorUrgent: "#FF0000",
		Set:         map[string]bool{"color-free": true, "color-urgent": true},
	})
	require.NoError(t, err)

	assert.Equal(t, "#6c6c6c", res.Palette.Free.Hex())
	assert.Equal(t, "#FF0000", res.Palette.Urgent.Hex())
	assert.False(t, res.Palette.Monitor.IsSet())
	assert.Equal(t, SourceCLI, res.ColorSources[report.CategoryFree])
}

func TestResolve_InvalidColorNamesOrigin(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string) CliFlags
		want  string
	}{
		{
			name: "flag",
			setup: func(t *testing.T, _ string) CliFlags {
				return CliFlags{ColorState: "red", Set: map[string]bool{"color-state": true}}
			},
			want: "--color-state: invalid hex color: red",
		},
		{
			name: "environment",
			setup: func(t *testing.T, _ string) CliFlags {
				t.Setenv("BRATUS_COLOR_MONITOR", "#12345")
				return CliFlags{}
			},
			want: "BRATUS_COLOR_MONITOR: invalid hex color: #12345",
		},
		{
			name: "file",
			setup: func(t *testing.T, dir string) CliFlags {
				writeFile(t, filepath.Join(dir, LocalFileName), "colors:\n  occupied: \"#gggggg\"\n")
				return CliFlags{}
			},
			want: ".bratus.yaml: colors.occupied: invalid hex color: #gggggg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			_, err := Resolve(tt.setup(t, dir))

			require.Error(t, err)
			assert.ErrorIs(t, err, render.ErrInvalidColor)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestResolve_Precedence(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, LocalFileName), `colors:
  monitor: "#111111"
  free: "#222222"
  occupied: "#333333"
format: terminal
`)
	t.Setenv("BRATUS_COLOR_FREE", "#aaaaaa")
	t.Setenv("BRATUS_COLOR_OCCUPIED", "#bbbbbb")

	res, err := Resolve(CliFlags{
		ColorOccupied: "#cccccc",
		Format:        "bar",
		Set:           map[string]bool{"color-occupied": true, "format": true},
	})
	require.NoError(t, err)

	assert.Equal(t, "#111111", res.Palette.Monitor.Hex(), "file")
	assert.Equal(t, "#aaaaaa", res.Palette.Free.Hex(), "env beats file")
	assert.Equal(t, "#cccccc", res.Palette.Occupied.Hex(), "cli beats env")
	assert.Equal(t, SourceFile, res.ColorSources[report.CategoryMonitor])
	assert.Equal(t, SourceEnv, res.ColorSources[report.CategoryFree])
	assert.Equal(t, SourceCLI, res.ColorSources[report.CategoryOccupied])
	assert.Equal(t, render.FormatBar, res.Format)
	assert.Equal(t, SourceCLI, res.FormatSource)
	assert.Equal(t, LocalFileName, res.ConfigPath)
}

func TestResolve_UnsetFlagDoesNotOverride(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, LocalFileName), "colors:\n  free: \"#222222\"\n")

	// The flag default is "", but it was not given on the command line.
	res, err := Resolve(CliFlags{ColorFree: ""})
	require.NoError(t, err)

	assert.Equal(t, "#222222", res.Palette.Free.Hex())
}

func TestResolve_EmptyEnvClearsFileColor(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, LocalFileName), "colors:\n  free: \"#222222\"\n")
	t.Setenv("BRATUS_COLOR_FREE", "")

	res, err := Resolve(CliFlags{})
	require.NoError(t, err)

	assert.False(t, res.Palette.Free.IsSet())
	assert.Equal(t, SourceEnv, res.ColorSources[report.CategoryFree])
}

func TestResolve_NoColorDropsTerminalColorsOnly(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, LocalFileName), "colors:\n  free: \"#222222\"\n")
	t.Setenv(EnvNoColor, "1")
	t.Setenv("BRATUS_COLOR_STATE", "#333333")

	res, err := Resolve(CliFlags{ColorUrgent: "#ff0000", Set: map[string]bool{"color-urgent": true}})
	require.NoError(t, err)
	assert.True(t, res.NoColor)
	assert.Equal(t, SourceFile, res.ColorSources[report.CategoryFree])

	bar := res.RenderOptions(render.FormatBar).Palette
	assert.Equal(t, "#222222", bar.Free.Hex(), "bar markup is not terminal color")
	assert.Equal(t, "#333333", bar.State.Hex())
	assert.Equal(t, "#ff0000", bar.Urgent.Hex())

	term := res.RenderOptions(render.FormatTerminal).Palette
	assert.False(t, term.Free.IsSet())
	assert.False(t, term.State.IsSet())
	assert.Equal(t, "#ff0000", term.Urgent.Hex(), "explicit flags survive NO_COLOR")
}

func TestResolve_TerminalKeepsColorsWithoutNoColor(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, LocalFileName), "colors:\n  free: \"#222222\"\n")

	res, err := Resolve(CliFlags{})
	require.NoError(t, err)

	assert.False(t, res.NoColor)
	assert.Equal(t, "#222222", res.RenderOptions(render.FormatTerminal).Palette.Free.Hex())
}

func TestResolve_NoColorStillValidates(t *testing.T) {
	isolate(t)
	t.Setenv(EnvNoColor, "1")
	t.Setenv("BRATUS_COLOR_FREE", "nope")

	_, err := Resolve(CliFlags{})
	assert.ErrorIs(t, err, render.ErrInvalidColor)
}

func TestResolve_FormatFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvFormat, "terminal")

	res, err := Resolve(CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, render.FormatTerminal, res.Format)
	assert.Equal(t, SourceEnv, res.FormatSource)
}

func TestResolve_InvalidFormat(t *testing.T) {
	isolate(t)

	_, err := Resolve(CliFlags{Format: "json", Set: map[string]bool{"format": true}})
	assert.ErrorContains(t, err, `unknown format "json"`)
}

func TestResolve_LabelOptions(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, LocalFileName), "max_label_width: 8\nlabel_case: lower\ndedup: false\ndebug: true\n")

	res, err := Resolve(CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, 8, res.MaxLabelWidth)
	assert.Equal(t, render.CaseLower, res.LabelCase)
	assert.False(t, res.Dedup)
	assert.True(t, res.Debug)

	res, err = Resolve(CliFlags{
		MaxLabelWidth: 4,
		LabelCase:     "title",
		Set:           map[string]bool{"max-label-width": true, "label-case": true},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, res.MaxLabelWidth)
	assert.Equal(t, render.CaseTitle, res.LabelCase)

	opts := res.RenderOptions(render.FormatBar)
	assert.Equal(t, 4, opts.MaxLabelWidth)
	assert.Equal(t, render.CaseTitle, opts.LabelCase)
}

func TestResolve_NegativeWidth(t *testing.T) {
	isolate(t)

	_, err := Resolve(CliFlags{MaxLabelWidth: -1, Set: map[string]bool{"max-label-width": true}})
	assert.ErrorContains(t, err, "must not be negative")
}

func TestResolve_NoDedupFlag(t *testing.T) {
	isolate(t)

	res, err := Resolve(CliFlags{NoDedup: true, Set: map[string]bool{"no-dedup": true}})
	require.NoError(t, err)
	assert.False(t, res.Dedup)
}

func TestResolve_ExplicitConfigMustExist(t *testing.T) {
	dir := isolate(t)

	_, err := Resolve(CliFlags{ConfigFile: filepath.Join(dir, "missing.yaml")})
	assert.ErrorContains(t, err, "reading config file")
}

func TestResolve_MalformedFileIsFatal(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, LocalFileName), "colors: [unclosed\n")

	_, err := Resolve(CliFlags{})
	assert.ErrorContains(t, err, "parsing config file")
}

func TestColorNames(t *testing.T) {
	assert.Equal(t, "color-monitor", ColorFlag(report.CategoryMonitor))
	assert.Equal(t, "BRATUS_COLOR_URGENT", ColorEnv(report.CategoryUrgent))
}

// bratus formats bspwm status reports for lemonbar-style status bars.
//
// Usage:
//
//	bratus --color-free '#6c6c6c' --color-occupied '#ffffff' | lemonbar
//
// bratus runs `bspc subscribe` and writes one line per report it prints:
//
//	WMeDP1:Oweb:o2:f3:LT:TT:G   ->   -eDP1- -web-  2   3   T T
//
// Focused monitors and desktops are wrapped in dashes. Colors are emitted as
// %{F#rrggbb}...%{F-} markup whatever stdout is. --format terminal uses ANSI
// colors instead, and --format auto picks terminal when stdout is a TTY.
//
// Exit codes: 0 when bspc exits or on SIGINT/SIGTERM, 1 on errors, 2 on bad
// usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/xFA25E/bratus/internal/config"
	"github.com/xFA25E/bratus/internal/diag"
	"github.com/xFA25E/bratus/internal/version"
	"github.com/xFA25E/bratus/pkg/render"
	"github.com/xFA25E/bratus/pkg/report"
	"github.com/xFA25E/bratus/pkg/stream"
	"github.com/xFA25E/bratus/pkg/supervisor"
)

// eventSource is the command whose output is formatted.
var eventSource = []string{"bspc", "subscribe"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bratus", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: bratus [flags]\n\nFormats `%s` output for a status bar.\n\nFlags:\n", strings.Join(eventSource, " "))
		fs.PrintDefaults()
	}

	var cli config.CliFlags
	fs.StringVar(&cli.ColorFree, config.ColorFlag(report.CategoryFree), "", "A color for free desktop (#RRGGBB)")
	fs.StringVar(&cli.ColorMonitor, config.ColorFlag(report.CategoryMonitor), "", "A color for monitor (#RRGGBB)")
	fs.StringVar(&cli.ColorOccupied, config.ColorFlag(report.CategoryOccupied), "", "A color for occupied desktop (#RRGGBB)")
	fs.StringVar(&cli.ColorUrgent, config.ColorFlag(report.CategoryUrgent), "", "A color for urgent desktop (#RRGGBB)")
	fs.StringVar(&cli.ColorState, config.ColorFlag(report.CategoryState), "", "A color for window state (#RRGGBB)")
	fs.StringVar(&cli.ConfigFile, "config", "", "config file (default .bratus.yaml, then $XDG_CONFIG_HOME/bratus/config.yaml)")
	fs.StringVar(&cli.Format, "format", "bar", "Output format: bar, terminal, auto (terminal when stdout is a TTY)")
	fs.IntVar(&cli.MaxLabelWidth, "max-label-width", 0, "Truncate monitor and desktop names to this many cells (0 = no limit)")
	fs.StringVar(&cli.LabelCase, "label-case", "none", "Monitor and desktop name case: none, upper, lower, title")
	fs.BoolVar(&cli.NoDedup, "no-dedup", false, "Render repeated identical reports")
	fs.BoolVar(&cli.Debug, "debug", false, "Print debug diagnostics to stderr")
	showVersion := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "bratus: unexpected argument %q\n", fs.Arg(0))
		return 2
	}
	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}
	cli.Set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { cli.Set[f.Name] = true })

	log := diag.New(stderr, "bratus", cli.Debug || diag.DebugFromEnv())

	cfg, err := config.Resolve(cli)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	log.SetDebug(cfg.Debug)
	logConfig(log, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), supervisor.InterruptSignals()...)
	defer stop()

	if err := serve(ctx, cfg, stdout, log); err != nil {
		log.Errorf("%v", err)
		return 1
	}
	return 0
}

// serve runs the event source and formats its output until it ends or ctx is
// cancelled by a signal. The child is always reaped before serve returns.
func serve(ctx context.Context, cfg *config.Resolved, stdout io.Writer, log *diag.Logger) error {
	proc, err := supervisor.Start(ctx, supervisor.Config{
		Name: eventSource[0],
		Args: eventSource[1:],
		Log:  log,
	})
	if err != nil {
		return err
	}
	defer func() { _ = proc.Terminate() }() // failures are logged, not fatal

	format := cfg.Format.Resolve(stdout)
	log.Debugf("rendering as %s", format)

	var stats stream.Stats
	err = stream.Run(ctx, proc.Lines(), stdout, render.New(format, stdout, cfg.RenderOptions(format)), stream.Options{
		Dedup: cfg.Dedup,
		Stats: &stats,
	})
	log.Debugf("lines=%d rendered=%d skipped=%d", stats.Lines, stats.Rendered, stats.Skipped)

	if ctx.Err() != nil {
		// Interrupted: the read error, if any, comes from the pipe being
		// closed under the loop.
		log.Debugf("interrupted, exiting")
		return nil
	}
	return err
}

func logConfig(log *diag.Logger, cfg *config.Resolved) {
	if !log.DebugEnabled() {
		return
	}
	if cfg.ConfigPath != "" {
		log.Debugf("config file %s", cfg.ConfigPath)
	}
	for _, cat := range report.Categories {
		log.Debugf("color %s=%s (%s)", cat, cfg.Palette.For(cat), cfg.ColorSources[cat])
	}
	log.Debugf("format=%s (%s) dedup=%t max-label-width=%d label-case=%s",
		cfg.Format, cfg.FormatSource, cfg.Dedup, cfg.MaxLabelWidth, cfg.LabelCase)
}

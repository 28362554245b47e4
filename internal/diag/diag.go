// Package diag writes one-line diagnostics to stderr.
//
// Every line starts with the program name, the way the fo and go tools do
// ("bratus: reading reports: ..."). Warnings and debug lines carry a level
// tag. Debug output is off unless enabled by --debug or BRATUS_DEBUG. When the
// writer is a terminal the tag is colored; otherwise output is plain text.
package diag

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// DebugEnv enables debug output when set to any non-empty value.
const DebugEnv = "BRATUS_DEBUG"

// Logger writes prefixed diagnostics. It is safe for concurrent use; the
// supervisor logs from the signal path while the main loop may be logging.
type Logger struct {
	mu    sync.Mutex
	w     io.Writer
	name  string
	debug bool

	errStyle   lipgloss.Style
	warnStyle  lipgloss.Style
	debugStyle lipgloss.Style
}

// New creates a logger for prog writing to w.
func New(w io.Writer, prog string, debug bool) *Logger {
	r := lipgloss.NewRenderer(w)
	return &Logger{
		w:          w,
		name:       prog + ":",
		debug:      debug,
		errStyle:   r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		warnStyle:  r.NewStyle().Foreground(lipgloss.Color("214")),
		debugStyle: r.NewStyle().Foreground(lipgloss.Color("242")),
	}
}

// DebugFromEnv reports whether DebugEnv is set.
func DebugFromEnv() bool {
	return os.Getenv(DebugEnv) != ""
}

// SetDebug toggles debug output.
func (l *Logger) SetDebug(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = on
}

// DebugEnabled reports whether debug output is on.
func (l *Logger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

// Errorf reports a fatal error.
func (l *Logger) Errorf(format string, args ...any) {
	l.write(l.errStyle.Render(l.name), "", format, args...)
}

// Warnf reports a problem that does not stop the program.
func (l *Logger) Warnf(format string, args ...any) {
	l.write(l.name, l.warnStyle.Render("warning:"), format, args...)
}

// Debugf reports internal state when debug output is on.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.write(l.name, l.debugStyle.Render("debug:"), format, args...)
}

func (l *Logger) write(prefix, tag, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	// Diagnostics are single lines.
	msg = strings.ReplaceAll(strings.TrimRight(msg, "\n"), "\n", "; ")

	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(" ")
	if tag != "" {
		sb.WriteString(tag)
		sb.WriteString(" ")
	}
	sb.WriteString(msg)
	sb.WriteString("\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, sb.String())
}

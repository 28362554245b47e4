// Package supervisor runs the report source as a child process and makes sure
// it is signalled and reaped exactly once, whether the stream ends or the
// program is interrupted.
package supervisor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"
)

var (
	// ErrSpawn wraps failures to start the child.
	ErrSpawn = errors.New("starting event source")
	// ErrNoStdout is returned when the child's stdout cannot be piped.
	ErrNoStdout = errors.New("no stdout of process")
)

// State is the lifecycle stage of a supervised process.
type State int32

const (
	StateSpawned State = iota
	StateRunning
	StateTerminating
	StateReaped
	StateDone
)

func (s State) String() string {
	switch s {
	case StateSpawned:
		return "spawned"
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	case StateReaped:
		return "reaped"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Logger receives cleanup diagnostics. Cleanup failures are reported here and
// never turned into program errors.
type Logger interface {
	Warnf(format string, args ...any)
	Debugf(format string, args ...any)
}

// Config describes the child to run.
type Config struct {
	Name string
	Args []string
	In   io.Reader // child stdin, defaults to os.Stdin
	Err  io.Writer // child stderr, defaults to os.Stderr
	Log  Logger    // optional
}

// Process is a running child. It exclusively owns the OS handle.
type Process struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	lines  *bufio.Reader
	log    Logger

	state   atomic.Int32
	once    sync.Once
	termErr error
	done    chan struct{}
	stop    func() bool
}

// Start spawns the child in its own process group with stdout piped. When ctx
// is cancelled the child is terminated through the same guarded path as
// Terminate.
func Start(ctx context.Context, cfg Config) (*Process, error) {
	//nolint:gosec // launching the configured event source is the purpose
	cmd := exec.Command(cfg.Name, cfg.Args...)
	// A nil Stdin would be /dev/null; the child inherits ours instead.
	cmd.Stdin = cfg.In
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stderr = cfg.Err
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	setProcessGroup(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoStdout, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrSpawn, strings.Join(cmd.Args, " "), err)
	}

	p := &Process{
		cmd:    cmd,
		stdout: stdout,
		lines:  bufio.NewReader(stdout),
		log:    cfg.Log,
		done:   make(chan struct{}),
	}
	p.state.Store(int32(StateSpawned))
	p.debugf("started %s (pid %d)", cfg.Name, cmd.Process.Pid)

	p.stop = context.AfterFunc(ctx, func() {
		p.debugf("context done, terminating pid %d", cmd.Process.Pid)
		_ = p.Terminate() // logged inside
	})
	return p, nil
}

// Lines returns the line-framed stdout of the child.
func (p *Process) Lines() *bufio.Reader {
	p.state.CompareAndSwap(int32(StateSpawned), int32(StateRunning))
	return p.lines
}

// Pid returns the child's process id.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// State returns the current lifecycle stage.
func (p *Process) State() State {
	return State(p.state.Load())
}

// Done is closed once the child has been terminated and reaped.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// ExitCode returns the child's exit code once reaped, or -1.
func (p *Process) ExitCode() int {
	if p.State() < StateReaped || p.cmd.ProcessState == nil {
		return -1
	}
	return p.cmd.ProcessState.ExitCode()
}

// Terminate sends SIGTERM to the child's process group and waits for it.
// Only the first call does the work; concurrent and later calls block until
// it is finished and return the same result. The returned error is a cleanup
// failure and has already been logged.
func (p *Process) Terminate() error {
	p.once.Do(func() {
		defer close(p.done)
		if p.stop != nil {
			p.stop()
		}
		p.state.Store(int32(StateTerminating))

		sigErr := terminateGroup(p.cmd)
		// Wait must not race a reader of the pipe. On the signal path the
		// stream loop may still be blocked in Read, so the read side is
		// closed first: closing an *os.File unblocks a pending Read with
		// os.ErrClosed. Wait closes it again and ignores that error.
		_ = p.stdout.Close()
		waitErr := p.cmd.Wait()
		p.state.Store(int32(StateReaped))

		p.termErr = cleanupError(sigErr, waitErr)
		if p.termErr != nil && p.log != nil {
			p.log.Warnf("cleanup of pid %d: %v", p.cmd.Process.Pid, p.termErr)
		}
		p.debugf("reaped pid %d: %v", p.cmd.Process.Pid, p.cmd.ProcessState)
		p.state.Store(int32(StateDone))
	})
	return p.termErr
}

// cleanupError merges signal and wait failures. A non-zero exit or death by
// signal is how a terminated child is expected to end, so exec.ExitError is
// not a failure here.
func cleanupError(sigErr, waitErr error) error {
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		waitErr = nil
	}
	var errs []error
	if sigErr != nil {
		errs = append(errs, fmt.Errorf("signal: %w", sigErr))
	}
	if waitErr != nil {
		errs = append(errs, fmt.Errorf("wait: %w", waitErr))
	}
	return errors.Join(errs...)
}

func (p *Process) debugf(format string, args ...any) {
	if p.log != nil {
		p.log.Debugf(format, args...)
	}
}

//go:build unix

package supervisor

import (
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// setProcessGroup configures the command to run in its own process group.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// terminateGroup sends SIGTERM to the child's process group, falling back to
// the child alone when the group cannot be resolved.
func terminateGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	pgid, err := unix.Getpgid(cmd.Process.Pid)
	if err != nil {
		return cmd.Process.Signal(unix.SIGTERM)
	}
	return unix.Kill(-pgid, unix.SIGTERM)
}

// InterruptSignals returns the signals that should stop the program.
func InterruptSignals() []os.Signal {
	return []os.Signal{unix.SIGINT, unix.SIGTERM}
}

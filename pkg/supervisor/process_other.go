//go:build !unix

package supervisor

import (
	"os"
	"os/exec"
)

// setProcessGroup is a no-op on non-Unix platforms.
func setProcessGroup(cmd *exec.Cmd) {}

// terminateGroup kills the child directly; there is no SIGTERM here.
func terminateGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}

// InterruptSignals returns the signals that should stop the program.
func InterruptSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}

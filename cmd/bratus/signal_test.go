//go:build unix

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// syncBuffer is a bytes.Buffer safe for one writer and one reader goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRun_SignalTerminatesChildAndExitsZero(t *testing.T) {
	dir := useSource(t, `echo $$ > child.pid; echo Wf1; exec sleep 30`)

	var stdout, stderr syncBuffer
	done := make(chan int, 1)
	go func() { done <- run(nil, &stdout, &stderr) }()

	// Output only appears after the signal handler is installed.
	require.Eventually(t, func() bool { return stdout.String() != "" }, 5*time.Second, 10*time.Millisecond)
	pidData, err := os.ReadFile(filepath.Join(dir, "child.pid"))
	require.NoError(t, err)
	pid, err := strconv.Atoi(strings.TrimSpace(string(pidData)))
	require.NoError(t, err)

	require.NoError(t, unix.Kill(os.Getpid(), unix.SIGTERM))

	select {
	case code := <-done:
		assert.Equal(t, 0, code, "stderr: %s", stderr.String())
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after SIGTERM")
	}

	assert.Equal(t, " 1  \n", stdout.String())
	assert.ErrorIs(t, unix.Kill(pid, 0), unix.ESRCH, "child must be reaped")
}

package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_UsesLinkerValues(t *testing.T) {
	saved := [3]string{Version, CommitHash, BuildDate}
	t.Cleanup(func() { Version, CommitHash, BuildDate = saved[0], saved[1], saved[2] })

	Version, CommitHash, BuildDate = "v1.2.0", "0123456789abcdef", "2026-01-02"

	assert.Equal(t, "bratus v1.2.0 (0123456789ab, 2026-01-02)", String())
}

func TestString_Defaults(t *testing.T) {
	assert.True(t, strings.HasPrefix(String(), "bratus "))
}

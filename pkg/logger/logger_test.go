package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitWritesRotatedFile(t *testing.T) {
	t.Cleanup(func() { sugar = zap.NewNop().Sugar() })

	path := filepath.Join(t.TempDir(), "service.log")
	Init("production", FileOptions{Path: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})

	Info("artifacts loaded", "clusters", 5)
	Debug("dropped at info level")
	Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"artifacts loaded"`)
	assert.Contains(t, string(raw), `"clusters":5`)
	assert.NotContains(t, string(raw), "dropped at info level")
}

func TestCallsBeforeInitAreNoops(t *testing.T) {
	sugar = zap.NewNop().Sugar()
	assert.NotPanics(t, func() {
		Info("ignored")
		Warn("ignored", "k", "v")
		Error("ignored")
		Sync()
	})
}

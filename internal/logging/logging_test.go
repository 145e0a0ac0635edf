package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "gocomplete", log.InfoLevel)
	logger.Debug("hidden")
	logger.Info("lookup done", "matches", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "gocomplete")
	assert.Contains(t, out, "matches=3")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, closer, err := OpenFile(path, "", log.DebugLevel)
	require.NoError(t, err)
	logger.Error("candidate lookup failed", "err", "boom")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "candidate lookup failed")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("error", true))
	assert.Equal(t, log.InfoLevel, ParseLevel("", false))
	assert.Equal(t, log.WarnLevel, ParseLevel("warn", false))
	assert.Equal(t, log.InfoLevel, ParseLevel("loud", false))
}

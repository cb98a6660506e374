package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_WritesToFileAndOutput(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "studentdesk.log")

	Configure(Config{
		Level:  DebugLevel,
		Output: &buf,
		File:   &FileConfig{Path: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1},
	})
	t.Cleanup(func() {
		_ = Close()
		Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stdout})
	})

	Info().Str("resource", "r1").Msg("stored")
	require.NoError(t, Close())

	assert.Contains(t, buf.String(), `"resource":"r1"`)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"message":"stored"`)
}

func TestConfigure_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "chatty", Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stdout}) })

	Debug().Msg("hidden")
	Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

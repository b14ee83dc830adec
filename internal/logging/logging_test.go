package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/addressbook/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "ab.log")
	logger, closer, err := New(config.LogConfig{Path: path, Level: "DEBUG"})
	require.NoError(t, err)
	logger.Debug("hello", "file", "a.json")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")
	require.Contains(t, string(data), "file=a.json")
}

func TestNewRejectsBadLevel(t *testing.T) {
	t.Parallel()

	_, _, err := New(config.LogConfig{Level: "loud"})
	require.Error(t, err)
}

func TestNewWithoutPathDiscards(t *testing.T) {
	t.Parallel()

	logger, closer, err := New(config.LogConfig{})
	require.NoError(t, err)
	logger.Info("nowhere")
	require.NoError(t, closer.Close())
}

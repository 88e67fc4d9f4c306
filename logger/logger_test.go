package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cfg "github.com/automoto/pong/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRejectsUnknownLevel(t *testing.T) {
	_, err := Init(cfg.LogConfig{Level: "chatty"})
	require.Error(t, err)
}

func TestInitStderr(t *testing.T) {
	closer, err := Init(cfg.LogConfig{Level: "WARN"})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)
}

func TestInitFileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.log")
	closer, err := Init(cfg.LogConfig{Level: "info", File: path, MaxSizeMB: 1})
	require.NoError(t, err)
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
	})

	logrus.WithField("side", "left").Info("point scored")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "point scored", entry["msg"])
	assert.Equal(t, "left", entry["side"])
	assert.Equal(t, "info", entry["level"])
}

func TestForTerminal(t *testing.T) {
	cases := []struct {
		name      string
		in        cfg.LogConfig
		wantFile  string
		wantLevel string
	}{
		{"quiet default", cfg.LogConfig{Level: "info"}, cfg.TerminalLogFile, "warning"},
		{"debug capped", cfg.LogConfig{Level: "debug"}, cfg.TerminalLogFile, "warning"},
		{"error kept", cfg.LogConfig{Level: "error"}, cfg.TerminalLogFile, "error"},
		{"explicit file untouched", cfg.LogConfig{Level: "debug", File: "game.log"}, "game.log", "debug"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ForTerminal(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.wantFile, got.File)
			assert.Equal(t, tc.wantLevel, got.Level)
		})
	}

	_, err := ForTerminal(cfg.LogConfig{Level: "chatty"})
	assert.Error(t, err)
}

func TestTerminalWarningsReachFile(t *testing.T) {
	c, err := ForTerminal(cfg.LogConfig{Level: "info", MaxSizeMB: 1})
	require.NoError(t, err)
	c.File = filepath.Join(t.TempDir(), filepath.Base(c.File))

	closer, err := Init(c)
	require.NoError(t, err)
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	})

	logrus.Info("point scored")
	logrus.Warn("frame not drawn")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(c.File)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "point scored")
	assert.Contains(t, string(data), "frame not drawn")
}

// Package logger configures the process-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	cfg "github.com/automoto/pong/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ForTerminal adjusts c for the terminal host. Without a log file, entries
// at warn level and above go to cfg.TerminalLogFile and nothing reaches stderr.
func ForTerminal(c cfg.LogConfig) (cfg.LogConfig, error) {
	if c.File != "" {
		return c, nil
	}
	level, err := logrus.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return c, fmt.Errorf("log level: %w", err)
	}
	c.File = cfg.TerminalLogFile
	if level > logrus.WarnLevel {
		c.Level = logrus.WarnLevel.String()
	}
	return c, nil
}

// Init sets the log level and output. With c.File set, entries are written
// as JSON to a size-rotated file; otherwise they go to stderr as text.
// Close the returned io.Closer when the program exits.
func Init(c cfg.LogConfig) (io.Closer, error) {
	level, err := logrus.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logrus.SetLevel(level)

	if c.File == "" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logrus.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}

	rotator := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays,
		Compress:   c.Compress,
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(rotator)
	return rotator, nil
}

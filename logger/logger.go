// Package logger wraps logrus with the configuration and field helpers the
// binaries share. Library packages stay log-free; logging happens at the
// binary and bridge layer.
package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"ledchain-go/config"
)

// Fields are a representation of formatted log fields.
type Fields map[string]interface{}

// Log is a configured logrus entry.
type Log struct {
	*logrus.Entry
}

// New builds a logger from configuration. The level string follows logrus
// ("debug", "info", "warn", ...).
func New(cfg config.LogConf) (*Log, error) {
	log := logrus.New()

	log.SetOutput(os.Stdout)
	log.Formatter = &logrus.TextFormatter{
		TimestampFormat:  "2006-01-02 15:04:05.0000",
		FullTimestamp:    true,
		QuoteEmptyFields: true,
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger: bad level %q: %w", cfg.Level, err)
	}
	log.SetLevel(level)
	// stdout only, no need for the write mutex
	log.SetNoLock()

	return &Log{Entry: logrus.NewEntry(log)}, nil
}

// With adds the fields to the formatted log entry.
func (l *Log) With(fields Fields) *Log {
	return &Log{Entry: l.WithFields(logrus.Fields(fields))}
}

// GetLevel returns the configured level as a string.
func (l *Log) GetLevel() string {
	return l.Logger.Level.String()
}

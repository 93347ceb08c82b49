package logger_test

import (
	"strings"
	"testing"

	"github.com/Greg8128/Stim/logger"
	"github.com/stretchr/testify/assert"
)

func TestStandardLoggerRespectsVerbosity(t *testing.T) {
	var buf strings.Builder
	log := logger.NewStandardLogger(&buf)

	log.Debugf("too verbose: %d", 1)
	assert.Empty(t, buf.String())

	log.Errorf("shown: %d", 2)
	assert.Contains(t, buf.String(), "ERROR: ")
	assert.Contains(t, buf.String(), "shown: 2")
}

func TestVerboseLoggerShowsDebug(t *testing.T) {
	var buf strings.Builder
	log := logger.NewVerboseLogger(&buf)

	log.Debugf("now visible")
	assert.Contains(t, buf.String(), "DEBUG: ")
	assert.Contains(t, buf.String(), "now visible")
}

func TestNopLoggerWritesNothing(t *testing.T) {
	// NopLogger can't write anywhere observable, so this just checks it
	// doesn't panic and supports the full interface.
	logger.NopLogger.Infof("anything")
	logger.NopLogger.WithPrefix("x").Errorf("anything")
}

func TestLeveledLoggerHonorsRuntimeVerbosity(t *testing.T) {
	var buf strings.Builder
	log := logger.NewLeveledLogger(&buf, logger.LevelWarn)

	log.Infof("too verbose: %d", 1)
	assert.Empty(t, buf.String())

	log.Warnf("shown: %d", 2)
	assert.Contains(t, buf.String(), "WARN:  ")
}

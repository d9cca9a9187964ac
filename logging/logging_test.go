package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger(logrus.DebugLevel)
	assert.NotNil(t, logger)

	// Must not panic with or without fields
	logger.Debug("debug message")
	logger.Info("info message", Fields{"key": "value"})
	logger.Warn("warn message", Fields{"a": 1}, Fields{"b": 2})
	logger.Error(errors.New("boom"), "error message", Fields{"key": "value"})
	logger.Error(nil, "error without cause")
}

func TestWithFields(t *testing.T) {
	logger := NewLogger(logrus.InfoLevel).WithFields(Fields{"component": "test"})
	assert.NotNil(t, logger)
	logger.Info("scoped message", Fields{"extra": true})
}

func TestGlobalLogger(t *testing.T) {
	original := GetGlobalLogger()
	defer SetGlobalLogger(original)

	replacement := NewLogger(logrus.ErrorLevel)
	SetGlobalLogger(replacement)
	assert.Equal(t, replacement, GetGlobalLogger())

	// Package-level helpers route through the global logger
	Debug("debug")
	Info("info")
	Warn("warn")
	Error(nil, "error")
}

func TestMergeFields(t *testing.T) {
	merged := mergeFields([]Fields{
		{"a": 1, "b": 2},
		{"b": 3, "c": 4},
	})

	assert.Equal(t, logrus.Fields{"a": 1, "b": 3, "c": 4}, merged)
}

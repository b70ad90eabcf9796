// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logger configures the process-wide zap logger used by propctl.
package logger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklok/actionfiles/env"
)

const (
	// UnstructuredLogsVar selects console output when true or unset, and
	// JSON output when false.
	UnstructuredLogsVar = "UNSTRUCTURED_LOGS"

	// RunnerDebugVar is set to 1 by the CI runner when step debug logging
	// is enabled.
	RunnerDebugVar = "RUNNER_DEBUG"
)

// Debugf logs a message at debug level using the singleton logger.
func Debugf(msg string, args ...any) {
	zap.S().Debugf(msg, args...)
}

// Debugw logs a message at debug level using the singleton logger with additional key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Infof logs a message at info level using the singleton logger.
func Infof(msg string, args ...any) {
	zap.S().Infof(msg, args...)
}

// Infow logs a message at info level using the singleton logger with additional key-value pairs.
func Infow(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warnf logs a message at warning level using the singleton logger.
func Warnf(msg string, args ...any) {
	zap.S().Warnf(msg, args...)
}

// Warnw logs a message at warning level using the singleton logger with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Errorf logs a message at error level using the singleton logger.
func Errorf(msg string, args ...any) {
	zap.S().Errorf(msg, args...)
}

// Errorw logs a message at error level using the singleton logger with additional key-value pairs.
func Errorw(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}

// NewLogr returns a logr.Logger backed by the singleton zap logger.
// V(1) maps to zap's debug level.
func NewLogr() logr.Logger {
	return zapr.NewLogger(zap.L())
}

// DebugProvider reports whether debug logging is enabled.
type DebugProvider interface {
	IsDebug() bool
}

// RunnerDebug enables debug logging when RUNNER_DEBUG is 1.
type RunnerDebug struct {
	Env env.Reader
}

// IsDebug implements DebugProvider.
func (d *RunnerDebug) IsDebug() bool {
	return strings.TrimSpace(d.Env.Getenv(RunnerDebugVar)) == "1"
}

// StaticDebug is a DebugProvider with a fixed answer, for a --debug flag.
type StaticDebug bool

// IsDebug implements DebugProvider.
func (d StaticDebug) IsDebug() bool {
	return bool(d)
}

// AnyDebug is enabled when any of its providers is.
type AnyDebug []DebugProvider

// IsDebug implements DebugProvider.
func (a AnyDebug) IsDebug() bool {
	for _, p := range a {
		if p.IsDebug() {
			return true
		}
	}
	return false
}

// Initialize configures the singleton logger from the environment, with
// debug logging following RUNNER_DEBUG.
func Initialize(envReader env.Reader) error {
	return InitializeWithOptions(envReader, &RunnerDebug{Env: envReader})
}

// InitializeWithOptions configures the singleton logger with a custom debug
// provider. Output always goes to stderr since stdout carries command
// results.
func InitializeWithOptions(envReader env.Reader, debugProvider DebugProvider) error {
	var config zap.Config
	if unstructuredLogsWithEnv(envReader) {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.DisableStacktrace = true
		config.DisableCaller = true
	} else {
		config = zap.NewProductionConfig()
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	if debugProvider.IsDebug() {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	zap.ReplaceGlobals(l)
	return nil
}

func unstructuredLogsWithEnv(envReader env.Reader) bool {
	unstructuredLogs, err := strconv.ParseBool(envReader.Getenv(UnstructuredLogsVar))
	if err != nil {
		// unset or unparsable
		return true
	}
	return unstructuredLogs
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logging builds the logger of a runner's diagnostics.  The
// report of a run is no diagnostic and isn't logged.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing console encoded entries to given writer.
// Only warnings and errors are logged unless verbose is set which
// enables all levels down to debug.
func New(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	return zap.New(NewCore(w, level)).Named("audit")
}

// NewCore returns the console core New builds its logger with.
func NewCore(w io.Writer, level zapcore.LevelEnabler) zapcore.Core {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), level)
}

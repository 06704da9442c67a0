// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log is a small context-aware logging facade. Messages are
// formatted printf-style, the log tags attached to the context through
// github.com/cockroachdb/logtags become structured fields, and the result is
// written to a zap logger. Until SetLogger is called every call is a no-op.
package log

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger    atomic.Pointer[zap.Logger]
	verbosity atomic.Int32
)

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger installs l as the destination of all log calls. A nil logger
// silences logging. The returned function restores the previous logger.
func SetLogger(l *zap.Logger) (restore func()) {
	if l == nil {
		l = zap.NewNop()
	}
	prev := logger.Swap(l)
	return func() { logger.Store(prev) }
}

// Logger returns the currently installed zap logger.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetVerbosity sets the level up to which V returns true and VEventf emits.
// The returned function restores the previous verbosity.
func SetVerbosity(level int32) (restore func()) {
	prev := verbosity.Swap(level)
	return func() { verbosity.Store(prev) }
}

// V returns true if the configured verbosity is at least level.
func V(level int32) bool {
	return verbosity.Load() >= level
}

// Infof logs to the INFO level.
func Infof(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, zapcore.InfoLevel, format, args)
}

// Warningf logs to the WARNING level.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, zapcore.WarnLevel, format, args)
}

// Errorf logs to the ERROR level.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, zapcore.ErrorLevel, format, args)
}

// VEventf logs at the DEBUG level if the verbosity is at least level.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if !V(level) {
		return
	}
	addStructured(ctx, zapcore.DebugLevel, format, args)
}

// addStructured writes a structured log entry to the installed logger.
func addStructured(ctx context.Context, lvl zapcore.Level, format string, args []interface{}) {
	if ctx == nil {
		panic("nil context")
	}
	l := logger.Load()
	if !l.Core().Enabled(lvl) {
		return
	}
	var msg string
	if len(format) == 0 {
		msg = fmt.Sprint(args...)
	} else {
		msg = fmt.Sprintf(format, args...)
	}
	if ce := l.Check(lvl, msg); ce != nil {
		ce.Write(tagFields(ctx)...)
	}
}

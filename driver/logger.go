// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package driver

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops all records; Enabled returns false so disabled
// logging costs nothing.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := slog.New(discardHandler{})
	loggerPtr.Store(l)
}

// SetLogger configures the logger shared by the driver registry and all
// platform bindings. peck.SetLogger propagates here; call this directly
// only when using the driver packages standalone. Pass nil to silence.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	loggerPtr.Store(l)
}

// logger returns the current driver logger.
func logger() *slog.Logger {
	return loggerPtr.Load()
}

// Log exposes the current driver logger to platform bindings in
// subpackages.
func Log() *slog.Logger {
	return logger()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the topologic server and client.
//
// Server components log JSON to stdout; the client logs console lines to
// stderr so stdout carries only command output. Request-scoped loggers are
// attached by the HTTP middleware and recovered with FromRequest or
// FromContext.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

var globalsOnce sync.Once

// setGlobals configures the process-wide zerolog settings once: debug level
// and a "func" caller field holding the function name instead of file:line.
func setGlobals() {
	globalsOnce.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})
}

// NewLogger returns a JSON logger on stdout tagged with role, a timestamp
// and the caller function.
func NewLogger(role string) *Logger {
	setGlobals()

	return &Logger{
		zerolog.New(os.Stdout).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewClientLogger returns a console logger on stderr that drops entries
// below Info.
func NewClientLogger(role string) *Logger {
	return &Logger{
		zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
			Level(zerolog.InfoLevel).
			With().
			Str("role", role).
			Timestamp().
			Logger(),
	}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithModel returns a child logger tagged with the model table name.
func (l *Logger) WithModel(table string) *Logger {
	return &Logger{l.With().Str("table", table).Logger()}
}

// FromRequest returns the logger attached to the request context. Without
// one, zerolog's default logger is returned, never nil.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext is FromRequest for a bare context.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

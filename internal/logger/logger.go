// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the vault client and server.
//
// Every entry is JSON with a "role" field naming the binary, a timestamp and
// the calling function under "func". Request and operation scoped loggers
// travel in a context and are read back with [FromContext] and
// [FromRequest].
//
// Key material (master password, local, remote and offline keys) must never
// be passed to a logger; log usernames, server URLs and sizes instead.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ClientLogFile is the file the client logs to, next to its executable.
const ClientLogFile = "vaultage.log"

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the server logger: debug level, JSON on os.Stdout.
func NewLogger(role string) *Logger {
	configureGlobals(zerolog.DebugLevel)
	return newWithWriter(os.Stdout, role)
}

// NewClientLogger builds the client logger. The client prints command output
// on stdout, so entries go to [ClientLogFile] and only fall back to
// os.Stdout when that file cannot be opened.
//
// An empty or unknown level means info.
func NewClientLogger(role, level string) *Logger {
	configureGlobals(parseLevel(level))

	var out io.Writer = os.Stdout
	if f, err := openClientLogFile(); err == nil {
		out = f
	}
	return newWithWriter(out, role)
}

func openClientLogFile() (*os.File, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(filepath.Dir(execPath), ClientLogFile)
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
}

// configureGlobals sets the global level and renders the caller as the
// function name under "func".
func configureGlobals(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

func newWithWriter(w io.Writer, role string) *Logger {
	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Nop returns a logger that writes nothing. Tests and optional
// collaborators use it as the default.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns an independent copy of l. Fields added to the copy
// (for example with UpdateContext) do not leak into l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context by the
// HTTP middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// Without one it returns zerolog's default context logger, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromContextOr returns the logger attached to ctx, or fallback when ctx
// carries none. Client code paths never attach one, so repositories pass
// their own logger as fallback.
func FromContextOr(ctx context.Context, fallback *Logger) *Logger {
	l := log.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled && fallback != nil {
		return fallback
	}
	return &Logger{*l}
}

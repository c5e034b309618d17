// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

// Package util holds shared helpers for the command-line tools.
package util

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

// InitLogger initializes the global logger with appropriate log level
// Set LYRA_DEBUG=1 environment variable to enable debug logging
func InitLogger() {
	level := slog.LevelInfo // Default: only show Info, Warn, Error

	if os.Getenv("LYRA_DEBUG") != "" {
		level = slog.LevelDebug
	}

	// Text handler to stderr; key files and key listings go to stdout
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
}

// Debug logs a debug message (only shown when LYRA_DEBUG is set)
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

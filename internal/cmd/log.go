// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"io"
	"log"
	"log/slog"
)

// debugEnvVar enables debug logging. It does not change the positional
// invocation contract.
const debugEnvVar = "LXSTART_DEBUG"

func setupLogging(writer io.Writer, debug bool) {
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("[lxstart] ")

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(
		writer,
		&slog.HandlerOptions{
			Level: level,
		},
	)))
}

func debugEnabled(lookup func(string) (string, bool)) bool {
	value, ok := lookup(debugEnvVar)
	return ok && value != ""
}

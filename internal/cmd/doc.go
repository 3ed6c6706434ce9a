// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

// Package cmd provides the CLI entry point for lxstart. It extracts
// the positional arguments, sanitizes the process environment, drives
// the container start and translates the init process's termination
// into the supervisor's own exit behavior.
package cmd

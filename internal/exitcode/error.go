// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

// Package exitcode carries process exit codes as error values.
package exitcode

import (
	"errors"
	"fmt"
)

// Error is a container exit code traveling an ordinary error path.
//
// It is not a fault of the supervisor. It exists so the init process's
// non-zero exit code can be returned through the regular error chain and
// become the supervisor's own exit code without a diagnostic being
// printed for it.
type Error int

func (e Error) Error() string {
	return fmt.Sprintf("container init exited with code %d", int(e))
}

func (Error) Is(other error) bool {
	_, ok := other.(Error)
	return ok
}

// Code returns the exit code as basic int type.
func (e Error) Code() int {
	return int(e)
}

// From extracts the exit code from the given error.
//
// The second return value reports whether the error chain contained an
// [Error] at all.
func From(err error) (int, bool) {
	var exitErr Error
	if errors.As(err, &exitErr) {
		return exitErr.Code(), true
	}

	return 0, false
}

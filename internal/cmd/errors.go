// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
)

// UsageError reports an invocation with the wrong argument count.
type UsageError struct {
	argc int
}

// Error implements the [error] interface.
func (e *UsageError) Error() string {
	return fmt.Sprintf(
		"invalid argument count %d, usage: "+
			"lxstart <container_name> <container_path> <config_file_path>",
		e.argc,
	)
}

// Is implements the [errors.Is] interface.
func (*UsageError) Is(other error) bool {
	_, ok := other.(*UsageError)
	return ok
}

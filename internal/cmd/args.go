// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

// invocation is the positional argument triple of a supervisor run.
type invocation struct {
	// name is the container's name.
	name string

	// path is the container storage path.
	path string

	// configPath is the container configuration file to load.
	configPath string
}

// parseArgs extracts the three positional arguments. The contract is
// positional only, no flags:
//
//	lxstart <container_name> <container_path> <config_file_path>
//
// args excludes the program name.
func parseArgs(args []string) (invocation, error) {
	if len(args) != 3 {
		return invocation{}, &UsageError{argc: len(args)}
	}

	return invocation{
		name:       args[0],
		path:       args[1],
		configPath: args[2],
	}, nil
}

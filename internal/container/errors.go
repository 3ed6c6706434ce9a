// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"errors"
	"fmt"
)

var (
	// ErrNameEmpty is returned if a container name is empty.
	ErrNameEmpty = errors.New("container name must not be empty")

	// ErrNotDirectory is returned if a container storage path is not a
	// directory.
	ErrNotDirectory = errors.New("container path is not a directory")

	// ErrNotLoaded is returned if an operation requires a loaded
	// configuration.
	ErrNotLoaded = errors.New("no configuration loaded")

	// ErrWouldDaemonize is returned by [Container.Start] while the
	// Daemonize flag is set. Daemonizing would sever the stdio
	// connection between supervisor and init process.
	ErrWouldDaemonize = errors.New("daemonize is set, refusing foreground start")

	// ErrInitShimUnsupported is returned if a start requests the
	// init-wrapping shim. The configured command must become PID 1 of
	// the container directly.
	ErrInitShimUnsupported = errors.New("init shim is not supported")

	// ErrNoInitCmd is returned if the loaded configuration does not
	// define lxc.init.cmd.
	ErrNoInitCmd = errors.New("config does not define lxc.init.cmd")

	// ErrReleased is returned if a handle is used after Release.
	ErrReleased = errors.New("container handle already released")

	// ErrMalformedLine is returned for a config line without a key
	// value separator.
	ErrMalformedLine = errors.New("malformed config line")

	// ErrUnknownKey is returned for a config key outside the lxc
	// namespace.
	ErrUnknownKey = errors.New("not an lxc config key")
)

// CreateError is returned if a container handle cannot be allocated.
type CreateError struct {
	Name string
	Err  error
}

// Error implements the [error] interface.
func (e *CreateError) Error() string {
	return fmt.Sprintf("create container %q: %v", e.Name, e.Err)
}

// Is implements the [errors.Is] interface.
func (*CreateError) Is(other error) bool {
	_, ok := other.(*CreateError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CreateError) Unwrap() error {
	return e.Err
}

// LoadError is returned if a container configuration file is missing
// or invalid. It names the offending file.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load container config %s: %v", e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*LoadError) Is(other error) bool {
	_, ok := other.(*LoadError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// StartError is returned if the init process cannot be spawned at all.
// It is distinct from a non-zero exit of a successfully started init
// process, which is reported via [Container.Termination].
type StartError struct {
	Name string
	Err  error
}

// Error implements the [error] interface.
func (e *StartError) Error() string {
	return fmt.Sprintf("start container %q: %v", e.Name, e.Err)
}

// Is implements the [errors.Is] interface.
func (*StartError) Is(other error) bool {
	_, ok := other.(*StartError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *StartError) Unwrap() error {
	return e.Err
}

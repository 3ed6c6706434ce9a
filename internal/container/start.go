// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// StartOptions control a single [Container.Start].
type StartOptions struct {
	// UseInit requests the init-wrapping shim between supervisor and
	// container command. It is not supported: the configured command
	// must become PID 1 of the container directly, so any value but
	// false is rejected.
	UseInit bool

	// ExtraArgs are appended to the configured init command.
	ExtraArgs []string

	// Stdin, Stdout and Stderr are the streams inherited by the init
	// process. Unset streams default to the supervisor's own.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Start runs the container's init process in the foreground and blocks
// until it terminates. There is no cancellation: the supervisor's
// lifetime is bounded by the container's.
//
// A configuration must be loaded and [Container.Daemonize] must be
// false. The termination condition is available from
// [Container.Termination] once Start returns. An error is only
// returned if the init process could not be run at all; a non-zero
// exit or a signal death of init is a regular outcome, not an error.
func (c *Container) Start(opts StartOptions) error {
	if c.released {
		return ErrReleased
	}

	if !c.loaded {
		return ErrNotLoaded
	}

	if c.Daemonize {
		return ErrWouldDaemonize
	}

	if opts.UseInit {
		return ErrInitShimUnsupported
	}

	if len(c.config.initCmd) == 0 {
		return &StartError{Name: c.name, Err: ErrNoInitCmd}
	}

	argv := append(append(make([]string, 0, len(c.config.initCmd)+len(opts.ExtraArgs)), c.config.initCmd...), opts.ExtraArgs...)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = c.config.initCwd
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}

	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}

	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	cmd.Env = append(os.Environ(), c.config.env...)
	if c.config.utsName != "" {
		cmd.Env = append(cmd.Env, "HOSTNAME="+c.config.utsName)
	}

	err := cmd.Run()

	var exitErr *exec.ExitError

	switch {
	case err == nil:
		c.termination = Exited(0)
	case errors.As(err, &exitErr):
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			c.termination = terminationFrom(unix.WaitStatus(ws))
		}
	default:
		return &StartError{Name: c.name, Err: err}
	}

	return nil
}

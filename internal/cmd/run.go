// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lxtools/lxstart/internal/container"
	"github.com/lxtools/lxstart/internal/exitcode"
	"github.com/lxtools/lxstart/internal/sanitize"
)

// failureCode is the generic exit code for all supervisor failures:
// wrong argument count, descriptor sweep failure, handle creation
// failure and configuration load failure.
const failureCode = 1

// IO provides input and output streams for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run supervises one container start and returns the process exit
// code.
//
// If the container's init process is terminated by a signal, Run
// re-raises that signal against the own process group and usually does
// not return at all.
func Run(args []string, cfg IO) int {
	setupLogging(cfg.Stderr, debugEnabled(os.LookupEnv))

	inv, err := parseArgs(args)
	if err != nil {
		printError(cfg.Stderr, err)
		return failureCode
	}

	if err := supervise(inv, cfg); err != nil {
		return handleRunError(cfg.Stderr, err)
	}

	return 0
}

// supervise runs the sanitize, load, start, translate sequence.
func supervise(inv invocation, cfg IO) error {
	// The descriptor table must be clean before the container handle
	// exists; the handle may allocate descriptors of its own.
	sanitize.DetachSession()

	keep := sanitize.ListenFDs(os.LookupEnv)
	if err := sanitize.SweepFDs(keep); err != nil {
		return err
	}

	slog.Debug("sanitized environment",
		slog.Int("listen_fds", keep))

	c, err := container.New(inv.name, inv.path)
	if err != nil {
		return err
	}
	defer releaseContainer(cfg.Stderr, c)

	c.ClearConfig()

	if err := c.LoadConfig(inv.configPath); err != nil {
		return err
	}

	// Daemonizing would null the inherited stdio.
	c.Daemonize = false

	startOpts := container.StartOptions{
		// The configured command must be PID 1 of the container.
		UseInit: false,
		Stdin:   cfg.Stdin,
		Stdout:  cfg.Stdout,
		Stderr:  cfg.Stderr,
	}

	if err := c.Start(startOpts); err != nil {
		return err
	}

	slog.Debug("container init terminated",
		slog.String("container", c.Name()),
		slog.String("termination", c.Termination().String()))

	return exitFor(c.Termination())
}

func releaseContainer(stderr io.Writer, c *container.Container) {
	if err := c.Release(); err != nil {
		printError(stderr, fmt.Errorf("release container: %w", err))
	}
}

// handleRunError maps an error from [supervise] to the process exit
// code. A container exit code is passed through silently; everything
// else is a supervisor failure and gets a diagnostic.
func handleRunError(stderr io.Writer, err error) int {
	if code, ok := exitcode.From(err); ok {
		return code
	}

	printError(stderr, err)

	return failureCode
}

// printError writes the diagnostic line for a fatal error. All
// supervisor diagnostics carry the same source tag so the orchestrator
// above can attribute them.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error [lxstart]: %v\n", err)
}

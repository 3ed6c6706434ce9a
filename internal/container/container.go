// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

// Package container provides the handle for a single container start:
// loading a prepared configuration, running the container's init
// process in the foreground and reporting how it terminated.
package container

import (
	"os"
)

// Container is the exclusively owned handle for one container start.
//
// Create it with [New], load a configuration, then call
// [Container.Start] once. [Container.Release] must be called when
// done, on error paths included.
type Container struct {
	name string
	path string

	// Daemonize mirrors the container subsystem's daemonize flag. A
	// successful [Container.LoadConfig] sets it to true, the
	// subsystem's default. It must be cleared before Start: a
	// daemonized start would detach the init process from the
	// supervisor's stdio.
	Daemonize bool

	config      *config
	loaded      bool
	released    bool
	termination Termination
}

// New allocates a handle for the container name stored under path. No
// configuration is loaded yet.
func New(name, path string) (*Container, error) {
	if name == "" {
		return nil, &CreateError{Name: name, Err: ErrNameEmpty}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &CreateError{Name: name, Err: err}
	}

	if !info.IsDir() {
		return nil, &CreateError{Name: name, Err: ErrNotDirectory}
	}

	return &Container{
		name:   name,
		path:   path,
		config: newConfig(),
	}, nil
}

// Name returns the container's name.
func (c *Container) Name() string {
	return c.name
}

// Path returns the container's storage path.
func (c *Container) Path() string {
	return c.path
}

// ClearConfig drops any loaded or implicit configuration, returning
// the handle to its unconfigured state.
func (c *Container) ClearConfig() {
	c.config = newConfig()
	c.loaded = false
	c.Daemonize = false
}

// LoadConfig reads the container configuration from the given file.
//
// On success any previously loaded configuration is replaced and
// [Container.Daemonize] is reset to its default, true.
func (c *Container) LoadConfig(path string) error {
	if c.released {
		return ErrReleased
	}

	file, err := os.Open(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	defer file.Close()

	cfg, err := parseConfig(file)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}

	c.config = cfg
	c.loaded = true
	c.Daemonize = true

	return nil
}

// Termination reports how the init process ended.
//
// Before [Container.Start] has run, or if the reported status was
// neither a clean exit nor a signal, the kind is
// [TerminationUnknown]. The unknown case is part of the contract, not
// an error: the status may be unpopulated when init is killed by
// certain signals, and callers are expected to treat it as success.
func (c *Container) Termination() Termination {
	return c.termination
}

// Release frees the handle. It must be called exactly once after [New]
// succeeded. Any later use of the handle fails with [ErrReleased].
func (c *Container) Release() error {
	if c.released {
		return ErrReleased
	}

	c.released = true
	c.loaded = false
	c.config = nil

	return nil
}

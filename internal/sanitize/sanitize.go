// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

// Package sanitize prepares the process environment for a container
// start. It detaches the process from its controlling terminal and
// sweeps inherited file descriptors, sparing stdio and the
// socket-activation range announced via LISTEN_FDS.
//
// Both operations mutate process-global state and must run before any
// container resource is created, since such a resource may allocate
// descriptors of its own that the sweep would destroy.
package sanitize

import (
	"golang.org/x/sys/unix"
)

// DetachSession moves the process into a new session, detaching it from
// any controlling terminal.
//
// Without this, terminal line-discipline settings applied by the
// container subsystem would let interactive interrupts reach the
// container. The error is discarded: setsid fails if the process
// already leads a process group, and there may be no controlling
// terminal in the first place. Neither case is a problem.
func DetachSession() {
	_, _ = unix.Setsid()
}

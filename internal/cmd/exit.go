// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os/signal"

	"github.com/lxtools/lxstart/internal/container"
	"github.com/lxtools/lxstart/internal/exitcode"
	"golang.org/x/sys/unix"
)

// exitFor translates the init process's termination condition into the
// supervisor's own exit behavior.
//
// A normal exit becomes the supervisor's exit code, carried as
// [exitcode.Error] when non-zero. A termination by signal is re-raised
// so a waiting parent observes the identical signal instead of a
// numeric encoding of it. The unknown condition maps to success: the
// status may be unpopulated when init is killed by certain signals
// (SIGHUP is known to do this), and that fallback is the documented
// contract, not a gap to fix here.
func exitFor(t container.Termination) error {
	switch t.Kind() {
	case container.TerminationSignaled:
		reraise(t.Signal())
		// Reached only if the signal did not terminate the process,
		// e.g. because it is ignored. Exit with success then, like
		// the unknown case.
		return nil
	case container.TerminationExited:
		if code := t.ExitCode(); code != 0 {
			return exitcode.Error(code)
		}

		return nil
	default:
		return nil
	}
}

// reraise sends the signal to the own process group, the same
// mechanism default delivery uses. The Go runtime's handler for the
// signal is reset first so the default disposition applies and the
// process actually dies signal-terminated.
func reraise(sig unix.Signal) {
	signal.Reset(sig)
	_ = unix.Kill(0, sig)
}

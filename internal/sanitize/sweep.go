// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

package sanitize

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// procSelfFD lists the process's own open file descriptors.
const procSelfFD = "/proc/self/fd"

// stdioMax is the highest stdio descriptor number.
const stdioMax = 2

// SweepFDs closes every open file descriptor above the retention bound
// 2+keep. Descriptors 0..2+keep stay open: stdio plus the
// socket-activation range (see [ListenFDs]).
//
// The enumeration handle for /proc/self/fd is spared during the walk
// and released when it completes. It is opened close-on-exec (os.Open
// guarantees this) so it cannot leak into the container either way.
//
// Everything downstream depends on a clean descriptor table, so a
// failure to enumerate is an error and must be treated as fatal by the
// caller.
func SweepFDs(keep int) error {
	dir, err := os.Open(procSelfFD)
	if err != nil {
		return fmt.Errorf("enumerate open descriptors: %w", err)
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return fmt.Errorf("read %s: %w", procSelfFD, err)
	}

	for _, fd := range sweepSet(names, keep, int(dir.Fd())) {
		// The descriptor was just listed, so close errors can only
		// mean it is already gone.
		_ = unix.Close(fd)
	}

	return nil
}

// sweepSet selects the descriptors to close from the enumerated entry
// names: every descriptor above the retention bound except self, the
// descriptor backing the enumeration itself.
//
// Entries that do not parse as a number are skipped, not errors.
func sweepSet(names []string, keep, self int) []int {
	fds := make([]int, 0, len(names))

	for _, name := range names {
		fd, err := strconv.Atoi(name)
		if err != nil {
			continue
		}

		if fd > stdioMax+keep && fd != self {
			fds = append(fds, fd)
		}
	}

	return fds
}

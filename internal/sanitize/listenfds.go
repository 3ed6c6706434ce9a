// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

package sanitize

import (
	"strconv"
)

// listenFDsVar is the environment variable of the systemd
// socket-activation protocol. It announces the number of listening
// sockets passed on the descriptors directly following stdio.
const listenFDsVar = "LISTEN_FDS"

// ListenFDs returns the number of descriptors after stdio that must
// survive [SweepFDs].
//
// The value is read from the LISTEN_FDS variable via the given lookup
// function, usually [os.LookupEnv]. Missing, unparseable and negative
// values all count as zero.
func ListenFDs(lookup func(string) (string, bool)) int {
	value, ok := lookup(listenFDsVar)
	if !ok {
		return 0
	}

	keep, err := strconv.Atoi(value)
	if err != nil || keep < 0 {
		return 0
	}

	return keep
}

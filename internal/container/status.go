// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// TerminationKind discriminates the variants of [Termination].
type TerminationKind int

const (
	// TerminationUnknown is a status that is neither a clean exit nor
	// a signal. It also is the state before Start has run.
	TerminationUnknown TerminationKind = iota

	// TerminationExited is a normal exit with a code.
	TerminationExited

	// TerminationSignaled is a termination by signal.
	TerminationSignaled
)

// Termination is the reported outcome of the container's init process.
//
// The zero value is the unknown condition.
type Termination struct {
	kind   TerminationKind
	code   int
	signal unix.Signal
}

// Exited returns the termination condition for a normal exit with the
// given code.
func Exited(code int) Termination {
	return Termination{kind: TerminationExited, code: code}
}

// Signaled returns the termination condition for a termination by the
// given signal.
func Signaled(signal unix.Signal) Termination {
	return Termination{kind: TerminationSignaled, signal: signal}
}

// Kind returns the variant of the termination condition.
func (t Termination) Kind() TerminationKind {
	return t.kind
}

// ExitCode returns the exit code. Only meaningful for
// [TerminationExited].
func (t Termination) ExitCode() int {
	return t.code
}

// Signal returns the terminating signal. Only meaningful for
// [TerminationSignaled].
func (t Termination) Signal() unix.Signal {
	return t.signal
}

// String implements the [fmt.Stringer] interface.
func (t Termination) String() string {
	switch t.kind {
	case TerminationExited:
		return fmt.Sprintf("exited(%d)", t.code)
	case TerminationSignaled:
		return fmt.Sprintf("signaled(%s)", unix.SignalName(t.signal))
	default:
		return "unknown"
	}
}

// terminationFrom translates an OS wait status into the termination
// condition. Statuses that report neither an exit nor a signal, like a
// stop, map to the unknown condition.
func terminationFrom(ws unix.WaitStatus) Termination {
	switch {
	case ws.Exited():
		return Exited(ws.ExitStatus())
	case ws.Signaled():
		return Signaled(ws.Signal())
	default:
		return Termination{}
	}
}

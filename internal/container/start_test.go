// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

package container_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lxtools/lxstart/internal/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// writeScript writes an executable shell script and returns its path.
func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "init.sh")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o700))

	return path
}

// loadedContainer returns a started-ready container with the given
// config file content loaded and Daemonize cleared.
func loadedContainer(t *testing.T, configContent string) *container.Container {
	t.Helper()

	c, err := container.New("c1", t.TempDir())
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, c.Release())
	})

	configPath := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))
	require.NoError(t, c.LoadConfig(configPath))

	c.Daemonize = false

	return c
}

func TestContainerStartTermination(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		expected container.Termination
	}{
		{
			name:     "clean exit",
			script:   "exit 0",
			expected: container.Exited(0),
		},
		{
			name:     "non-zero exit",
			script:   "exit 7",
			expected: container.Exited(7),
		},
		{
			name:     "max exit code",
			script:   "exit 255",
			expected: container.Exited(255),
		},
		{
			name:     "killed",
			script:   "kill -KILL $$",
			expected: container.Signaled(unix.SIGKILL),
		},
		{
			name:     "terminated",
			script:   "kill -TERM $$",
			expected: container.Signaled(unix.SIGTERM),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := writeScript(t, tt.script)
			c := loadedContainer(t, "lxc.init.cmd = "+script+"\n")

			require.NoError(t, c.Start(container.StartOptions{}))
			assert.Equal(t, tt.expected, c.Termination())
		})
	}
}

func TestContainerStartForeground(t *testing.T) {
	script := writeScript(t, "echo started")
	c := loadedContainer(t, "lxc.init.cmd = "+script+"\n")

	var stdout bytes.Buffer

	require.NoError(t, c.Start(container.StartOptions{Stdout: &stdout}))

	assert.Equal(t, "started\n", stdout.String())
	assert.Equal(t, container.Exited(0), c.Termination())
}

func TestContainerStartExtraArgs(t *testing.T) {
	script := writeScript(t, `exit "$1"`)
	c := loadedContainer(t, "lxc.init.cmd = "+script+"\n")

	err := c.Start(container.StartOptions{ExtraArgs: []string{"5"}})
	require.NoError(t, err)

	assert.Equal(t, container.Exited(5), c.Termination())
}

func TestContainerStartEnvironment(t *testing.T) {
	script := writeScript(t, `printf '%s %s' "$FOO" "$HOSTNAME"`)
	config := "lxc.init.cmd = " + script + "\n" +
		"lxc.environment = FOO=bar\n" +
		"lxc.uts.name = c1\n"
	c := loadedContainer(t, config)

	var stdout bytes.Buffer

	require.NoError(t, c.Start(container.StartOptions{Stdout: &stdout}))
	assert.Equal(t, "bar c1", stdout.String())
}

func TestContainerStartCwd(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, "pwd")
	config := "lxc.init.cmd = " + script + "\n" +
		"lxc.init.cwd = " + dir + "\n"
	c := loadedContainer(t, config)

	var stdout bytes.Buffer

	require.NoError(t, c.Start(container.StartOptions{Stdout: &stdout}))
	assert.Equal(t, dir+"\n", stdout.String())
}

func TestContainerStartRefusals(t *testing.T) {
	t.Run("daemonize set", func(t *testing.T) {
		c := loadedContainer(t, "lxc.init.cmd = /bin/true\n")
		c.Daemonize = true

		err := c.Start(container.StartOptions{})
		assert.ErrorIs(t, err, container.ErrWouldDaemonize)
	})

	t.Run("init shim requested", func(t *testing.T) {
		c := loadedContainer(t, "lxc.init.cmd = /bin/true\n")

		err := c.Start(container.StartOptions{UseInit: true})
		assert.ErrorIs(t, err, container.ErrInitShimUnsupported)
	})

	t.Run("no config loaded", func(t *testing.T) {
		c, err := container.New("c1", t.TempDir())
		require.NoError(t, err)

		t.Cleanup(func() {
			require.NoError(t, c.Release())
		})

		err = c.Start(container.StartOptions{})
		assert.ErrorIs(t, err, container.ErrNotLoaded)
	})

	t.Run("no init cmd", func(t *testing.T) {
		c := loadedContainer(t, "lxc.uts.name = c1\n")

		err := c.Start(container.StartOptions{})
		require.ErrorIs(t, err, &container.StartError{})
		assert.ErrorIs(t, err, container.ErrNoInitCmd)
	})

	t.Run("missing init binary", func(t *testing.T) {
		c := loadedContainer(t, "lxc.init.cmd = /nonexistent/init\n")

		err := c.Start(container.StartOptions{})
		require.ErrorIs(t, err, &container.StartError{})

		// Spawn failure leaves the termination condition unknown.
		assert.Equal(t, container.TerminationUnknown, c.Termination().Kind())
	})
}

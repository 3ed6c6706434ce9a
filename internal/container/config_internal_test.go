// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    *config
		expectedErr error
	}{
		{
			name:     "empty",
			input:    "",
			expected: newConfig(),
		},
		{
			name:     "comments and blank lines",
			input:    "# a comment\n\n   \n# another\n",
			expected: newConfig(),
		},
		{
			name:  "init cmd split on whitespace",
			input: "lxc.init.cmd = /sbin/init --arg  value\n",
			expected: &config{
				initCmd: []string{"/sbin/init", "--arg", "value"},
				extra:   map[string][]string{},
			},
		},
		{
			name:  "empty init cmd resets",
			input: "lxc.init.cmd = /sbin/init\nlxc.init.cmd =\n",
			expected: &config{
				initCmd: []string{},
				extra:   map[string][]string{},
			},
		},
		{
			name:  "environment accumulates",
			input: "lxc.environment = FOO=bar\nlxc.environment = BAZ=qux\n",
			expected: &config{
				env:   []string{"FOO=bar", "BAZ=qux"},
				extra: map[string][]string{},
			},
		},
		{
			name:  "cwd and uts name",
			input: "lxc.init.cwd = /srv\nlxc.uts.name = c1\n",
			expected: &config{
				initCwd: "/srv",
				utsName: "c1",
				extra:   map[string][]string{},
			},
		},
		{
			name:  "unknown lxc keys retained",
			input: "lxc.net.0.type = veth\nlxc.net.0.link = br0\n",
			expected: &config{
				extra: map[string][]string{
					"lxc.net.0.type": {"veth"},
					"lxc.net.0.link": {"br0"},
				},
			},
		},
		{
			name:        "missing separator",
			input:       "lxc.init.cmd /bin/true\n",
			expectedErr: ErrMalformedLine,
		},
		{
			name:        "key outside lxc namespace",
			input:       "init.cmd = /bin/true\n",
			expectedErr: ErrUnknownKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseConfig(strings.NewReader(tt.input))
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParseConfigLineNumbers(t *testing.T) {
	input := "# comment\nlxc.init.cmd = /bin/true\nbroken line\n"

	_, err := parseConfig(strings.NewReader(input))
	require.ErrorIs(t, err, ErrMalformedLine)
	assert.ErrorContains(t, err, "line 3")
}

// SPDX-FileCopyrightText: 2026 The lxstart authors
//
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// config is the subset of the lxc container configuration the
// supervisor acts on. The file format is one "key = value" pair per
// line, empty lines and #-comments ignored.
type config struct {
	// initCmd is the container's init command, the value of
	// lxc.init.cmd split on whitespace. The format supports no
	// quoting.
	initCmd []string

	// initCwd is the working directory for the init process.
	initCwd string

	// env are NAME=VALUE pairs from lxc.environment lines, in file
	// order.
	env []string

	// utsName is the container's hostname.
	utsName string

	// extra retains unrecognized lxc.* keys. The supervisor does not
	// act on them, but they are not errors either: the file is shared
	// with the rest of the container subsystem.
	extra map[string][]string
}

func newConfig() *config {
	return &config{
		extra: make(map[string][]string),
	}
}

func parseConfig(r io.Reader) (*config, error) {
	cfg := newConfig()

	scanner := bufio.NewScanner(r)

	var lineNo int

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrMalformedLine)
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if !strings.HasPrefix(key, "lxc.") {
			return nil, fmt.Errorf("line %d: key %q: %w", lineNo, key, ErrUnknownKey)
		}

		switch key {
		case "lxc.init.cmd":
			// An empty value resets the key, like lxc does.
			cfg.initCmd = strings.Fields(value)
		case "lxc.init.cwd":
			cfg.initCwd = value
		case "lxc.environment":
			cfg.env = append(cfg.env, value)
		case "lxc.uts.name":
			cfg.utsName = value
		default:
			cfg.extra[key] = append(cfg.extra[key], value)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return cfg, nil
}

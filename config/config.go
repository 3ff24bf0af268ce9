// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Per-directory listing overrides with built-in defaults and an
// optional user JSON file.

package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	userConfigName = "glint.json"

	// DefaultMaxColumns bounds the grid when no override applies.
	DefaultMaxColumns = 4
)

// Override is one per-directory configuration record.
type Override struct {
	// MaxColumns caps the grid column count for this directory.
	MaxColumns int `json:"maxColumns"`
	// Device switches classification to the device-node rule tables.
	Device bool `json:"device"`
}

// userFile is the shape of the optional user configuration file.
type userFile struct {
	Directories map[string]Override `json:"directories"`
}

// builtin holds the defaults for the special system directories. User
// records override these by path.
var builtin = map[string]Override{
	"/dev":  {MaxColumns: 6, Device: true},
	"/proc": {MaxColumns: 5},
}

var (
	mu        sync.RWMutex
	once      sync.Once
	overrides map[string]Override
)

// For returns the override record for a directory path, falling back to the
// global default record.
func For(path string) Override {
	once.Do(load)
	mu.RLock()
	defer mu.RUnlock()
	if o, ok := overrides[filepath.Clean(path)]; ok {
		if o.MaxColumns < 1 {
			o.MaxColumns = DefaultMaxColumns
		}
		return o
	}
	return Override{MaxColumns: DefaultMaxColumns}
}

// load merges the user file, when present and well-formed, over the built-in
// records. Any problem degrades to the built-ins with a logged warning.
func load() {
	mu.Lock()
	defer mu.Unlock()

	overrides = make(map[string]Override, len(builtin))
	for path, o := range builtin {
		overrides[path] = o
	}

	path, err := userConfigPath()
	if err != nil {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Config: failed to read %s: %v", path, err)
		}
		return
	}

	var file userFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Printf("Config: ignoring malformed %s: %v", path, err)
		return
	}
	for dir, o := range file.Directories {
		overrides[filepath.Clean(dir)] = o
	}
}

// userConfigPath resolves $XDG_CONFIG_HOME/glint/glint.json, falling back to
// ~/.config.
func userConfigPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "glint", userConfigName), nil
}

// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: card/card.go
// Summary: The per-entry display record built from one metadata probe.

package card

import (
	"io/fs"
	"strings"
	"time"
)

// Card is one classified directory entry. It is created once per listing,
// classified once, and never mutated afterwards except for the optional
// status-tag annotation pass.
type Card struct {
	Name    string
	Glyph   string
	IsDir   bool
	Hidden  bool
	Symlink bool

	// Status annotation, filled by the VCS collaborator when present.
	Status           byte // 0 means no tag
	ContainsModified bool // directories only

	// Raw metadata carried for the detailed views.
	Size    int64
	Mode    fs.FileMode
	ModTime time.Time
	Subdirs int // direct subdirectory count, detailed view only
}

// Extension returns the suffix after the last dot, lower-cased for
// comparison. A dotfile's leading dot and a trailing dot do not count.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

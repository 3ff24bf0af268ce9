// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scan/scan.go
// Summary: Directory traversal and per-entry metadata probes feeding the classifier.

package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/framegrace/glint/card"
	"github.com/framegrace/glint/glyph"
)

// Options controls a directory collection pass.
type Options struct {
	// Device classifies entries against the device-node tables.
	Device bool
	// CountSubdirs fills Card.Subdirs for the detailed view. Costs one
	// extra directory read per subdirectory.
	CountSubdirs bool
}

// Collect reads dir and returns one classified card per entry. Entries whose
// metadata probe fails are reported to stderr and omitted; only failing to
// read the directory itself is an error.
func Collect(dir string, opts Options) ([]card.Card, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	cards := make([]card.Card, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: unable to get info for %s: %v\n", e.Name(), err)
			continue
		}
		c := build(dir, e.Name(), info, opts)
		cards = append(cards, c)
	}
	return cards, nil
}

// build derives one card from a single metadata probe.
func build(dir, name string, info fs.FileInfo, opts Options) card.Card {
	path := filepath.Join(dir, name)
	mode := info.Mode()

	c := card.Card{
		Name:    name,
		IsDir:   mode.IsDir(),
		Hidden:  name[0] == '.',
		Symlink: mode&fs.ModeSymlink != 0,
		Size:    info.Size(),
		Mode:    mode,
		ModTime: info.ModTime(),
	}

	meta := glyph.Meta{
		Name:       name,
		IsDir:      c.IsDir,
		IsSymlink:  c.Symlink,
		Executable: mode&0o111 != 0,
	}
	if c.Symlink {
		if target, err := os.Stat(path); err == nil && target.IsDir() {
			meta.LinkToDir = true
		}
	}
	if mode.IsRegular() {
		meta.Content = fileSource(path)
	}
	c.Glyph = glyph.Classify(meta, opts.Device)

	if opts.CountSubdirs && c.IsDir {
		c.Subdirs = countSubdirs(path)
	}
	return c
}

// countSubdirs reports the number of direct subdirectories. An unreadable
// directory counts as zero.
func countSubdirs(path string) int {
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if e.IsDir() {
			n++
		}
	}
	return n
}

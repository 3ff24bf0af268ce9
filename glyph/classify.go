// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: glyph/classify.go
// Summary: Priority-ordered classification cascade mapping one entry to one glyph.

package glyph

import "strings"

const (
	// maxFirstLine caps the shebang probe.
	maxFirstLine = 256
	// maxTextProbe caps the printable-text probe.
	maxTextProbe = 1024
)

// Source provides bounded, read-only access to an entry's content. Probe
// failures are treated as "no match", never surfaced to the caller.
type Source interface {
	// FirstLine returns the first line of the entry, reading at most max bytes.
	FirstLine(max int) (string, error)
	// Sample returns up to max bytes from the start of the entry.
	Sample(max int) ([]byte, error)
}

// Meta is the classification input: everything Classify may consult. It is
// derived from a single metadata probe and never mutated.
type Meta struct {
	Name       string
	IsDir      bool
	IsSymlink  bool
	LinkToDir  bool   // symlink whose target is a directory
	Executable bool   // any execute permission bit
	Content    Source // nil disables the content probes
}

// Classify maps entry metadata to exactly one glyph. The cascade is fixed:
// type short-circuit, device tables (in device context only), name prefix,
// exact name, shebang, extension, then the fallback heuristics. The result
// is never empty and depends only on the name, the mode-derived flags and
// the first bytes of content.
func Classify(m Meta, deviceContext bool) string {
	if m.IsSymlink {
		if m.LinkToDir {
			return LinkFolder
		}
		return Link
	}
	if m.IsDir {
		return Folder
	}

	if deviceContext {
		return classifyDevice(m.Name)
	}

	for _, r := range prefixNameTable {
		if strings.HasPrefix(m.Name, r.pattern) {
			return r.glyph
		}
	}

	for _, r := range exactNameTable {
		if strings.EqualFold(m.Name, r.pattern) {
			return r.glyph
		}
	}

	if g, ok := classifyShebang(m.Content); ok {
		return g
	}

	if ext, ok := splitExtension(m.Name); ok {
		for _, r := range extensionTable {
			if strings.EqualFold(ext, r.pattern) {
				return r.glyph
			}
		}
	}

	if strings.HasPrefix(m.Name, ".") {
		return Config
	}
	if m.Executable {
		return Executable
	}
	if isTextContent(m.Content) {
		return Text
	}
	return Unknown
}

// classifyDevice resolves a name inside a device directory: exact node names
// first, then the first matching prefix, then the generic device glyph.
func classifyDevice(name string) string {
	for _, r := range devExactTable {
		if name == r.pattern {
			return r.glyph
		}
	}
	for _, r := range devPrefixTable {
		if strings.HasPrefix(name, r.pattern) {
			return r.glyph
		}
	}
	return Device
}

// splitExtension returns the suffix after the last dot. A leading dot alone
// (dotfiles) or a trailing dot does not count as an extension.
func splitExtension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", false
	}
	return name[i+1:], true
}

// classifyShebang tests the entry's first line against the interpreter
// directive table. Any probe error means no match.
func classifyShebang(src Source) (string, bool) {
	if src == nil {
		return "", false
	}
	line, err := src.FirstLine(maxFirstLine)
	if err != nil || !strings.HasPrefix(line, "#!") {
		return "", false
	}
	for _, r := range contentTable {
		if strings.HasPrefix(line, r.pattern) {
			return r.glyph, true
		}
	}
	return "", false
}

// isTextContent reports whether the sampled bytes are all printable ASCII or
// whitespace. An empty file counts as text; a failed probe does not.
func isTextContent(src Source) bool {
	if src == nil {
		return false
	}
	buf, err := src.Sample(maxTextProbe)
	if err != nil {
		return false
	}
	for _, b := range buf {
		if !printable(b) {
			return false
		}
	}
	return true
}

func printable(b byte) bool {
	switch b {
	case '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return b >= 0x20 && b < 0x7F
}

// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: gitstatus/gitstatus.go
// Summary: Optional git collaborator: branch name and per-path status tags.

package gitstatus

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/framegrace/glint/card"
)

// Status holds one snapshot of a repository's porcelain state. A nil *Status
// is valid and means "not under version control".
type Status struct {
	// Branch is the current branch name, empty on detached HEAD resolution
	// failure.
	Branch string

	root  string          // absolute repository root
	files map[string]byte // repo-relative path → status rune
}

// Collect gathers git state for dir. It returns nil when dir is not inside a
// work tree, when git is not installed, or when any git invocation fails —
// the listing never degrades because of the VCS collaborator.
func Collect(dir string) *Status {
	if !insideWorkTree(dir) {
		return nil
	}
	root, err := gitOutput(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil
	}
	porcelain, err := gitRaw(dir, "status", "--porcelain")
	if err != nil {
		return nil
	}

	s := &Status{
		root:  root,
		files: parsePorcelain(porcelain),
	}
	if branch, err := gitOutput(dir, "rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		s.Branch = branch
	}
	return s
}

// Annotate fills each card's status tag and, for directories, the
// contains-modified-descendant flag. dir is the listed directory.
func (s *Status) Annotate(dir string, cards []card.Card) {
	if s == nil || len(s.files) == 0 {
		return
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return
	}
	for i := range cards {
		rel, err := filepath.Rel(s.root, filepath.Join(abs, cards[i].Name))
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		tag, contains := s.lookup(rel, cards[i].IsDir)
		cards[i].Status = tag
		cards[i].ContainsModified = contains
	}
}

// lookup resolves one repo-relative path. Directories match their own entry
// (git reports untracked directories with a trailing slash) and report
// whether any status path lies beneath them.
func (s *Status) lookup(rel string, isDir bool) (byte, bool) {
	if tag, ok := s.files[rel]; ok {
		return tag, isDir
	}
	if !isDir {
		return 0, false
	}
	if tag, ok := s.files[rel+"/"]; ok {
		return tag, true
	}
	prefix := rel + "/"
	for path := range s.files {
		if strings.HasPrefix(path, prefix) {
			return 0, true
		}
	}
	return 0, false
}

// parsePorcelain maps `git status --porcelain` output to status runes.
func parsePorcelain(out []byte) map[string]byte {
	files := make(map[string]byte)
	for _, line := range bytes.Split(out, []byte("\n")) {
		if len(line) < 4 {
			continue
		}
		path := string(line[3:])
		// Renames report "old -> new"; the new path carries the status.
		if i := strings.Index(path, " -> "); i >= 0 {
			path = path[i+4:]
		}
		path = strings.Trim(path, `"`)
		files[path] = statusRune(line[0], line[1])
	}
	return files
}

// statusRune condenses the two porcelain status columns into one character:
// untracked → U, ignored → I, otherwise the first non-blank column.
func statusRune(x, y byte) byte {
	switch {
	case x == '?' && y == '?':
		return 'U'
	case x == '!' && y == '!':
		return 'I'
	case x != ' ':
		return x
	default:
		return y
	}
}

func insideWorkTree(dir string) bool {
	out, err := gitOutput(dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

func gitOutput(dir string, args ...string) (string, error) {
	out, err := gitRaw(dir, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func gitRaw(dir string, args ...string) ([]byte, error) {
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	cmd.Stderr = nil
	return cmd.Output()
}

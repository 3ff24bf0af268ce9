// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: report/analytics.go
// Summary: Aggregate directory statistics: sizes, counts, depth, dominant language.

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/go-enry/go-enry/v2"
)

// languageSample bounds the bytes fed to language detection per file.
const languageSample = 1024

var headerStyle = lipgloss.NewStyle().Bold(true)

// Summary aggregates one directory tree's statistics. Counts and the
// newest/oldest/empty sets cover the top level only; size, depth and the
// largest file are recursive, matching the listing's reporting scope.
type Summary struct {
	TotalSize uint64
	Dirs      int
	Files     int

	MaxDepth   int
	DeepestDir string

	LargestFile string
	LargestSize uint64

	NewestFile string
	NewestTime time.Time
	OldestFile string
	OldestTime time.Time

	EmptyFiles []string

	// Language is the dominant detected language among top-level files,
	// empty when nothing was recognized.
	Language string
}

// Analyze walks dir and builds its Summary. Unreadable subtrees are skipped,
// not fatal.
func Analyze(dir string) (*Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	sum := &Summary{}
	votes := make(map[string]int)

	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		if e.IsDir() {
			sum.Dirs++
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		sum.Files++
		if info.Size() == 0 {
			sum.EmptyFiles = append(sum.EmptyFiles, e.Name())
		}
		if sum.NewestFile == "" || info.ModTime().After(sum.NewestTime) {
			sum.NewestFile, sum.NewestTime = e.Name(), info.ModTime()
		}
		if sum.OldestFile == "" || info.ModTime().Before(sum.OldestTime) {
			sum.OldestFile, sum.OldestTime = e.Name(), info.ModTime()
		}
		if lang := detectLanguage(filepath.Join(dir, e.Name())); lang != "" {
			votes[lang]++
		}
	}

	walkTree(dir, dir, 0, sum)

	best := 0
	for lang, n := range votes {
		if n > best || (n == best && lang < sum.Language) {
			sum.Language, best = lang, n
		}
	}
	return sum, nil
}

// walkTree accumulates the recursive measures: total size, max depth,
// deepest directory and largest file.
func walkTree(root, dir string, depth int, sum *Summary) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		info, err := e.Info()
		if err != nil {
			continue
		}
		if e.IsDir() {
			if depth+1 > sum.MaxDepth {
				sum.MaxDepth = depth + 1
				sum.DeepestDir = path
			}
			walkTree(root, path, depth+1, sum)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		size := uint64(info.Size())
		sum.TotalSize += size
		if size > sum.LargestSize {
			sum.LargestSize = size
			rel, err := filepath.Rel(root, path)
			if err != nil {
				rel = e.Name()
			}
			sum.LargestFile = rel
		}
	}
}

// detectLanguage samples a file and asks go-enry for its language. Probe
// failures vote for nothing.
func detectLanguage(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, languageSample)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return ""
	}
	return enry.GetLanguage(filepath.Base(path), buf[:n])
}

// Render prints the analytics block for dir.
func Render(w io.Writer, dir string, sum *Summary) {
	fmt.Fprintln(w, headerStyle.Render(dir))
	fmt.Fprintf(w, "🧮 Total Size    : %s\n", humanize.IBytes(sum.TotalSize))
	fmt.Fprintf(w, "🗂️  Directories   : %d\n", sum.Dirs)
	fmt.Fprintf(w, "🌳 Max Depth     : %d levels\n", sum.MaxDepth)
	fmt.Fprintf(w, "📁 Deepest Dir   : %s\n", sum.DeepestDir)
	fmt.Fprintf(w, "🗃️  Files         : %d\n", sum.Files)
	fmt.Fprintf(w, "🐘 Largest File  : %s [%s]\n", sum.LargestFile, humanize.IBytes(sum.LargestSize))
	fmt.Fprintf(w, "🏺 Oldest File   : %s [%s]\n", sum.OldestFile, formatTime(sum.OldestTime))
	fmt.Fprintf(w, "🆕 Newest File   : %s [%s]\n", sum.NewestFile, formatTime(sum.NewestTime))
	if sum.Language != "" {
		fmt.Fprintf(w, "🔤 Main Language : %s\n", sum.Language)
	}
	fmt.Fprintf(w, "📭 Empty Files   : %d [%s]\n", len(sum.EmptyFiles), strings.Join(sum.EmptyFiles, " "))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}

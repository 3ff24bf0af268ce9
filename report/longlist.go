// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: report/longlist.go
// Summary: Detailed one-line-per-entry listing with emoji permission triads.

package report

import (
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/glint/card"
	"github.com/framegrace/glint/scan"
)

const nameColumn = 24

// ListLong renders the detailed listing of dir: entries sorted with the
// detailed comparator, one line each with size, modification time,
// permissions, glyph and name.
func ListLong(w io.Writer, dir string) error {
	cards, err := scan.Collect(dir, scan.Options{CountSubdirs: true})
	if err != nil {
		return err
	}
	sort.SliceStable(cards, func(i, j int) bool {
		return card.DetailedLess(&cards[i], &cards[j])
	})

	for i := range cards {
		writeLine(w, &cards[i])
	}
	return nil
}

func writeLine(w io.Writer, c *card.Card) {
	fmt.Fprintf(w, "%8s  %s  %s %s %s",
		humanize.IBytes(uint64(c.Size)),
		c.ModTime.Format("2006-01-02 15:04"),
		permString(c.Mode),
		c.Glyph,
		runewidth.FillRight(c.Name, nameColumn))
	if c.IsDir {
		fmt.Fprintf(w, " (%d subdirs)", c.Subdirs)
	}
	fmt.Fprintln(w)
}

// permString renders the user/group/other permission triads as emoji:
// read 👀, write ✏️, execute 🚀, denied ❌, with the setuid/setgid/sticky
// keys appended when set.
func permString(mode fs.FileMode) string {
	var sb strings.Builder
	perm := mode.Perm()

	groups := []struct {
		label string
		shift uint
	}{
		{"👤", 6},
		{"👥", 3},
		{"🌍", 0},
	}
	for i, g := range groups {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(g.label)
		sb.WriteByte(' ')
		bits := perm >> g.shift
		sb.WriteString(pick(bits&4 != 0, "👀"))
		sb.WriteString(pick(bits&2 != 0, "✏️"))
		sb.WriteString(pick(bits&1 != 0, "🚀"))
	}

	if mode&fs.ModeSetuid != 0 {
		sb.WriteString("🔑")
	}
	if mode&fs.ModeSetgid != 0 {
		sb.WriteString("🔐")
	}
	if mode&fs.ModeSticky != 0 {
		sb.WriteString("🔒")
	}
	return sb.String()
}

func pick(ok bool, glyph string) string {
	if ok {
		return glyph
	}
	return "❌"
}

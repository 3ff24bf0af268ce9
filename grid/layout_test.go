// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import (
	"strings"
	"testing"
)

// ascii builds a cell whose printed width is 2 (glyph) + 1 + len(name).
func ascii(name string) Cell {
	return Cell{Glyph: "📁", Name: name}
}

func TestLayoutEmpty(t *testing.T) {
	geom := Layout(nil, 80, 4)
	if geom.Rows != 0 || geom.Columns != 0 {
		t.Fatalf("empty layout = %+v, want zero geometry", geom)
	}
	if rows := Render(nil, geom, nil); len(rows) != 0 {
		t.Fatalf("empty render produced %d rows", len(rows))
	}
}

func TestLayoutFiveEntriesWidthTen(t *testing.T) {
	// Five cells of printed width 10 on a 40-column terminal:
	// (40+2)/(10+2) = 3 columns, ceil(5/3) = 2 rows.
	cells := make([]Cell, 5)
	for i := range cells {
		cells[i] = ascii("abcdefg") // 2+1+7 = 10
	}
	geom := Layout(cells, 40, 4)
	if geom.Columns != 3 {
		t.Fatalf("columns = %d, want 3", geom.Columns)
	}
	if geom.Rows != 2 {
		t.Fatalf("rows = %d, want 2", geom.Rows)
	}
	// Column-major: flat index 3 lands in column 1, row 0.
	if col, row := 3/geom.Rows, 3%geom.Rows; col != 1 || row != 0 {
		t.Fatalf("index 3 placed at col %d row %d, want col 1 row 0", col, row)
	}
}

func TestLayoutNeverExceedsMaxColumns(t *testing.T) {
	cells := make([]Cell, 30)
	for i := range cells {
		cells[i] = ascii("a")
	}
	for _, max := range []int{1, 2, 4, 6} {
		geom := Layout(cells, 500, max)
		if geom.Columns > max {
			t.Errorf("maxColumns %d: got %d columns", max, geom.Columns)
		}
	}
}

func TestLayoutClampsInvalidMaxColumns(t *testing.T) {
	cells := []Cell{ascii("a"), ascii("b")}
	geom := Layout(cells, 80, 0)
	if geom.Columns != 1 {
		t.Fatalf("columns = %d, want 1 for maxColumns 0", geom.Columns)
	}
	geom = Layout(cells, 80, -3)
	if geom.Columns != 1 {
		t.Fatalf("columns = %d, want 1 for negative maxColumns", geom.Columns)
	}
}

func TestLayoutSingleWideEntry(t *testing.T) {
	// An entry wider than the terminal still gets its own column unmodified.
	c := ascii(strings.Repeat("x", 120))
	geom := Layout([]Cell{c}, 40, 4)
	if geom.Columns != 1 || geom.Rows != 1 {
		t.Fatalf("geometry = %+v, want 1x1", geom)
	}
	rows := Render([]Cell{c}, geom, nil)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if strings.HasSuffix(rows[0], " ") {
		t.Fatalf("single entry row has trailing padding: %q", rows[0])
	}
	if !strings.Contains(rows[0], c.Name) {
		t.Fatalf("name was truncated: %q", rows[0])
	}
}

func TestRenderColumnMajorOrder(t *testing.T) {
	names := []string{"aa", "bb", "cc", "dd", "ee"}
	cells := make([]Cell, len(names))
	for i, n := range names {
		cells[i] = ascii(n)
	}
	geom := Layout(cells, 40, 3) // width 5 each, capped at 3 columns → 2 rows
	if geom.Columns != 3 || geom.Rows != 2 {
		t.Fatalf("geometry = %+v, want 3x2", geom)
	}
	rows := Render(cells, geom, nil)
	// Row 0 holds indices 0, 2, 4; row 1 holds 1 and 3.
	for _, n := range []string{"aa", "cc", "ee"} {
		if !strings.Contains(rows[0], n) {
			t.Errorf("row 0 %q missing %q", rows[0], n)
		}
	}
	for _, n := range []string{"bb", "dd"} {
		if !strings.Contains(rows[1], n) {
			t.Errorf("row 1 %q missing %q", rows[1], n)
		}
	}
	if strings.HasSuffix(rows[1], " ") {
		t.Errorf("short row has trailing padding: %q", rows[1])
	}
}

func TestRenderStatusTagWidth(t *testing.T) {
	with := Cell{Glyph: "📁", Name: "src", Tag: 'M'}
	without := Cell{Glyph: "📁", Name: "src"}
	if got, want := with.width(), without.width()+3; got != want {
		t.Fatalf("tagged width = %d, want %d", got, want)
	}
	rows := Render([]Cell{with}, Layout([]Cell{with}, 80, 4), nil)
	if !strings.Contains(rows[0], "(M)") {
		t.Fatalf("rendered row %q missing plain tag", rows[0])
	}
}

func TestRenderAlignsSecondColumn(t *testing.T) {
	// First column is wider than the second; the second column must start at
	// the same offset on every row.
	cells := []Cell{ascii("longer-name"), ascii("x"), ascii("yy"), ascii("z")}
	geom := Layout(cells, 60, 2)
	if geom.Columns != 2 || geom.Rows != 2 {
		t.Fatalf("geometry = %+v, want 2x2", geom)
	}
	rows := Render(cells, geom, nil)
	off0 := strings.Index(rows[0], "yy")
	off1 := strings.Index(rows[1], "z")
	if off0 < 0 || off1 < 0 {
		t.Fatalf("second column cells not rendered: %q / %q", rows[0], rows[1])
	}
	// Offsets differ in bytes because of the emoji glyphs, but both rows carry
	// identical prefixes up to the second column, so the display columns match
	// when byte offsets do.
	if off0 != off1 {
		t.Fatalf("second column misaligned: byte offset %d vs %d", off0, off1)
	}
}

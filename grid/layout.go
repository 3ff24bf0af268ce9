// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/layout.go
// Summary: Width-bounded multi-column layout with column-major placement.

package grid

import "strings"

const (
	// Spacing is the fixed gap between adjacent columns.
	Spacing = 2
	// glyphNameGap separates a cell's glyph from its name.
	glyphNameGap = 1
	// tagWidth is the printed width of a "(X)" status marker.
	tagWidth = 3
)

// Cell is one renderable entry: a classified glyph, the display name, and an
// optional one-character status tag.
type Cell struct {
	Glyph string
	Name  string
	Tag   byte // 0 means no tag
}

// width reports the printed width of the cell, tag included.
func (c Cell) width() int {
	w := DisplayWidth(c.Glyph) + glyphNameGap + DisplayWidth(c.Name)
	if c.Tag != 0 {
		w += tagWidth
	}
	return w
}

// Geometry describes a computed grid: the column count, row count and the
// per-column widths derived from the occupied cells.
type Geometry struct {
	Columns   int
	Rows      int
	ColWidths []int
}

// Layout computes the grid geometry for cells on a terminal of termWidth
// columns, using at most maxColumns columns. maxColumns below 1 is treated
// as 1. Placement is column-major: consecutive cells run down a column
// before continuing into the next one.
func Layout(cells []Cell, termWidth, maxColumns int) Geometry {
	if len(cells) == 0 {
		return Geometry{}
	}
	if maxColumns < 1 {
		maxColumns = 1
	}

	maxWidth := 0
	for _, c := range cells {
		if w := c.width(); w > maxWidth {
			maxWidth = w
		}
	}

	columns := (termWidth + Spacing) / (maxWidth + Spacing)
	if columns > maxColumns {
		columns = maxColumns
	}
	if columns < 1 {
		columns = 1
	}

	rows := (len(cells) + columns - 1) / columns

	colWidths := make([]int, columns)
	for i, c := range cells {
		col := i / rows
		if w := c.width(); w > colWidths[col] {
			colWidths[col] = w
		}
	}

	return Geometry{Columns: columns, Rows: rows, ColWidths: colWidths}
}

// TagPainter renders a status tag byte as the printable "(X)" marker.
// It may add ANSI color, which does not count toward the printed width.
type TagPainter func(tag byte) string

// PlainTag renders a tag without color.
func PlainTag(tag byte) string {
	return "(" + string(rune(tag)) + ")"
}

// Render materializes the grid as printable rows, one string per row, without
// trailing padding after the last cell of each row. paint may be nil, in
// which case tags are rendered plain.
func Render(cells []Cell, geom Geometry, paint TagPainter) []string {
	if geom.Rows == 0 {
		return nil
	}
	if paint == nil {
		paint = PlainTag
	}

	rows := make([]string, 0, geom.Rows)
	var sb strings.Builder
	for row := 0; row < geom.Rows; row++ {
		sb.Reset()
		for col := 0; col < geom.Columns; col++ {
			i := col*geom.Rows + row
			if i >= len(cells) {
				continue
			}
			c := cells[i]
			sb.WriteString(c.Glyph)
			sb.WriteByte(' ')
			sb.WriteString(c.Name)
			if c.Tag != 0 {
				sb.WriteString(paint(c.Tag))
			}
			if col < geom.Columns-1 && (col+1)*geom.Rows+row < len(cells) {
				for pad := geom.ColWidths[col] - c.width() + Spacing; pad > 0; pad-- {
					sb.WriteByte(' ')
				}
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}

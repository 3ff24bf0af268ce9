// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/width.go
// Summary: Terminal display-width arithmetic for UTF-8 strings.

package grid

import "strings"

// RunLen reports the byte length of the UTF-8 run starting with b.
// Malformed input still yields a length of 1-4, so callers always advance.
func RunLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	default:
		return 4
	}
}

// DisplayWidth returns the number of terminal columns a string occupies.
// Four-byte runs (emoji and other supplementary-plane glyphs) count as two
// columns, everything else as one. This deliberately approximates the
// East-Asian-width tables; it is locale-independent and good enough for
// aligning glyph-annotated file names.
func DisplayWidth(s string) int {
	width := 0
	for i := 0; i < len(s); {
		n := RunLen(s[i])
		if n == 4 {
			width += 2
		} else {
			width++
		}
		i += n
	}
	return width
}

// Pad returns s followed by enough spaces to fill width columns.
// Strings already at or past the target are returned unchanged; the
// caller guarantees width, we never truncate.
func Pad(s string, width int) string {
	gap := width - DisplayWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

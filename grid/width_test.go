// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package grid

import "testing"

func TestRunLen(t *testing.T) {
	cases := []struct {
		b    byte
		want int
	}{
		{'a', 1},
		{0x7F, 1},
		{0xC3, 2}, // é leading byte
		{0xDF, 2},
		{0xE2, 3}, // → leading byte
		{0xEF, 3},
		{0xF0, 4}, // emoji leading byte
		{0xF4, 4},
	}
	for _, c := range cases {
		if got := RunLen(c.b); got != c.want {
			t.Errorf("RunLen(%#x) = %d, want %d", c.b, got, c.want)
		}
	}
}

func TestDisplayWidth(t *testing.T) {
	cases := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"main.c", 6},
		{"é", 1},          // 2-byte run
		{"→", 1},          // 3-byte run
		{"📁", 2},          // 4-byte run counts double
		{"📁 src", 6},      // glyph + space + name
		{"🔗📁", 4},         // link-to-directory glyph
		{"Pokémon", 7},
	}
	for _, c := range cases {
		if got := DisplayWidth(c.s); got != c.want {
			t.Errorf("DisplayWidth(%q) = %d, want %d", c.s, got, c.want)
		}
	}
}

func TestDisplayWidthPureASCIIEqualsByteLen(t *testing.T) {
	for _, s := range []string{"Makefile", "a.out", "x", "some-long-file-name.tar.gz"} {
		if got := DisplayWidth(s); got != len(s) {
			t.Errorf("DisplayWidth(%q) = %d, want byte length %d", s, got, len(s))
		}
	}
}

func TestDisplayWidthMalformedInput(t *testing.T) {
	// A lone continuation byte and a truncated 4-byte run must not panic and
	// must still produce a width.
	for _, s := range []string{"\x80", "\xF0\x9F", "a\xE2b"} {
		if got := DisplayWidth(s); got < 0 {
			t.Errorf("DisplayWidth(%q) = %d, want non-negative", s, got)
		}
	}
}

func TestPad(t *testing.T) {
	if got := Pad("abc", 6); got != "abc   " {
		t.Errorf("Pad(abc, 6) = %q", got)
	}
	if got := Pad("📁", 4); got != "📁  " {
		t.Errorf("Pad(glyph, 4) = %q", got)
	}
	// Never truncates.
	if got := Pad("abcdef", 3); got != "abcdef" {
		t.Errorf("Pad past target = %q, want input unchanged", got)
	}
}

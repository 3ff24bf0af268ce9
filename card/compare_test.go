// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package card

import (
	"sort"
	"testing"
)

func dir(name string) *Card {
	return &Card{Name: name, IsDir: true, Hidden: name[0] == '.'}
}

func reg(name string) *Card {
	return &Card{Name: name, Hidden: name[0] == '.'}
}

func sortedNames(cards []*Card, less func(a, b *Card) bool) []string {
	sort.SliceStable(cards, func(i, j int) bool { return less(cards[i], cards[j]) })
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
	}
	return names
}

func TestDefaultOrder(t *testing.T) {
	cards := []*Card{
		reg("main.c"),
		dir("src"),
		reg("README.md"),
		reg(".gitignore"),
		dir(".git"),
	}
	got := sortedNames(cards, Less)
	// Hidden dirs, visible dirs, hidden files, then files by extension
	// ascending (c before md), names as tiebreak.
	want := []string{".git", "src", ".gitignore", "main.c", "README.md"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestDefaultOrderNoExtensionSortsLast(t *testing.T) {
	cards := []*Card{reg("Makefile2"), reg("zz.a"), reg("aa.z")}
	got := sortedNames(cards, Less)
	want := []string{"zz.a", "aa.z", "Makefile2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestDefaultOrderDirectoriesIgnoreExtension(t *testing.T) {
	// "b.tar" would sort before "a" if directories were extension-compared.
	cards := []*Card{dir("b.tar"), dir("a")}
	got := sortedNames(cards, Less)
	if got[0] != "a" || got[1] != "b.tar" {
		t.Fatalf("directory order = %v, want [a b.tar]", got)
	}
}

func TestDefaultOrderDirectoriesAlwaysFirst(t *testing.T) {
	cards := []*Card{reg("aaa.a"), dir("zzz")}
	got := sortedNames(cards, Less)
	if got[0] != "zzz" {
		t.Fatalf("order = %v, want directory first", got)
	}
}

func TestDefaultOrderIsStrictWeakOrder(t *testing.T) {
	cards := []*Card{
		dir(".git"), dir("src"), dir("vendor"),
		reg(".gitignore"), reg("a.c"), reg("b.c"), reg("a.md"),
		reg("Makefile2"), reg("makefile2"), reg("zz"),
	}
	// Irreflexivity and asymmetry.
	for _, a := range cards {
		if Less(a, a) {
			t.Fatalf("Less(%q, %q) is true", a.Name, a.Name)
		}
		for _, b := range cards {
			if a != b && Less(a, b) && Less(b, a) {
				t.Fatalf("Less not asymmetric for %q / %q", a.Name, b.Name)
			}
		}
	}
	// Transitivity over all triples.
	for _, a := range cards {
		for _, b := range cards {
			for _, c := range cards {
				if Less(a, b) && Less(b, c) && !Less(a, c) {
					t.Fatalf("transitivity broken: %q < %q < %q", a.Name, b.Name, c.Name)
				}
			}
		}
	}
	// Distinct names never compare equal.
	for _, a := range cards {
		for _, b := range cards {
			if a.Name != b.Name && !Less(a, b) && !Less(b, a) {
				t.Fatalf("%q and %q compare equal", a.Name, b.Name)
			}
		}
	}
}

func TestDefaultOrderIdempotent(t *testing.T) {
	cards := []*Card{dir(".git"), dir("src"), reg(".gitignore"), reg("main.c"), reg("README.md")}
	first := sortedNames(cards, Less)
	second := sortedNames(cards, Less)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("re-sort changed order: %v vs %v", first, second)
		}
	}
}

func TestDetailedOrder(t *testing.T) {
	cards := []*Card{
		{Name: "small.bin", Size: 10},
		{Name: "big.bin", Size: 5000},
		{Name: "lib", IsDir: true, Subdirs: 1},
		{Name: "src", IsDir: true, Subdirs: 7},
		{Name: "mid.bin", Size: 300},
	}
	got := sortedNames(cards, DetailedLess)
	want := []string{"src", "lib", "big.bin", "mid.bin", "small.bin"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestDetailedOrderNameTiebreak(t *testing.T) {
	cards := []*Card{
		{Name: "b.dat", Size: 100},
		{Name: "a.dat", Size: 100},
	}
	got := sortedNames(cards, DetailedLess)
	if got[0] != "a.dat" {
		t.Fatalf("equal sizes order = %v, want name order", got)
	}
}

func TestExtension(t *testing.T) {
	cases := map[string]string{
		"main.c":     "c",
		"a.TAR":      "tar",
		".gitignore": "",
		"Makefile":   "",
		"dot.":       "",
		"x.y.z":      "z",
	}
	for name, want := range cases {
		if got := Extension(name); got != want {
			t.Errorf("Extension(%q) = %q, want %q", name, got, want)
		}
	}
}

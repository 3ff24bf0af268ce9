// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: card/compare.go
// Summary: The two total display orders: grid view and detailed view.

package card

import "strings"

// Less is the default (grid view) order:
//  1. directories before files,
//  2. hidden entries before visible ones within each class,
//  3. files by case-insensitive extension, entries without an extension last
//     (directories are never compared by extension),
//  4. case-insensitive name, with a byte-wise tiebreak so distinct names
//     never compare equal.
func Less(a, b *Card) bool {
	if a.IsDir != b.IsDir {
		return a.IsDir
	}
	if a.Hidden != b.Hidden {
		return a.Hidden
	}
	if !a.IsDir {
		extA, extB := Extension(a.Name), Extension(b.Name)
		if extA != extB {
			if extA == "" {
				return false
			}
			if extB == "" {
				return true
			}
			return extA < extB
		}
	}
	return nameLess(a.Name, b.Name)
}

// DetailedLess is the long-listing order: directories first, ordered by
// direct subdirectory count descending; files by size descending; names as
// the final tiebreak.
func DetailedLess(a, b *Card) bool {
	if a.IsDir != b.IsDir {
		return a.IsDir
	}
	if a.IsDir {
		if a.Subdirs != b.Subdirs {
			return a.Subdirs > b.Subdirs
		}
		return nameLess(a.Name, b.Name)
	}
	if a.Size != b.Size {
		return a.Size > b.Size
	}
	return nameLess(a.Name, b.Name)
}

// nameLess orders case-insensitively, falling back to a byte comparison so
// that names differing only in case still have a decisive order.
func nameLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scan/source.go
// Summary: Bounded, read-only content access for the classifier's probes.

package scan

import (
	"bytes"
	"io"
	"os"
)

// fileSource adapts a file path to glyph.Source. Every probe is a fresh
// bounded read; errors propagate so the cascade can treat them as no-match.
type fileSource string

func (p fileSource) FirstLine(max int) (string, error) {
	buf, err := p.Sample(max)
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(buf, '\n'); i >= 0 {
		buf = buf[:i]
	}
	return string(buf), nil
}

func (p fileSource) Sample(max int) ([]byte, error) {
	f, err := os.Open(string(p))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, max)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return buf[:n], nil
}

// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/glint/main.go
// Summary: CLI entry point: flag handling and the list/long/analytics pipelines.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/framegrace/glint/card"
	"github.com/framegrace/glint/config"
	"github.com/framegrace/glint/gitstatus"
	"github.com/framegrace/glint/grid"
	"github.com/framegrace/glint/report"
	"github.com/framegrace/glint/scan"
)

const version = "1.2.0"

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 80

var (
	pathStyle   = lipgloss.NewStyle().Bold(true)
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dirtyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "glint: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("glint", flag.ContinueOnError)
	fs.Usage = func() { printHelp(fs.Output()) }

	var (
		showHelp      bool
		showVersion   bool
		showLong      bool
		showAnalytics bool
	)
	fs.BoolVar(&showHelp, "h", false, "display help and exit")
	fs.BoolVar(&showHelp, "help", false, "display help and exit")
	fs.BoolVar(&showVersion, "v", false, "output version information and exit")
	fs.BoolVar(&showVersion, "version", false, "output version information and exit")
	fs.BoolVar(&showLong, "l", false, "display detailed directory listing")
	fs.BoolVar(&showLong, "long", false, "display detailed directory listing")
	fs.BoolVar(&showAnalytics, "a", false, "display directory analytics")
	fs.BoolVar(&showAnalytics, "analytics", false, "display directory analytics")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return fmt.Errorf("try 'glint --help' for more information")
	}

	switch {
	case showHelp:
		printHelp(os.Stdout)
		return nil
	case showVersion:
		fmt.Printf("glint version %s\n", version)
		return nil
	}

	dir := "."
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("cannot access '%s': no such file or directory", dir)
		}
		return fmt.Errorf("cannot access '%s': %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("'%s' is not a directory", dir)
	}

	switch {
	case showLong:
		return report.ListLong(os.Stdout, dir)
	case showAnalytics:
		sum, err := report.Analyze(dir)
		if err != nil {
			return err
		}
		report.Render(os.Stdout, abs, sum)
		return nil
	default:
		return listGrid(dir, abs)
	}
}

// listGrid runs the default pipeline: collect, classify, annotate, sort,
// lay out and print.
func listGrid(dir, abs string) error {
	override := config.For(abs)

	cards, err := scan.Collect(dir, scan.Options{Device: override.Device})
	if err != nil {
		return err
	}

	status := gitstatus.Collect(dir)
	status.Annotate(dir, cards)

	sort.SliceStable(cards, func(i, j int) bool {
		return card.Less(&cards[i], &cards[j])
	})

	printHeader(abs, status)

	cells := make([]grid.Cell, len(cards))
	for i := range cards {
		cells[i] = cellFor(&cards[i])
	}
	geom := grid.Layout(cells, terminalWidth(), override.MaxColumns)
	for _, row := range grid.Render(cells, geom, paintTag) {
		fmt.Println(row)
	}
	return nil
}

// cellFor maps one card to a renderable cell. Directories that only contain
// modified descendants are tagged with an asterisk.
func cellFor(c *card.Card) grid.Cell {
	cell := grid.Cell{Glyph: c.Glyph, Name: c.Name, Tag: c.Status}
	if cell.Tag == 0 && c.ContainsModified {
		cell.Tag = '*'
	}
	return cell
}

// paintTag colors a status marker: green for git status runes, yellow for
// the modified-descendant asterisk.
func paintTag(tag byte) string {
	style := statusStyle
	if tag == '*' {
		style = dirtyStyle
	}
	return "(" + style.Render(string(rune(tag))) + ")"
}

func printHeader(abs string, status *gitstatus.Status) {
	if status != nil && status.Branch != "" {
		fmt.Printf("%s (%s)\n", pathStyle.Render(abs), branchStyle.Render(status.Branch))
		return
	}
	fmt.Println(pathStyle.Render(abs))
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, `Usage: glint [OPTION] [DIRECTORY]
List directory contents with colorful glyphs.

Options:
  -h, --help       display this help and exit
  -v, --version    output version information and exit
  -l, --long       display detailed directory listing
  -a, --analytics  display directory analytics

If DIRECTORY is not specified, the current directory is used.
`)
}

// Package tree renders a directory structure as a textual tree listing, using
// box-drawing connectors, and frames such listings for display.
package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	connectorBranch = "├── "
	connectorLast   = "└── "
	prefixBranch    = "│   "
	prefixLast      = "    "
)

type osProvider interface {
	ReadDir(name string) ([]os.DirEntry, error)
}

// frameStyle is the style of the box drawn by [Frame].
//
//nolint:gochecknoglobals
var frameStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	Padding(0, 1)

// Build returns the display lines for all elements below root. The entries
// of each directory are listed in sorted order, the last entry of a
// directory with a terminal connector and all others with a branch
// connector. Directories are descended into right after their own line.
func Build(osHandler osProvider, root string) ([]string, error) {
	lines := []string{}

	if err := build(osHandler, root, "", &lines); err != nil {
		return nil, fmt.Errorf("(tree) %w", err)
	}

	return lines, nil
}

func build(osHandler osProvider, dir string, prefix string, lines *[]string) error {
	entries, err := osHandler.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to readdir: %w", err)
	}

	for idx, entry := range entries {
		isLast := idx == len(entries)-1

		connector := connectorBranch
		childPrefix := prefixBranch
		if isLast {
			connector = connectorLast
			childPrefix = prefixLast
		}

		*lines = append(*lines, prefix+connector+entry.Name())

		if entry.IsDir() {
			if err := build(osHandler, filepath.Join(dir, entry.Name()), prefix+childPrefix, lines); err != nil {
				return err
			}
		}
	}

	return nil
}

// Frame returns the given lines enclosed in a box. All lines are padded to
// the width of the widest line.
func Frame(lines []string) string {
	return frameStyle.Render(strings.Join(lines, "\n"))
}

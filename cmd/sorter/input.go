package main

import (
	"fmt"

	"github.com/desertwitch/recursion/internal/prompt"
)

const (
	sourcePrompt = "Enter the source directory path: "
	destPrompt   = "Enter the destination directory path (or press Enter for '%s'): "
)

// resolvePaths returns the source and destination paths, asking for those
// that were not given as flags. A blank destination falls back to
// defaultDest.
func resolvePaths(p *prompt.Prompter, src string, dst string, defaultDest string) (string, string, error) {
	var err error

	if src == "" {
		if src, err = p.Ask(sourcePrompt); err != nil {
			return "", "", err
		}
	}

	if dst == "" {
		if dst, err = p.Ask(fmt.Sprintf(destPrompt, defaultDest)); err != nil {
			return "", "", err
		}
	}

	if dst == "" {
		dst = defaultDest
	}

	return src, dst, nil
}

//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Generate builds the CLI and runs it on one PDF, writing the JSON study
// aids to outputs/.
func Generate(pdf string) error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "run", pdf)
}

// Package pkg carries module-wide identity constants and the embedded
// version string.
package pkg

import (
	_ "embed"
)

// Version is the semantic version of the setcomp module embedded at build
// time.
//
//go:embed VERSION
var Version string //nolint:gochecknoglobals

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "setcomp"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Constant manifest compiler"
)

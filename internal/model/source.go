// Package model defines the value types shared by the scan, resolve and copy stages.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// String implements fmt.Stringer.
func (p Path) String() string {
	return string(p)
}

// SourceUnit is one compilable source file discovered under the source root.
type SourceUnit struct {
	Rel Path // relative to the source root
	Abs Path
}

// Stem returns the base name of the unit without its extension.
func (u SourceUnit) Stem() string {
	base := filepath.Base(string(u.Rel))

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Package returns the directory of the unit relative to the source root.
// Units located directly in the root have an empty package.
func (u SourceUnit) Package() Path {
	dir := filepath.Dir(string(u.Rel))
	if dir == "." {
		return ""
	}

	return Path(dir)
}

// ArtifactMatch associates a source unit with the compiled files produced from it.
type ArtifactMatch struct {
	Unit      SourceUnit
	Artifacts []Path
}

package domain

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/classpick/internal/adapter"
	m "github.com/mouse-blink/classpick/internal/model"
)

// Resolver locates the class files compiled from a source unit.
type Resolver interface {
	// Resolve returns every artifact in the package directory mirroring
	// unitRel under artifactRoot whose stem equals the unit's stem or starts
	// with the stem followed by the nested-unit separator. A missing package
	// directory yields an empty result and no error.
	Resolve(artifactRoot m.Path, unitRel m.Path) ([]m.Path, error)
}

type resolver struct {
	fsAdapter adapter.SourceFSAdapter
	layout    Layout
}

// NewResolver returns a Resolver using the extensions and separator of layout.
func NewResolver(fsAdapter adapter.SourceFSAdapter, layout Layout) Resolver {
	return &resolver{
		fsAdapter: fsAdapter,
		layout:    layout.withDefaults(),
	}
}

func (r *resolver) Resolve(artifactRoot m.Path, unitRel m.Path) ([]m.Path, error) {
	unit := m.SourceUnit{Rel: unitRel}
	packageDir := r.fsAdapter.JoinPath(string(artifactRoot), string(unit.Package()))

	info, err := r.fsAdapter.FileInfo(packageDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []m.Path{}, nil
		}

		return nil, &TraversalError{Path: packageDir, Err: err}
	}

	if !info.IsDir() {
		return []m.Path{}, nil
	}

	stem := unit.Stem()
	nestedPrefix := stem + r.layout.Separator
	matches := []m.Path{}

	err = r.fsAdapter.Walk(packageDir, false, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return &TraversalError{Path: m.Path(path), Err: err}
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		name := entry.Name()
		if filepath.Ext(name) != r.layout.ArtifactExt {
			return nil
		}

		base := strings.TrimSuffix(name, r.layout.ArtifactExt)
		if base == stem || strings.HasPrefix(base, nestedPrefix) {
			matches = append(matches, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}

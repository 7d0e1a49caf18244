package domain

import (
	"io/fs"
	"path/filepath"

	"github.com/mouse-blink/classpick/internal/adapter"
	m "github.com/mouse-blink/classpick/internal/model"
)

// Scanner partitions a source tree into source units and other files.
type Scanner interface {
	Scan(root m.Path) ([]m.SourceUnit, []m.Path, error)
}

type scanner struct {
	fsAdapter adapter.SourceFSAdapter
	sourceExt string
}

// NewScanner returns a Scanner that recognizes source units by layout.SourceExt.
func NewScanner(fsAdapter adapter.SourceFSAdapter, layout Layout) Scanner {
	return &scanner{
		fsAdapter: fsAdapter,
		sourceExt: layout.withDefaults().SourceExt,
	}
}

// Scan walks root depth-first in lexical order. Only regular files are
// classified; the returned other files are absolute paths. Any unreadable
// directory aborts the scan with a *TraversalError.
func (s *scanner) Scan(root m.Path) ([]m.SourceUnit, []m.Path, error) {
	var (
		units  []m.SourceUnit
		others []m.Path
	)

	err := s.fsAdapter.Walk(root, true, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return &TraversalError{Path: m.Path(path), Err: err}
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		if filepath.Ext(entry.Name()) != s.sourceExt {
			others = append(others, m.Path(path))
			return nil
		}

		rel, err := s.fsAdapter.RelPath(root, m.Path(path))
		if err != nil {
			return &TraversalError{Path: m.Path(path), Err: err}
		}

		units = append(units, m.SourceUnit{Rel: rel, Abs: m.Path(path)})

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return units, others, nil
}

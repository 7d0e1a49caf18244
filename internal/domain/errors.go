package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/classpick/internal/model"
)

// Error kinds. Match them with errors.Is; the typed errors below carry the
// offending path.
var (
	ErrTraversal          = errors.New("directory traversal failed")
	ErrUnresolvedUnit     = errors.New("no class files found for source unit")
	ErrMalformedArtifact  = errors.New("malformed class file header")
	ErrInvalidMagicNumber = errors.New("invalid class file magic number")
	ErrCopy               = errors.New("copy failed")
	ErrRoot               = errors.New("invalid root directory")
	ErrNothingDecoded     = errors.New("no class file could be decoded")
)

// TraversalError reports a directory that could not be enumerated.
type TraversalError struct {
	Path m.Path
	Err  error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *TraversalError) Unwrap() []error {
	return []error{ErrTraversal, e.Err}
}

// UnresolvedUnitError reports the first source unit without class files.
type UnresolvedUnitError struct {
	Unit       m.Path
	PackageDir m.Path
}

func (e *UnresolvedUnitError) Error() string {
	return fmt.Sprintf("no class files found for %s in %s", e.Unit, e.PackageDir)
}

func (e *UnresolvedUnitError) Unwrap() error {
	return ErrUnresolvedUnit
}

// ArtifactError reports a class file whose header could not be decoded.
type ArtifactError struct {
	Path m.Path
	Err  error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}

// CopyError reports a failed file duplication.
type CopyError struct {
	Src m.Path
	Dst m.Path
	Err error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s -> %s: %v", e.Src, e.Dst, e.Err)
}

func (e *CopyError) Unwrap() []error {
	return []error{ErrCopy, e.Err}
}

// RootError reports a missing or unusable input root.
type RootError struct {
	Role string
	Path m.Path
	Err  error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("%s root %s: %v", e.Role, e.Path, e.Err)
}

func (e *RootError) Unwrap() []error {
	return []error{ErrRoot, e.Err}
}

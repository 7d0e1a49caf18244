// Package adapter contains filesystem and persistence adapters for the classpick CLI.
package adapter

import (
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/classpick/internal/model"
	"github.com/zeebo/blake3"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning source and class trees. It intentionally hides direct
// `os` access so the workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses the provided root path in lexical order. When recursive is
	// false the implementation limits itself to the direct children of root.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ReadPrefix reads at most n bytes from the start of the file. A file
	// shorter than n yields the bytes available and no error.
	ReadPrefix(path m.Path, n int) ([]byte, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// CopyFile duplicates src at dst, creating parent directories of dst as
	// needed, and returns the number of bytes written.
	CopyFile(src, dst m.Path) (int64, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// HashFile returns a stable BLAKE3 fingerprint for the file at path.
	HashFile(path m.Path) (string, error)

	// AbsPath expands a leading ~ and returns the absolute form of path.
	AbsPath(path m.Path) (m.Path, error)

	// RealPath returns the absolute, symlink-free form of path. Elements
	// that do not exist yet are appended unresolved.
	RealPath(path m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.WalkDir. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, entry fs.DirEntry, err error) error

// LocalSourceFSAdapter is the os-backed implementation of SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over entries under root, optionally descending into subdirectories.
// A symlinked root is followed and paths are still reported under root.
// Symlinks below the root are reported as entries but never followed.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	walkRoot := rootStr
	if resolved, err := filepath.EvalSymlinks(rootStr); err == nil {
		walkRoot = resolved
	}

	return filepath.WalkDir(walkRoot, func(path string, entry fs.DirEntry, err error) error {
		reported := path
		if walkRoot != rootStr {
			if rel, relErr := filepath.Rel(walkRoot, path); relErr == nil {
				reported = filepath.Join(rootStr, rel)
			}
		}

		if err != nil {
			return fn(reported, entry, err)
		}

		if entry.IsDir() && !recursive && path != walkRoot {
			return filepath.SkipDir
		}

		return fn(reported, entry, nil)
	})
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadPrefix reads up to n bytes from the beginning of the file.
func (a *LocalSourceFSAdapter) ReadPrefix(path m.Path, n int) ([]byte, error) {
	// #nosec G304 - path comes from the class tree being inspected
	f, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, n)

	read, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}

	return buf[:read], nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// CopyFile copies a single file, keeping its permission bits.
func (a *LocalSourceFSAdapter) CopyFile(src, dst m.Path) (int64, error) {
	// #nosec G304 - src is a file discovered under a user-selected root
	sourceFile, err := os.Open(string(src))
	if err != nil {
		return 0, err
	}

	defer func() { _ = sourceFile.Close() }()

	info, err := sourceFile.Stat()
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(string(dst)), 0o750); err != nil {
		return 0, err
	}

	// #nosec G304 - dst is derived from the output root
	destFile, err := os.OpenFile(string(dst), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(destFile, sourceFile)
	if err != nil {
		_ = destFile.Close()
		return written, err
	}

	if err := destFile.Close(); err != nil {
		return written, err
	}

	return written, os.Chmod(string(dst), info.Mode().Perm())
}

// MkdirAll creates path and any missing parents.
func (a *LocalSourceFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// HashFile returns the hex-encoded BLAKE3 digest of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	// #nosec G304 - path is a file this tool just copied
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// AbsPath resolves a user supplied path, expanding a leading ~ to the home directory.
func (a *LocalSourceFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	pathStr := string(path)

	if strings.HasPrefix(pathStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(pathStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		pathStr = filepath.Join(home, suffix)
	}

	if pathStr == "" {
		pathStr = "."
	}

	abs, err := filepath.Abs(pathStr)
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// RealPath returns the absolute path with every symlink resolved. Missing
// trailing elements are kept as given, so the result is defined for a
// directory that does not exist yet.
func (a *LocalSourceFSAdapter) RealPath(path m.Path) (m.Path, error) {
	abs, err := a.AbsPath(path)
	if err != nil {
		return "", err
	}

	existing := string(abs)
	var missing []string

	for {
		resolved, err := filepath.EvalSymlinks(existing)
		if err == nil {
			parts := append([]string{resolved}, missing...)
			return m.Path(filepath.Join(parts...)), nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}

		parent := filepath.Dir(existing)
		if parent == existing {
			return abs, nil
		}

		missing = append([]string{filepath.Base(existing)}, missing...)
		existing = parent
	}
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

package adapter

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/classpick/internal/model"
)

// ManifestStore persists and retrieves run manifests.
type ManifestStore interface {
	Save(path m.Path, manifest m.Manifest) error
	Load(path m.Path) (m.Manifest, error)
}

// LocalManifestStore writes manifests as YAML through a SourceFSAdapter.
type LocalManifestStore struct {
	fs SourceFSAdapter
}

// NewManifestStore constructs a ManifestStore backed by fsAdapter.
func NewManifestStore(fsAdapter SourceFSAdapter) *LocalManifestStore {
	return &LocalManifestStore{fs: fsAdapter}
}

// Save encodes manifest as YAML and writes it to path.
func (s *LocalManifestStore) Save(path m.Path, manifest m.Manifest) error {
	if path == "" {
		return errors.New("manifest path is empty")
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := s.fs.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}

	return nil
}

// Load reads and decodes the manifest stored at path.
func (s *LocalManifestStore) Load(path m.Path) (m.Manifest, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return m.Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	return manifest, nil
}

package domain

import (
	"path/filepath"
	"testing"

	"github.com/mouse-blink/classpick/internal/adapter"
	m "github.com/mouse-blink/classpick/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  []byte
		want    m.VersionRecord
		wantErr error
	}{
		{
			name:   "jdk 8",
			header: []byte{0xCA, 0xFE, 0xBA, 0xBE, 0x00, 0x00, 0x00, 0x34},
			want:   m.VersionRecord{Major: 52, Minor: 0},
		},
		{
			name:   "minor and major are big endian",
			header: []byte{0xCA, 0xFE, 0xBA, 0xBE, 0x01, 0x02, 0x00, 0x41, 0xFF},
			want:   m.VersionRecord{Major: 65, Minor: 0x0102},
		},
		{
			name:    "empty",
			header:  nil,
			wantErr: ErrMalformedArtifact,
		},
		{
			name:    "seven bytes",
			header:  []byte{0xCA, 0xFE, 0xBA, 0xBE, 0x00, 0x00, 0x00},
			wantErr: ErrMalformedArtifact,
		},
		{
			name:    "wrong magic",
			header:  []byte{0xCA, 0xFE, 0xBA, 0xBF, 0x00, 0x00, 0x00, 0x34},
			wantErr: ErrInvalidMagicNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecoder_DecodeVersion(t *testing.T) {
	root := t.TempDir()
	decoder := NewDecoder(adapter.NewLocalSourceFSAdapter())

	t.Run("jdk 8 header", func(t *testing.T) {
		path := filepath.Join(root, "A.class")
		writeFile(t, path, []byte{0xCA, 0xFE, 0xBA, 0xBE, 0x00, 0x00, 0x00, 0x34, 0x00, 0x1D})

		got, err := decoder.DecodeVersion(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, m.VersionRecord{Minor: 0, Major: 52}, got)
		assert.Equal(t, "JDK 8", got.Label())
	})

	t.Run("invalid magic names the path", func(t *testing.T) {
		path := filepath.Join(root, "Bad.class")
		writeFile(t, path, []byte("not a class file"))

		_, err := decoder.DecodeVersion(m.Path(path))
		require.ErrorIs(t, err, ErrInvalidMagicNumber)

		var artifactErr *ArtifactError
		require.ErrorAs(t, err, &artifactErr)
		assert.Equal(t, m.Path(path), artifactErr.Path)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("truncated file is malformed", func(t *testing.T) {
		path := filepath.Join(root, "Short.class")
		writeFile(t, path, []byte{0xCA, 0xFE, 0xBA})

		_, err := decoder.DecodeVersion(m.Path(path))
		assert.ErrorIs(t, err, ErrMalformedArtifact)
	})

	t.Run("empty file is malformed", func(t *testing.T) {
		path := filepath.Join(root, "Empty.class")
		writeFile(t, path, nil)

		_, err := decoder.DecodeVersion(m.Path(path))
		assert.ErrorIs(t, err, ErrMalformedArtifact)
	})

	t.Run("unknown major still decodes", func(t *testing.T) {
		path := filepath.Join(root, "Future.class")
		writeFile(t, path, classHeader(999, 0))

		got, err := decoder.DecodeVersion(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, uint16(999), got.Major)
		assert.Contains(t, got.Label(), "999")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := decoder.DecodeVersion(m.Path(filepath.Join(root, "Missing.class")))
		var artifactErr *ArtifactError
		assert.ErrorAs(t, err, &artifactErr)
	})
}

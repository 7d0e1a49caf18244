package domain

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/mouse-blink/classpick/internal/adapter"
	m "github.com/mouse-blink/classpick/internal/model"
)

// HeaderSize is the number of leading bytes a class file header occupies.
const HeaderSize = 8

var classMagic = []byte{0xCA, 0xFE, 0xBA, 0xBE}

// Decoder reads the version record stored in a class file header.
type Decoder interface {
	DecodeVersion(path m.Path) (m.VersionRecord, error)
}

type decoder struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewDecoder returns a Decoder reading files through fsAdapter.
func NewDecoder(fsAdapter adapter.SourceFSAdapter) Decoder {
	return &decoder{fsAdapter: fsAdapter}
}

// DecodeVersion reads the first HeaderSize bytes of path and decodes them.
// The returned error is always an *ArtifactError naming path.
func (d *decoder) DecodeVersion(path m.Path) (m.VersionRecord, error) {
	header, err := d.fsAdapter.ReadPrefix(path, HeaderSize)
	if err != nil {
		return m.VersionRecord{}, &ArtifactError{Path: path, Err: err}
	}

	record, err := DecodeHeader(header)
	if err != nil {
		return m.VersionRecord{}, &ArtifactError{Path: path, Err: err}
	}

	return record, nil
}

// DecodeHeader parses the magic number and version fields of a class file
// header. Bytes past HeaderSize are ignored.
func DecodeHeader(header []byte) (m.VersionRecord, error) {
	if len(header) < HeaderSize {
		return m.VersionRecord{}, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedArtifact, len(header), HeaderSize)
	}

	if !bytes.Equal(header[:4], classMagic) {
		return m.VersionRecord{}, fmt.Errorf("%w: % X", ErrInvalidMagicNumber, header[:4])
	}

	return m.VersionRecord{
		Minor: binary.BigEndian.Uint16(header[4:6]),
		Major: binary.BigEndian.Uint16(header[6:8]),
	}, nil
}

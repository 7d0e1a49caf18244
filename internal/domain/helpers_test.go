package domain

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, contents []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, contents, 0o644))
}

// classHeader returns a minimal class file with the given version fields.
func classHeader(major, minor uint16) []byte {
	return []byte{
		0xCA, 0xFE, 0xBA, 0xBE,
		byte(minor >> 8), byte(minor),
		byte(major >> 8), byte(major),
		0x00, 0x10, // trailing bytes are never read
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

package interpreter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unit.ryc")
	require.NoError(t, os.WriteFile(path, []byte{0x0A, 0xFF, 0x00}, 0o644))

	code, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0A, 0xFF, 0x00}, code)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nowhere.ryc"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load compiled unit")
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, []byte{0x0A, 0xFF, 0x00}))
	assert.Equal(t, "Got: A\nGot: FF\nGot: 0\n", buf.String())
}

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/vdfkit/pkg/types"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.bin")
	want := []byte{0x00, 'r', 0x00, 0x08, 0x08}
	require.NoError(t, os.WriteFile(path, want, 0o644))

	f, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, want, f.Bytes())
	assert.Equal(t, len(want), f.Len())

	require.NoError(t, f.Close())
	require.NoError(t, f.Close(), "second close is a no-op")
	assert.Nil(t, f.Bytes())
}

func TestOpen_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	f, err := Open(path)
	require.NoError(t, err)
	assert.Empty(t, f.Bytes())
	require.NoError(t, f.Close())
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrKindIO))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Open(dir)
	assert.True(t, types.IsKind(err, types.ErrKindUnsupported))
}

func TestNilFile(t *testing.T) {
	var f *File
	assert.Nil(t, f.Bytes())
	assert.NoError(t, f.Close())
}

package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileSystemExists(t *testing.T) {
	root := t.TempDir()
	bundle := filepath.Join(root, "Bolts.framework")
	require.NoError(t, os.MkdirAll(bundle, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bundle, "Bolts"), []byte("macho"), 0o644))

	adapter := NewLocalFileSystemAdapter()
	assert.True(t, adapter.Exists(bundle))
	assert.True(t, adapter.Exists(filepath.Join(bundle, "Bolts")))
	assert.False(t, adapter.Exists(filepath.Join(root, "Missing.framework")))
	assert.False(t, adapter.Exists(filepath.Join(bundle, "Bolts", "not", "a", "dir")))
}

func TestLocalFileSystemListDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Parse.framework"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Bolts.framework"), 0o755))

	names, err := NewLocalFileSystemAdapter().ListDir(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bolts.framework", "Parse.framework"}, names)
}

func TestLocalFileSystemListDirMissing(t *testing.T) {
	_, err := NewLocalFileSystemAdapter().ListDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

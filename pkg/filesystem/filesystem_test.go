package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/exticons/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.svg")
	testContent := []byte("<svg/>")

	err := fs.WriteFile(testFile, testContent, 0644)
	require.NoError(t, err)

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.svg", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(tmpDir, "sub", "dir")
	require.NoError(t, fs.MkdirAll(subDir, 0755))

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2) // test.svg and sub/

	renamed := filepath.Join(tmpDir, "renamed.svg")
	require.NoError(t, fs.Rename(testFile, renamed))

	require.NoError(t, fs.Remove(renamed))
	_, err = fs.Stat(renamed)
	assert.True(t, os.IsNotExist(err))
}

func TestAferoFS(t *testing.T) {
	fs := NewMemory()

	require.NoError(t, fs.MkdirAll("/icons/solid", 0755))
	require.NoError(t, fs.WriteFile("/icons/solid/pdf.svg", []byte("pdf"), 0644))

	content, err := fs.ReadFile("/icons/solid/pdf.svg")
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(content))

	_, err = fs.ReadFile("/icons/solid")
	assert.Error(t, err, "reading a directory should fail")

	entries, err := fs.ReadDir("/icons/solid")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "pdf.svg", entries[0].Name())
}

func TestExists(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.WriteFile("/a.svg", []byte("a"), 0644))

	ok, err := Exists(fs, "/a.svg")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(fs, "/missing.svg")
	require.NoError(t, err)
	assert.False(t, ok)
}

// failingRenameFS refuses every rename so the atomic write has to roll back.
type failingRenameFS struct {
	types.FS
}

func (f failingRenameFS) Rename(oldpath, newpath string) error {
	return errors.New("rename refused")
}

func TestWriteFileAtomic(t *testing.T) {
	t.Run("creates new file", func(t *testing.T) {
		fs := NewMemory()
		require.NoError(t, fs.MkdirAll("/out", 0755))

		require.NoError(t, WriteFileAtomic(fs, "/out/png.svg", []byte("new"), 0644))

		content, err := fs.ReadFile("/out/png.svg")
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
		assertNoTempFiles(t, fs, "/out")
	})

	t.Run("replaces existing file", func(t *testing.T) {
		fs := NewMemory()
		require.NoError(t, fs.MkdirAll("/out", 0755))
		require.NoError(t, fs.WriteFile("/out/png.svg", []byte("old"), 0644))

		require.NoError(t, WriteFileAtomic(fs, "/out/png.svg", []byte("new"), 0644))

		content, err := fs.ReadFile("/out/png.svg")
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
		assertNoTempFiles(t, fs, "/out")
	})

	t.Run("failed rename keeps previous content", func(t *testing.T) {
		base := NewMemory()
		require.NoError(t, base.MkdirAll("/out", 0755))
		require.NoError(t, base.WriteFile("/out/png.svg", []byte("old"), 0644))

		err := WriteFileAtomic(failingRenameFS{FS: base}, "/out/png.svg", []byte("new"), 0644)
		require.Error(t, err)

		content, err := base.ReadFile("/out/png.svg")
		require.NoError(t, err)
		assert.Equal(t, "old", string(content))
		assertNoTempFiles(t, base, "/out")
	})

	t.Run("read-only filesystem fails without artifacts", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		require.NoError(t, mem.MkdirAll("/out", 0755))
		fs := NewAferoFS(afero.NewReadOnlyFs(mem))

		err := WriteFileAtomic(fs, "/out/png.svg", []byte("new"), 0644)
		require.Error(t, err)

		ok, err := Exists(fs, "/out/png.svg")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func assertNoTempFiles(t *testing.T, fs types.FS, dir string) {
	t.Helper()
	entries, err := fs.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.Contains(e.Name(), ".tmp-"), "leftover temp file %s", e.Name())
	}
}

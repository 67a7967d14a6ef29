package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/exticons/pkg/filesystem"
	"github.com/stretchr/testify/assert"
)

func TestNewProject(t *testing.T) {
	fsys := filesystem.NewMemory()

	p := NewProject(t, fsys, "/proj", `{"PNG":"#f00"}`, map[string]string{
		"solid":   SolidTemplate,
		"outline": OutlineTemplate,
	})

	AssertFileContent(t, fsys, p.Mapping, `{"PNG":"#f00"}`)
	AssertFileContent(t, fsys, filepath.Join(p.Templates, "template_solid.svg"), SolidTemplate)
	assert.True(t, FileExists(t, fsys, filepath.Join(p.Templates, "template_outline.svg")))
	AssertNoFile(t, fsys, p.Output)
	assert.Equal(t, filepath.Join("/proj", "icons", "solid", "png.svg"), p.Icon("solid", "png"))
}

func TestHelpersOnOS(t *testing.T) {
	fsys := filesystem.NewOS()
	dir := t.TempDir()

	path := CreateFile(t, fsys, filepath.Join(dir, "a", "b", "c.txt"), "hello")
	assert.Equal(t, "hello", ReadFile(t, fsys, path))
	assert.False(t, FileExists(t, fsys, filepath.Join(dir, "a")), "directories are not files")
	AssertNoFile(t, fsys, filepath.Join(dir, "missing"))
}

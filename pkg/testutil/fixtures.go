package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/exticons/pkg/types"
)

// Templates used across tests.
const (
	SolidTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="32" height="40">
  <path d="M0 0h24l8 8v32H0z" fill="{color}"/>
  <text x="16" y="32" font-size="{font_size}" text-anchor="middle" fill="#fff">{extension}</text>
</svg>
`
	OutlineTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 40">
  <path d="M1 1h22l8 8v30H1z" fill="none" stroke="{color}"/>
  <text x="16" y="32" font-size="{font_size}" text-anchor="middle" fill="{color}">{extension}</text>
</svg>
`
	// BrokenTemplate lacks the font size placeholder.
	BrokenTemplate = `<svg xmlns="http://www.w3.org/2000/svg"><path fill="{color}"/><text>{extension}</text></svg>`
)

// Project is an exticons working directory laid out the default way.
type Project struct {
	Root      string
	Mapping   string
	Templates string
	Output    string
}

// NewProject writes mapping to root/extensions.json and every template to
// root/templates/template_<style>.svg. Output is root/icons, not created.
func NewProject(t *testing.T, fsys types.FS, root, mapping string, templates map[string]string) Project {
	t.Helper()

	p := Project{
		Root:      root,
		Mapping:   filepath.Join(root, "extensions.json"),
		Templates: filepath.Join(root, "templates"),
		Output:    filepath.Join(root, "icons"),
	}
	CreateFile(t, fsys, p.Mapping, mapping)
	CreateDir(t, fsys, p.Templates)

	styles := make([]string, 0, len(templates))
	for style := range templates {
		styles = append(styles, style)
	}
	sort.Strings(styles)
	for _, style := range styles {
		p.AddTemplate(t, fsys, style, templates[style])
	}
	return p
}

// AddTemplate writes template_<style>.svg into the templates directory.
func (p Project) AddTemplate(t *testing.T, fsys types.FS, style, content string) string {
	t.Helper()
	return CreateFile(t, fsys, filepath.Join(p.Templates, "template_"+style+".svg"), content)
}

// Icon returns the default output path for label rendered with style.
func (p Project) Icon(style, name string) string {
	return filepath.Join(p.Output, style, name+".svg")
}

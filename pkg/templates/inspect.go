package templates

import (
	"github.com/arthur-debert/exticons/pkg/render"
	"github.com/arthur-debert/exticons/pkg/types"
	"github.com/beevik/etree"
)

// Info describes a template for listing purposes.
type Info struct {
	Path      string
	StyleName string
	Extension string

	// Missing lists the placeholder tokens the template lacks
	Missing []string

	// Width, Height and ViewBox come from the root <svg> element. They stay
	// empty when the template does not parse as XML; that is informational
	// only and never stops a template from rendering.
	Width   string
	Height  string
	ViewBox string
}

// Valid reports whether every placeholder is present.
func (i Info) Valid() bool {
	return len(i.Missing) == 0
}

// Inspect reports placeholder status and the root element's dimensions.
func Inspect(tmpl types.TemplateDescriptor, placeholders render.Placeholders) Info {
	info := Info{
		Path:      tmpl.Path,
		StyleName: tmpl.StyleName,
		Extension: tmpl.Extension,
		Missing:   placeholders.Missing(tmpl.RawText),
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(tmpl.RawText); err != nil {
		return info
	}
	root := doc.Root()
	if root == nil || root.Tag != "svg" {
		return info
	}
	info.Width = root.SelectAttrValue("width", "")
	info.Height = root.SelectAttrValue("height", "")
	info.ViewBox = root.SelectAttrValue("viewBox", "")
	return info
}

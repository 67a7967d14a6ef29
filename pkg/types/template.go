package types

// TemplateDescriptor is one template file loaded from storage.
type TemplateDescriptor struct {
	// Path is where the template was read from
	Path string

	// StyleName is the slug taken from the file name (template_<style>.svg)
	StyleName string

	// Extension is the template's file extension, reused for rendered outputs
	Extension string

	// RawText is the unmodified template content
	RawText string
}

// RenderUnit is a single (template, label) pair ready to be rendered.
type RenderUnit struct {
	Template   *TemplateDescriptor
	Record     string // Name of the owning record
	Label      string
	Color      string
	FontSize   float64
	OutputPath string
}

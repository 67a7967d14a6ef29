package generate

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/exticons/pkg/render"
	"github.com/arthur-debert/exticons/pkg/types"
)

const (
	// DefaultOutputRoot holds one subdirectory per template style.
	DefaultOutputRoot = "icons"

	filePerm = 0644
	dirPerm  = 0755
)

// Options control a generation run.
type Options struct {
	// Force overwrites existing outputs instead of skipping them
	Force bool

	// DryRun counts what would happen without touching storage
	DryRun bool

	// OutputRoot is the directory outputs are written under
	OutputRoot string

	// Flat writes every output directly in OutputRoot instead of
	// OutputRoot/<style>. With several templates, later templates replace
	// same-named outputs of earlier ones under Force and are skipped
	// otherwise.
	Flat bool

	// Template restricts the run to this template instead of the given list
	Template *types.TemplateDescriptor

	// Workers is the number of parallel render-and-write workers; values
	// below 2 run sequentially
	Workers int

	// Placeholders are the tokens substituted in every template
	Placeholders render.Placeholders

	// LowercaseNames lowercases labels in output file names (PNG -> png.svg)
	LowercaseNames bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		OutputRoot:     DefaultOutputRoot,
		Workers:        1,
		Placeholders:   render.DefaultPlaceholders(),
		LowercaseNames: true,
	}
}

// OutputPath returns where the icon for label rendered with tmpl is written.
func (o Options) OutputPath(tmpl *types.TemplateDescriptor, label string) string {
	name := label
	if o.LowercaseNames {
		name = strings.ToLower(name)
	}
	name += tmpl.Extension

	if o.Flat {
		return filepath.Join(o.OutputRoot, name)
	}
	return filepath.Join(o.OutputRoot, tmpl.StyleName, name)
}

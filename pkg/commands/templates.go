package commands

import (
	"github.com/arthur-debert/exticons/pkg/config"
	"github.com/arthur-debert/exticons/pkg/templates"
	"github.com/arthur-debert/exticons/pkg/types"
)

// ListTemplatesOptions defines the options for the ListTemplates command.
type ListTemplatesOptions struct {
	FS       types.FS
	Settings *config.Settings

	// Dir overrides the configured templates directory.
	Dir string
}

// ListTemplates discovers templates and inspects each one. Unreadable
// templates are returned as issues.
func ListTemplates(opts ListTemplatesOptions) ([]templates.Info, []error, error) {
	settings, err := settingsOrDefault(opts.Settings)
	if err != nil {
		return nil, nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = settings.Paths.Templates
	}

	found, issues, err := templates.Discover(fsOrOS(opts.FS), dir, settings.Convention())
	if err != nil {
		return nil, issues, err
	}

	infos := make([]templates.Info, 0, len(found))
	for _, tmpl := range found {
		infos = append(infos, templates.Inspect(tmpl, settings.RenderPlaceholders()))
	}
	return infos, issues, nil
}

package commands

import (
	"context"

	"github.com/arthur-debert/exticons/pkg/config"
	"github.com/arthur-debert/exticons/pkg/generate"
	"github.com/arthur-debert/exticons/pkg/logging"
	"github.com/arthur-debert/exticons/pkg/templates"
	"github.com/arthur-debert/exticons/pkg/types"
)

// GenerateOptions defines the options for the Generate command.
type GenerateOptions struct {
	// FS is the filesystem to read from and write to. Defaults to the OS filesystem.
	FS types.FS
	// Settings supplies every default not given below. Defaults to the built-in settings.
	Settings *config.Settings

	// ConfigPath is the extension mapping document.
	ConfigPath string
	// TemplatePath selects one template file instead of discovering them.
	TemplatePath string
	// TemplatesDir is where templates are discovered.
	TemplatesDir string
	// OutputDir switches to the flat layout under this directory.
	OutputDir string

	Force   bool
	DryRun  bool
	Workers int
}

// Generate loads the mapping and templates and renders every icon.
//
// A mapping that cannot be loaded, or that yields no valid record, and a
// run without any template are returned as errors. Everything else (bad
// entries, unusable templates, failed writes) is collected in the summary.
func Generate(ctx context.Context, opts GenerateOptions) (types.Summary, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Generate").Msg("Executing command")

	settings, err := settingsOrDefault(opts.Settings)
	if err != nil {
		return types.Summary{}, err
	}
	fsys := fsOrOS(opts.FS)

	// 1. Records
	result, err := loadRecords(fsys, opts.ConfigPath, settings)
	if err != nil {
		return types.Summary{}, err
	}
	issues := append([]error(nil), result.Issues...)

	// 2. Templates
	genOpts := generate.Options{
		Force:          opts.Force,
		DryRun:         opts.DryRun,
		OutputRoot:     settings.Paths.Output,
		Workers:        settings.Generate.Workers,
		Placeholders:   settings.RenderPlaceholders(),
		LowercaseNames: settings.Generate.LowercaseNames,
	}
	if opts.Workers > 0 {
		genOpts.Workers = opts.Workers
	}
	if opts.OutputDir != "" {
		genOpts.OutputRoot = opts.OutputDir
		genOpts.Flat = true
	}

	var found []types.TemplateDescriptor
	if opts.TemplatePath != "" {
		tmpl, err := templates.Load(fsys, opts.TemplatePath, settings.Convention())
		if err != nil {
			return types.Summary{}, err
		}
		genOpts.Template = &tmpl
	} else {
		dir := opts.TemplatesDir
		if dir == "" {
			dir = settings.Paths.Templates
		}
		var discoveryIssues []error
		found, discoveryIssues, err = templates.Discover(fsys, dir, settings.Convention())
		if err != nil {
			return types.Summary{}, err
		}
		issues = append(issues, discoveryIssues...)
	}

	// 3. Render
	summary := generate.Generate(ctx, fsys, result.Records, found, genOpts)
	summary.Issues = append(issues, summary.Issues...)

	log.Info().
		Int("records", len(result.Records)).
		Int("generated", summary.Generated).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Int("issues", len(summary.Issues)).
		Msg("Generate command finished")
	return summary, nil
}

// Package generate drives icon generation: every label of every record is
// rendered with every valid template and written according to the
// skip/overwrite policy.
package generate

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/exticons/pkg/errors"
	"github.com/arthur-debert/exticons/pkg/filesystem"
	"github.com/arthur-debert/exticons/pkg/fontsize"
	"github.com/arthur-debert/exticons/pkg/logging"
	"github.com/arthur-debert/exticons/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Generator renders and writes icons to a filesystem.
type Generator struct {
	fs     types.FS
	opts   Options
	logger zerolog.Logger
}

// New creates a Generator. Each empty placeholder token falls back to its
// default.
func New(fsys types.FS, opts Options) *Generator {
	defaults := DefaultOptions().Placeholders
	if opts.Placeholders.Color == "" {
		opts.Placeholders.Color = defaults.Color
	}
	if opts.Placeholders.Label == "" {
		opts.Placeholders.Label = defaults.Label
	}
	if opts.Placeholders.FontSize == "" {
		opts.Placeholders.FontSize = defaults.FontSize
	}
	return &Generator{
		fs:     fsys,
		opts:   opts,
		logger: logging.GetLogger("generate"),
	}
}

// Generate is the one-call form of New(fsys, opts).Generate.
func Generate(ctx context.Context, fsys types.FS, records []types.ExtensionRecord, templates []types.TemplateDescriptor, opts Options) types.Summary {
	return New(fsys, opts).Generate(ctx, records, templates)
}

// Generate renders every (template, label) pair and returns the aggregate
// counts. Single failures are counted and reported, never returned.
func (g *Generator) Generate(ctx context.Context, records []types.ExtensionRecord, templates []types.TemplateDescriptor) types.Summary {
	done := logging.LogOperationStart(g.logger, "generate")
	defer done()

	summary := types.Summary{DryRun: g.opts.DryRun}

	valid, issues := g.validTemplates(templates)
	for _, issue := range issues {
		summary.Report(issue)
	}
	summary.Templates = len(valid)

	if g.opts.Flat && len(valid) > 1 {
		msg := "several templates share one flat output directory; later templates are skipped where an icon exists"
		if g.opts.Force {
			msg = "several templates share one flat output directory; later templates overwrite earlier icons"
		}
		g.logger.Warn().
			Int("templates", len(valid)).
			Str("output", g.opts.OutputRoot).
			Msg(msg)
	}

	units := g.Plan(records, valid)
	for _, result := range g.Run(ctx, units) {
		summary.Add(result)
	}

	g.logger.Info().
		Int("generated", summary.Generated).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Int("templates", summary.Templates).
		Bool("dryRun", summary.DryRun).
		Msg("generation finished")

	return summary
}

// validTemplates drops templates lacking a placeholder and reports each one.
func (g *Generator) validTemplates(templates []types.TemplateDescriptor) ([]*types.TemplateDescriptor, []error) {
	if g.opts.Template != nil {
		templates = []types.TemplateDescriptor{*g.opts.Template}
	}

	var (
		valid  []*types.TemplateDescriptor
		issues []error
	)
	for i := range templates {
		tmpl := &templates[i]
		if missing := g.opts.Placeholders.Missing(tmpl.RawText); len(missing) > 0 {
			err := errors.Newf(errors.ErrTemplatePlaceholder, "skipping template %s: missing placeholder(s) %s",
				tmpl.Path, strings.Join(missing, ", ")).
				WithDetail("path", tmpl.Path).
				WithDetail("missing", missing)
			g.logger.Warn().Err(err).Msg("skipping template")
			issues = append(issues, err)
			continue
		}
		valid = append(valid, tmpl)
	}
	return valid, issues
}

// Plan expands records and templates into render units, template by
// template, record by record, label by label.
func (g *Generator) Plan(records []types.ExtensionRecord, templates []*types.TemplateDescriptor) []types.RenderUnit {
	var units []types.RenderUnit
	for _, tmpl := range templates {
		g.logger.Info().Str("style", tmpl.StyleName).Str("template", tmpl.Path).Msg("generating icons with template")
		for _, rec := range records {
			for _, label := range rec.Labels() {
				units = append(units, types.RenderUnit{
					Template:   tmpl,
					Record:     rec.Name,
					Label:      label,
					Color:      rec.Color,
					FontSize:   fontsize.ForLabel(label, rec.FontSize),
					OutputPath: g.opts.OutputPath(tmpl, label),
				})
			}
		}
	}
	return units
}

// Run processes units and returns one result per unit, in unit order.
//
// Units writing the same path are kept together and processed in plan
// order, so with several workers no two goroutines ever touch one path and
// the final tree matches a sequential run.
func (g *Generator) Run(ctx context.Context, units []types.RenderUnit) []types.UnitResult {
	results := make([]types.UnitResult, len(units))

	if g.opts.Workers < 2 {
		planned := make(map[string]bool)
		for i := range units {
			results[i] = g.process(ctx, &units[i], planned)
		}
		return results
	}

	var eg errgroup.Group
	eg.SetLimit(g.opts.Workers)
	for _, group := range groupByPath(units) {
		group := group
		eg.Go(func() error {
			planned := make(map[string]bool, 1)
			for _, i := range group {
				results[i] = g.process(ctx, &units[i], planned)
			}
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

// groupByPath returns unit indexes grouped by output path, groups ordered by
// first appearance.
func groupByPath(units []types.RenderUnit) [][]int {
	index := make(map[string]int)
	var groups [][]int
	for i, u := range units {
		g, ok := index[u.OutputPath]
		if !ok {
			g = len(groups)
			index[u.OutputPath] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}

// process renders one unit and applies the write policy. planned holds the
// paths a dry run has already counted as generated; they are treated as
// existing so the counts match a real run.
func (g *Generator) process(ctx context.Context, unit *types.RenderUnit, planned map[string]bool) types.UnitResult {
	result := types.UnitResult{Path: unit.OutputPath, Label: unit.Label}
	fail := func(err error) types.UnitResult {
		g.logger.Error().Err(err).Str("path", unit.OutputPath).Msg("icon failed")
		result.Outcome = types.OutcomeFailed
		result.Err = err
		return result
	}

	if err := ctx.Err(); err != nil {
		return fail(errors.Wrapf(err, errors.ErrInternal, "generation of %s cancelled", unit.OutputPath))
	}

	rendered, err := g.opts.Placeholders.Render(unit.Template.RawText, unit.Label, unit.Color, unit.FontSize)
	if err != nil {
		return fail(err)
	}

	exists, err := filesystem.Exists(g.fs, unit.OutputPath)
	if err != nil {
		return fail(errors.Wrapf(err, errors.ErrFileAccess, "cannot check %s", unit.OutputPath).
			WithDetail("path", unit.OutputPath))
	}
	exists = exists || planned[unit.OutputPath]
	if exists && !g.opts.Force {
		g.logger.Debug().Str("path", unit.OutputPath).Msg("icon already exists, it will not be overwritten")
		result.Outcome = types.OutcomeSkipped
		return result
	}

	if g.opts.DryRun {
		g.logger.Debug().Str("path", unit.OutputPath).Bool("overwrite", exists).Msg("icon would be generated")
		planned[unit.OutputPath] = true
		result.Outcome = types.OutcomeGenerated
		return result
	}

	if err := g.fs.MkdirAll(filepath.Dir(unit.OutputPath), dirPerm); err != nil {
		return fail(errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory for %s", unit.OutputPath).
			WithDetail("path", unit.OutputPath))
	}
	if err := filesystem.WriteFileAtomic(g.fs, unit.OutputPath, []byte(rendered), filePerm); err != nil {
		return fail(errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", unit.OutputPath).
			WithDetail("path", unit.OutputPath))
	}

	g.logger.Debug().
		Str("path", unit.OutputPath).
		Str("label", unit.Label).
		Float64("fontSize", unit.FontSize).
		Bool("overwrite", exists).
		Msg("icon generated")
	result.Outcome = types.OutcomeGenerated
	return result
}

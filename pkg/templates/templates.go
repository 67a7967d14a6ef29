// Package templates discovers and loads icon template files.
//
// A template is a file named <prefix><style><suffix>, template_solid.svg by
// default, whose content contains the placeholder tokens understood by
// package render. Discovery does not validate placeholders; that happens
// per template during generation so one bad template never blocks the rest.
package templates

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/exticons/pkg/errors"
	"github.com/arthur-debert/exticons/pkg/logging"
	"github.com/arthur-debert/exticons/pkg/types"
)

// Convention is the file naming rule for templates.
type Convention struct {
	Prefix string
	Suffix string
}

// DefaultConvention matches template_<style>.svg.
func DefaultConvention() Convention {
	return Convention{Prefix: "template_", Suffix: ".svg"}
}

// Matches reports whether filename follows the convention with a non-empty style.
func (c Convention) Matches(filename string) bool {
	return strings.HasPrefix(filename, c.Prefix) &&
		strings.HasSuffix(filename, c.Suffix) &&
		len(filename) > len(c.Prefix)+len(c.Suffix)
}

// StyleName returns the style slug of filename. Files that do not follow the
// convention keep their base name without extension, minus the prefix if
// they carry it.
func (c Convention) StyleName(filename string) string {
	base := filepath.Base(filename)
	if c.Matches(base) {
		return base[len(c.Prefix) : len(base)-len(c.Suffix)]
	}
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if trimmed := strings.TrimPrefix(name, c.Prefix); trimmed != "" {
		return trimmed
	}
	return name
}

// Load reads a single template file.
func Load(fsys types.FS, path string, conv Convention) (types.TemplateDescriptor, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return types.TemplateDescriptor{}, errors.Wrapf(err, errors.ErrTemplateRead, "cannot read template %s", path).
			WithDetail("path", path)
	}
	return types.TemplateDescriptor{
		Path:      path,
		StyleName: conv.StyleName(path),
		Extension: filepath.Ext(path),
		RawText:   string(data),
	}, nil
}

// Discover loads every template in dir, sorted by file name. Templates that
// cannot be read are returned as TEMPLATE_READ issues. A missing directory or
// a directory without any readable template is a NO_TEMPLATES error.
func Discover(fsys types.FS, dir string, conv Convention) ([]types.TemplateDescriptor, []error, error) {
	logger := logging.GetLogger("templates")

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrNoTemplates, "cannot read templates directory %s", dir).
			WithDetail("dir", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !conv.Matches(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var (
		found  []types.TemplateDescriptor
		issues []error
	)
	for _, name := range names {
		tmpl, err := Load(fsys, filepath.Join(dir, name), conv)
		if err != nil {
			logger.Warn().Err(err).Str("template", name).Msg("skipping unreadable template")
			issues = append(issues, err)
			continue
		}
		logger.Debug().Str("template", tmpl.Path).Str("style", tmpl.StyleName).Msg("template found")
		found = append(found, tmpl)
	}

	if len(found) == 0 {
		return nil, issues, errors.Newf(errors.ErrNoTemplates, "no templates matching %s*%s found in %s",
			conv.Prefix, conv.Suffix, dir).WithDetail("dir", dir)
	}
	return found, issues, nil
}

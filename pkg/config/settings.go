package config

import (
	"github.com/arthur-debert/exticons/pkg/errors"
	"github.com/arthur-debert/exticons/pkg/render"
	"github.com/arthur-debert/exticons/pkg/templates"
)

// Settings is the effective exticons configuration.
type Settings struct {
	Paths        Paths        `koanf:"paths" toml:"paths"`
	Templates    Templates    `koanf:"templates" toml:"templates"`
	Placeholders Placeholders `koanf:"placeholders" toml:"placeholders"`
	Generate     Generate     `koanf:"generate" toml:"generate"`
}

// Paths are the default locations used when no argument or flag names one.
type Paths struct {
	// Config is the extension mapping document
	Config string `koanf:"config" toml:"config"`
	// Templates is the directory templates are discovered in
	Templates string `koanf:"templates" toml:"templates"`
	// Output is the root of the per-style output tree
	Output string `koanf:"output" toml:"output"`
}

// Templates is the template file naming convention.
type Templates struct {
	Prefix string `koanf:"prefix" toml:"prefix"`
	Suffix string `koanf:"suffix" toml:"suffix"`
}

// Placeholders are the literal tokens substituted in templates.
type Placeholders struct {
	Color    string `koanf:"color" toml:"color"`
	Label    string `koanf:"label" toml:"label"`
	FontSize string `koanf:"font_size" toml:"font_size"`
}

// Generate holds generation defaults.
type Generate struct {
	Workers        int  `koanf:"workers" toml:"workers"`
	LowercaseNames bool `koanf:"lowercase_names" toml:"lowercase_names"`
}

// Validate rejects settings that would make rendering ambiguous or impossible.
func (s *Settings) Validate() error {
	tokens := map[string]string{
		"placeholders.color":     s.Placeholders.Color,
		"placeholders.label":     s.Placeholders.Label,
		"placeholders.font_size": s.Placeholders.FontSize,
	}
	seen := make(map[string]string, len(tokens))
	for _, key := range []string{"placeholders.color", "placeholders.label", "placeholders.font_size"} {
		value := tokens[key]
		if value == "" {
			return errors.Newf(errors.ErrConfigValid, "%s must not be empty", key).
				WithDetail("key", key)
		}
		if other, dup := seen[value]; dup {
			return errors.Newf(errors.ErrConfigValid, "%s and %s use the same placeholder %q", other, key, value).
				WithDetail("key", key)
		}
		seen[value] = key
	}

	if s.Generate.Workers < 1 {
		return errors.Newf(errors.ErrConfigValid, "generate.workers must be at least 1, got %d", s.Generate.Workers).
			WithDetail("key", "generate.workers")
	}
	if s.Templates.Suffix == "" {
		return errors.New(errors.ErrConfigValid, "templates.suffix must not be empty").
			WithDetail("key", "templates.suffix")
	}
	return nil
}

// RenderPlaceholders returns the placeholders in the form the renderer uses.
func (s *Settings) RenderPlaceholders() render.Placeholders {
	return render.Placeholders{
		Color:    s.Placeholders.Color,
		Label:    s.Placeholders.Label,
		FontSize: s.Placeholders.FontSize,
	}
}

// Convention returns the template naming convention.
func (s *Settings) Convention() templates.Convention {
	return templates.Convention{Prefix: s.Templates.Prefix, Suffix: s.Templates.Suffix}
}

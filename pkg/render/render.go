// Package render substitutes the color, label and font size placeholders of
// an icon template.
//
// Substitution is purely textual: the template is never parsed as SVG, so
// geometry, styling and any other bytes pass through untouched. A template
// that is malformed markup but contains every placeholder renders fine.
package render

import (
	"strings"

	"github.com/arthur-debert/exticons/pkg/errors"
	"github.com/arthur-debert/exticons/pkg/fontsize"
)

// Default placeholder tokens, as written in the bundled templates.
const (
	DefaultColorToken    = "{color}"
	DefaultLabelToken    = "{extension}"
	DefaultFontSizeToken = "{font_size}"
)

// Placeholders are the three literal tokens a template must contain.
type Placeholders struct {
	Color    string
	Label    string
	FontSize string
}

// DefaultPlaceholders returns the standard token set.
func DefaultPlaceholders() Placeholders {
	return Placeholders{
		Color:    DefaultColorToken,
		Label:    DefaultLabelToken,
		FontSize: DefaultFontSizeToken,
	}
}

// Tokens returns the tokens in color, label, font size order.
func (p Placeholders) Tokens() []string {
	return []string{p.Color, p.Label, p.FontSize}
}

// Missing returns every token absent from raw.
func (p Placeholders) Missing(raw string) []string {
	var missing []string
	for _, token := range p.Tokens() {
		if !strings.Contains(raw, token) {
			missing = append(missing, token)
		}
	}
	return missing
}

// Validate returns a TEMPLATE_PLACEHOLDER error naming every missing token.
func (p Placeholders) Validate(raw string) error {
	missing := p.Missing(raw)
	if len(missing) == 0 {
		return nil
	}
	return errors.Newf(errors.ErrTemplatePlaceholder,
		"template is missing placeholder(s) %s", strings.Join(missing, ", ")).
		WithDetail("missing", missing)
}

// Render replaces every occurrence of each token in raw. The replacement is
// a single left-to-right pass, so substituted values are never rescanned.
func (p Placeholders) Render(raw, label, color string, size float64) (string, error) {
	if err := p.Validate(raw); err != nil {
		return "", err
	}
	r := strings.NewReplacer(
		p.Color, color,
		p.Label, label,
		p.FontSize, fontsize.Format(size),
	)
	return r.Replace(raw), nil
}

// Render renders raw with the default placeholder tokens.
func Render(raw, label, color string, size float64) (string, error) {
	return DefaultPlaceholders().Render(raw, label, color, size)
}

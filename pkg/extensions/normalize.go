package extensions

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/arthur-debert/exticons/pkg/errors"
	"github.com/arthur-debert/exticons/pkg/logging"
	"github.com/arthur-debert/exticons/pkg/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalizer turns entries into records. It is not safe for concurrent use
// because cases.Caser keeps state between calls.
type normalizer struct {
	upper cases.Caser
}

func newNormalizer() *normalizer {
	return &normalizer{upper: cases.Upper(language.Und)}
}

// Label trims and uppercases a name or alias. This is the only place label
// case and whitespace are normalized.
func (n *normalizer) Label(s string) string {
	return n.upper.String(strings.TrimSpace(s))
}

// Record normalizes one entry. ok is false when the entry must be skipped;
// issues lists every record error found, including ones that only drop a
// single field.
func (n *normalizer) Record(entry Entry) (rec types.ExtensionRecord, ok bool, issues []error) {
	key := entry.entryKey()
	rec.Key = key
	rec.Name = n.Label(key)
	if rec.Name == "" {
		return rec, false, []error{recordError(key, "extension name is blank")}
	}
	if !safeLabel(rec.Name) {
		return rec, false, []error{recordErrorf(key, "extension name %q cannot be used as a file name", rec.Name)}
	}

	switch e := entry.(type) {
	case SimpleEntry:
		if strings.TrimSpace(e.Color) == "" {
			return rec, false, []error{recordError(key, "missing color")}
		}
		rec.Color = e.Color
		return rec, true, nil

	case AdvancedEntry:
		color, err := n.color(e)
		if err != nil {
			return rec, false, []error{err}
		}
		rec.Color = color

		aliases, aliasIssues := n.aliases(rec.Name, e)
		rec.Aliases = aliases
		issues = append(issues, aliasIssues...)

		size, err := n.fontSize(e)
		if err != nil {
			issues = append(issues, err)
		}
		rec.FontSize = size

		return rec, true, issues
	}

	return rec, false, []error{recordErrorf(key, "unsupported entry type %T", entry)}
}

// safeLabel reports whether label names a single file: labels become output
// file names, so path separators and dot directories are refused.
func safeLabel(label string) bool {
	if label == "." || label == ".." {
		return false
	}
	return !strings.ContainsAny(label, `/\`) && !strings.ContainsRune(label, 0)
}

func (n *normalizer) color(e AdvancedEntry) (string, error) {
	if !e.HasColor || e.Color == nil {
		return "", recordError(e.Key, "missing color")
	}
	color, ok := e.Color.(string)
	if !ok {
		return "", recordErrorf(e.Key, "color must be a string, got %s", describe(e.Color))
	}
	if strings.TrimSpace(color) == "" {
		return "", recordError(e.Key, "missing color")
	}
	return color, nil
}

func (n *normalizer) aliases(name string, e AdvancedEntry) ([]string, []error) {
	if !e.HasAliases || e.Aliases == nil {
		return nil, nil
	}
	list, ok := e.Aliases.([]interface{})
	if !ok {
		return nil, []error{recordErrorf(e.Key, "aliases must be a list, got %s", describe(e.Aliases))}
	}

	logger := logging.GetLogger("extensions")
	var (
		aliases []string
		issues  []error
	)
	seen := map[string]bool{name: true}
	for i, item := range list {
		raw, ok := item.(string)
		if !ok {
			issues = append(issues, recordErrorf(e.Key, "alias #%d must be a string, got %s", i+1, describe(item)))
			continue
		}
		alias := n.Label(raw)
		if alias == "" {
			issues = append(issues, recordErrorf(e.Key, "alias #%d is blank", i+1))
			continue
		}
		if !safeLabel(alias) {
			issues = append(issues, recordErrorf(e.Key, "alias %q cannot be used as a file name", alias))
			continue
		}
		if seen[alias] {
			logger.Debug().Str("extension", name).Str("alias", alias).Msg("dropping repeated alias")
			continue
		}
		seen[alias] = true
		aliases = append(aliases, alias)
	}
	return aliases, issues
}

func (n *normalizer) fontSize(e AdvancedEntry) (*float64, error) {
	if !e.HasFontSize || e.FontSize == nil {
		return nil, nil
	}
	size, ok := toFloat(e.FontSize)
	if !ok {
		return nil, recordErrorf(e.Key, "font_size must be a number, got %s; using computed sizes", describe(e.FontSize))
	}
	if !(size > 0) || math.IsInf(size, 1) {
		return nil, recordErrorf(e.Key, "font_size must be positive, got %v; using computed sizes", size)
	}
	return &size, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// describe names the JSON/YAML kind of a decoded value for error messages.
func describe(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number, float64, float32, int, int64, uint64:
		return "a number"
	case []interface{}:
		return "a list"
	case map[string]interface{}:
		return "an object"
	}
	return fmt.Sprintf("%T", v)
}

func recordError(key, msg string) error {
	return errors.Newf(errors.ErrRecordInvalid, "extension %q: %s", key, msg).
		WithDetail("extension", key)
}

func recordErrorf(key, format string, args ...interface{}) error {
	return recordError(key, fmt.Sprintf(format, args...))
}

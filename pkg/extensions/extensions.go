// Package extensions loads the extension mapping and normalizes it into
// types.ExtensionRecord values.
//
// The document maps extension names to either a color string or an object:
//
//	{
//	  "PNG": "#FF0000",
//	  "DOC": {"color": "#2B579A", "aliases": ["DOCX"], "font_size": 9}
//	}
//
// Entries are decoded into the Entry union and normalized straight away, so
// nothing downstream cares which form an entry was written in. Problems with
// a single entry are collected as RECORD_INVALID issues; only an unreadable
// document or a document without any valid record is fatal.
package extensions

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/exticons/pkg/errors"
	"github.com/arthur-debert/exticons/pkg/logging"
	"github.com/arthur-debert/exticons/pkg/types"
)

// Format is the syntax of a mapping document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension; anything that is
// not .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Result holds the normalized records in document order along with every
// record error found while building them.
type Result struct {
	Records []types.ExtensionRecord
	Issues  []error
}

// Parse decodes and normalizes a mapping document. When no valid record
// remains the returned Result still carries the issues that explain why,
// together with a NO_RECORDS error.
func Parse(data []byte, format Format) (*Result, error) {
	logger := logging.GetLogger("extensions")

	var (
		raw []rawEntry
		err error
	)
	switch format {
	case FormatYAML:
		raw, err = decodeYAML(data)
	default:
		raw, err = decodeJSON(data)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %s extension mapping", format)
	}

	norm := newNormalizer()
	result := &Result{Records: make([]types.ExtensionRecord, 0, len(raw))}
	for _, r := range raw {
		entry, err := classify(r)
		if err != nil {
			result.Issues = append(result.Issues, err)
			continue
		}

		rec, ok, issues := norm.Record(entry)
		result.Issues = append(result.Issues, issues...)
		if !ok {
			continue
		}
		result.Records = append(result.Records, rec)
	}

	for _, issue := range result.Issues {
		logger.Warn().Err(issue).Msg("extension entry problem")
	}
	logger.Debug().
		Int("entries", len(raw)).
		Int("records", len(result.Records)).
		Int("issues", len(result.Issues)).
		Msg("extension mapping normalized")

	if len(result.Records) == 0 {
		return result, errors.New(errors.ErrNoRecords, "extension mapping has no valid entries").
			WithDetail("issues", len(result.Issues))
	}
	return result, nil
}

// Load reads and parses the mapping document at path.
func Load(fsys types.FS, path string) (*Result, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read extension mapping %s", path).
			WithDetail("path", path)
	}

	result, err := Parse(data, FormatFromPath(path))
	if err != nil {
		if e, ok := err.(*errors.ExticonsError); ok {
			e.WithDetail("path", path)
		}
		return result, err
	}
	return result, nil
}

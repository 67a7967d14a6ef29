package output

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/exticons/pkg/duplicates"
	"github.com/arthur-debert/exticons/pkg/templates"
	"github.com/arthur-debert/exticons/pkg/types"
)

// jsonRenderer provides JSON output for machine consumption
type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(w io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

type summaryJSON struct {
	Generated int     `json:"generated"`
	Skipped   int     `json:"skipped"`
	Failed    int     `json:"failed"`
	Total     int     `json:"total"`
	Templates int     `json:"templates"`
	DryRun    bool    `json:"dryRun"`
	Issues    []issue `json:"issues"`
}

func (r *jsonRenderer) RenderSummary(s types.Summary) error {
	return r.encoder.Encode(summaryJSON{
		Generated: s.Generated,
		Skipped:   s.Skipped,
		Failed:    s.Failed,
		Total:     s.Total(),
		Templates: s.Templates,
		DryRun:    s.DryRun,
		Issues:    issuesOf(s.Issues),
	})
}

type linkJSON struct {
	Alias     string `json:"alias"`
	Extension string `json:"extension"`
}

type conflictJSON struct {
	Label  string   `json:"label"`
	Owners []string `json:"owners"`
}

type checkJSON struct {
	Extensions int            `json:"extensions"`
	Aliases    int            `json:"aliases"`
	Links      []linkJSON     `json:"links"`
	Conflicts  []conflictJSON `json:"conflicts"`
}

func (r *jsonRenderer) RenderCheck(report duplicates.Report) error {
	out := checkJSON{
		Extensions: report.Extensions,
		Aliases:    report.Aliases,
		Links:      make([]linkJSON, 0, len(report.Links)),
		Conflicts:  make([]conflictJSON, 0, len(report.Conflicts)),
	}
	for _, l := range report.Links {
		out.Links = append(out.Links, linkJSON{Alias: l.Alias, Extension: l.Extension})
	}
	for _, c := range report.Conflicts {
		out.Conflicts = append(out.Conflicts, conflictJSON{Label: c.Label, Owners: c.Owners})
	}
	return r.encoder.Encode(out)
}

type templateJSON struct {
	Path      string   `json:"path"`
	Style     string   `json:"style"`
	Extension string   `json:"extension"`
	Valid     bool     `json:"valid"`
	Missing   []string `json:"missing,omitempty"`
	Width     string   `json:"width,omitempty"`
	Height    string   `json:"height,omitempty"`
	ViewBox   string   `json:"viewBox,omitempty"`
}

func (r *jsonRenderer) RenderTemplates(infos []templates.Info) error {
	out := make([]templateJSON, 0, len(infos))
	for _, info := range infos {
		out = append(out, templateJSON{
			Path:      info.Path,
			Style:     info.StyleName,
			Extension: info.Extension,
			Valid:     info.Valid(),
			Missing:   info.Missing,
			Width:     info.Width,
			Height:    info.Height,
			ViewBox:   info.ViewBox,
		})
	}
	return r.encoder.Encode(out)
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]issue{"error": issuesOf([]error{err})[0]})
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}

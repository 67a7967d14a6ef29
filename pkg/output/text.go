package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/exticons/pkg/duplicates"
	"github.com/arthur-debert/exticons/pkg/templates"
	"github.com/arthur-debert/exticons/pkg/types"
)

// textRenderer writes plain text without colors or styling
type textRenderer struct {
	w io.Writer
}

func newTextRenderer(w io.Writer) *textRenderer {
	return &textRenderer{w: w}
}

func (r *textRenderer) RenderSummary(s types.Summary) error {
	var b strings.Builder
	if s.DryRun {
		b.WriteString("Dry run, nothing was written.\n")
	}
	fmt.Fprintf(&b, "Templates: %d\n", s.Templates)
	fmt.Fprintf(&b, "Generated: %d\n", s.Generated)
	fmt.Fprintf(&b, "Skipped:   %d\n", s.Skipped)
	fmt.Fprintf(&b, "Failed:    %d\n", s.Failed)
	writeIssues(&b, s.Issues)
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *textRenderer) RenderCheck(report duplicates.Report) error {
	var b strings.Builder
	if len(report.Links) > 0 {
		b.WriteString("Aliases:\n")
		for _, link := range report.Links {
			fmt.Fprintf(&b, "  - %s -> %s\n", link.Alias, link.Extension)
		}
	}
	fmt.Fprintf(&b, "Total: %d extensions and %d aliases.\n", report.Extensions, report.Aliases)
	if report.HasConflicts() {
		fmt.Fprintf(&b, "Conflicts (%d):\n", len(report.Conflicts))
		for _, c := range report.Conflicts {
			fmt.Fprintf(&b, "  - %s\n", c)
		}
	} else {
		b.WriteString("No duplicate extensions or aliases found.\n")
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *textRenderer) RenderTemplates(infos []templates.Info) error {
	var b strings.Builder
	for _, info := range infos {
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\t%s\n",
			info.StyleName, info.Extension, placeholderStatus(info), dimensions(info), info.Path)
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.w, "Error: %v\n", err)
	return werr
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.w, msg)
	return err
}

func writeIssues(b *strings.Builder, errs []error) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintf(b, "Issues (%d):\n", len(errs))
	for _, err := range errs {
		fmt.Fprintf(b, "  - %v\n", err)
	}
}

func placeholderStatus(info templates.Info) string {
	if info.Valid() {
		return "ok"
	}
	return "missing " + strings.Join(info.Missing, ", ")
}

func dimensions(info templates.Info) string {
	switch {
	case info.Width != "" && info.Height != "":
		return info.Width + "x" + info.Height
	case info.ViewBox != "":
		return "viewBox " + info.ViewBox
	default:
		return "-"
	}
}

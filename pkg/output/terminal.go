package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/exticons/pkg/duplicates"
	"github.com/arthur-debert/exticons/pkg/errors"
	"github.com/arthur-debert/exticons/pkg/templates"
	"github.com/arthur-debert/exticons/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var (
	headingColor = lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#7AB8F5"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
)

// terminalRenderer writes rich output for color-capable terminals
type terminalRenderer struct {
	w io.Writer

	title lipgloss.Style
	muted lipgloss.Style
	bold  lipgloss.Style
}

func newTerminalRenderer(w io.Writer) *terminalRenderer {
	r := lipgloss.NewRenderer(w)
	return &terminalRenderer{
		w:     w,
		title: r.NewStyle().Foreground(headingColor).Bold(true),
		muted: r.NewStyle().Foreground(mutedColor),
		bold:  r.NewStyle().Bold(true),
	}
}

func (r *terminalRenderer) RenderSummary(s types.Summary) error {
	var b strings.Builder

	title := "Icon generation"
	if s.DryRun {
		title += " (dry run)"
	}
	b.WriteString(r.title.Render(title) + "\n")

	table, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Templates", "Generated", "Skipped", "Failed"},
		{
			strconv.Itoa(s.Templates),
			pterm.Green(strconv.Itoa(s.Generated)),
			pterm.Yellow(strconv.Itoa(s.Skipped)),
			failedCount(s.Failed),
		},
	}).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render summary table")
	}
	b.WriteString(table + "\n")

	if len(s.Issues) > 0 {
		b.WriteString("\n" + r.bold.Render(fmt.Sprintf("Issues (%d)", len(s.Issues))) + "\n")
		for _, issue := range s.Issues {
			b.WriteString(r.issueLine(issue) + "\n")
		}
	}

	_, err = io.WriteString(r.w, b.String())
	return err
}

func failedCount(n int) string {
	if n == 0 {
		return strconv.Itoa(n)
	}
	return pterm.Red(strconv.Itoa(n))
}

func (r *terminalRenderer) issueLine(err error) string {
	code := errors.GetErrorCode(err)
	return fmt.Sprintf("%s %s %s", pterm.Warning.Prefix.Text, r.muted.Render(string(code)), err.Error())
}

func (r *terminalRenderer) RenderCheck(report duplicates.Report) error {
	var b strings.Builder

	if len(report.Links) > 0 {
		b.WriteString(r.title.Render("Aliases") + "\n")
		for _, link := range report.Links {
			fmt.Fprintf(&b, "  %s %s %s\n", r.bold.Render(link.Alias), r.muted.Render("→"), link.Extension)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s %d extensions and %d aliases\n",
		pterm.Info.Prefix.Text, report.Extensions, report.Aliases)

	if report.HasConflicts() {
		b.WriteString("\n" + r.title.Render(fmt.Sprintf("Conflicts (%d)", len(report.Conflicts))) + "\n")
		for _, c := range report.Conflicts {
			fmt.Fprintf(&b, "%s %s is declared by %s\n",
				pterm.Error.Prefix.Text, r.bold.Render(c.Label), strings.Join(c.Owners, ", "))
		}
	} else {
		fmt.Fprintf(&b, "%s No duplicate extensions or aliases found\n", pterm.Success.Prefix.Text)
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *terminalRenderer) RenderTemplates(infos []templates.Info) error {
	if len(infos) == 0 {
		_, err := fmt.Fprintln(r.w, r.muted.Render("No templates found"))
		return err
	}

	data := pterm.TableData{{"Style", "Ext", "Placeholders", "Size", "Path"}}
	for _, info := range infos {
		status := pterm.Green("ok")
		if !info.Valid() {
			status = pterm.Red("missing " + strings.Join(info.Missing, ", "))
		}
		data = append(data, []string{info.StyleName, info.Extension, status, dimensions(info), r.muted.Render(info.Path)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render template table")
	}
	_, err = fmt.Fprintln(r.w, r.title.Render("Templates")+"\n"+table)
	return err
}

func (r *terminalRenderer) RenderError(err error) error {
	line := fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
	_, werr := fmt.Fprintln(r.w, line)
	return werr
}

func (r *terminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.w, "%s %s\n", pterm.Info.Prefix.Text, msg)
	return err
}

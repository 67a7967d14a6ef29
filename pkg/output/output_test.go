package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/exticons/pkg/duplicates"
	"github.com/arthur-debert/exticons/pkg/errors"
	"github.com/arthur-debert/exticons/pkg/templates"
	"github.com/arthur-debert/exticons/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() types.Summary {
	return types.Summary{
		Generated: 3,
		Skipped:   2,
		Failed:    1,
		Templates: 2,
		Issues: []error{
			errors.New(errors.ErrTemplatePlaceholder, "skipping template t.svg"),
			errors.New(errors.ErrFileWrite, "cannot write icons/solid/png.svg"),
		},
	}
}

func sampleReport() duplicates.Report {
	return duplicates.Report{
		Extensions: 2,
		Aliases:    1,
		Links:      []duplicates.AliasLink{{Alias: "A", Extension: "B"}},
		Conflicts:  []duplicates.Conflict{{Label: "A", Owners: []string{"A", "B"}}},
	}
}

func sampleInfos() []templates.Info {
	return []templates.Info{
		{Path: "templates/template_solid.svg", StyleName: "solid", Extension: ".svg", Width: "32", Height: "40"},
		{Path: "templates/template_bad.svg", StyleName: "bad", Extension: ".svg", Missing: []string{"{font_size}"}, ViewBox: "0 0 32 40"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"term", FormatTerminal, false},
		{"Terminal", FormatTerminal, false},
		{"text", FormatText, false},
		{"plain", FormatText, false},
		{"json", FormatJSON, false},
		{"xml", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	for _, f := range []Format{FormatAuto, FormatTerminal, FormatText, FormatJSON} {
		parsed, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	assert.Equal(t, "unknown", Format(42).String())
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer

	r, err := NewRenderer(FormatAuto, &buf)
	require.NoError(t, err)
	assert.IsType(t, &textRenderer{}, r, "non-file writers get plain text")

	_, err = NewRenderer(Format(99), &buf)
	assert.Error(t, err)
}

func TestTextRenderer(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newTextRenderer(&buf).RenderSummary(sampleSummary()))

		out := buf.String()
		assert.Contains(t, out, "Templates: 2")
		assert.Contains(t, out, "Generated: 3")
		assert.Contains(t, out, "Skipped:   2")
		assert.Contains(t, out, "Failed:    1")
		assert.Contains(t, out, "Issues (2):")
		assert.Contains(t, out, "[FILE_WRITE] cannot write icons/solid/png.svg")
		assert.NotContains(t, out, "Dry run")
	})

	t.Run("dry_run_summary", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newTextRenderer(&buf).RenderSummary(types.Summary{DryRun: true, Generated: 1}))
		assert.True(t, strings.HasPrefix(buf.String(), "Dry run"))
	})

	t.Run("check", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newTextRenderer(&buf).RenderCheck(sampleReport()))

		out := buf.String()
		assert.Contains(t, out, "  - A -> B")
		assert.Contains(t, out, "Total: 2 extensions and 1 aliases.")
		assert.Contains(t, out, "A is declared by A, B")
	})

	t.Run("clean_check", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newTextRenderer(&buf).RenderCheck(duplicates.Report{Extensions: 1}))
		assert.Contains(t, buf.String(), "No duplicate extensions or aliases found.")
	})

	t.Run("templates", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newTextRenderer(&buf).RenderTemplates(sampleInfos()))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "solid\t.svg\tok\t32x40\ttemplates/template_solid.svg", lines[0])
		assert.Equal(t, "bad\t.svg\tmissing {font_size}\tviewBox 0 0 32 40\ttemplates/template_bad.svg", lines[1])
	})
}

func TestJSONRenderer(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newJSONRenderer(&buf).RenderSummary(sampleSummary()))

		var got summaryJSON
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, 3, got.Generated)
		assert.Equal(t, 6, got.Total)
		require.Len(t, got.Issues, 2)
		assert.Equal(t, "TEMPLATE_PLACEHOLDER", got.Issues[0].Code)
	})

	t.Run("empty_summary_has_issue_list", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newJSONRenderer(&buf).RenderSummary(types.Summary{}))
		assert.Contains(t, buf.String(), `"issues": []`)
	})

	t.Run("check", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newJSONRenderer(&buf).RenderCheck(sampleReport()))

		var got checkJSON
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []linkJSON{{Alias: "A", Extension: "B"}}, got.Links)
		assert.Equal(t, []conflictJSON{{Label: "A", Owners: []string{"A", "B"}}}, got.Conflicts)
	})

	t.Run("templates", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newJSONRenderer(&buf).RenderTemplates(sampleInfos()))

		var got []templateJSON
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 2)
		assert.True(t, got[0].Valid)
		assert.False(t, got[1].Valid)
		assert.Equal(t, []string{"{font_size}"}, got[1].Missing)
	})

	t.Run("error", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newJSONRenderer(&buf).RenderError(errors.New(errors.ErrNoTemplates, "none")))

		var got map[string]issue
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "NO_TEMPLATES", got["error"].Code)
	})
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := newTerminalRenderer(&buf)

	require.NoError(t, r.RenderSummary(sampleSummary()))
	require.NoError(t, r.RenderCheck(sampleReport()))
	require.NoError(t, r.RenderTemplates(sampleInfos()))
	require.NoError(t, r.RenderMessage("hello"))
	require.NoError(t, r.RenderError(errors.New(errors.ErrNoRecords, "nothing")))

	out := buf.String()
	assert.Contains(t, out, "Issues (2)")
	assert.Contains(t, out, "cannot write icons/solid/png.svg")
	assert.Contains(t, out, "is declared by A, B")
	assert.Contains(t, out, "template_bad.svg")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "[NO_RECORDS] nothing")
}

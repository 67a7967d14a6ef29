package exticons

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/exticons/pkg/errors"
	"github.com/arthur-debert/exticons/pkg/filesystem"
	"github.com/arthur-debert/exticons/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// project is a testutil.Project on the OS filesystem plus a settings file
// pointing at it.
type project struct {
	testutil.Project
	dir      string
	mapping  string
	settings string
	output   string
}

func newProject(t *testing.T, mapping string) project {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg-config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "xdg-state"))

	fsys := filesystem.NewOS()
	base := testutil.NewProject(t, fsys, dir, mapping, map[string]string{"solid": testutil.SolidTemplate})
	p := project{
		Project:  base,
		dir:      dir,
		mapping:  base.Mapping,
		settings: filepath.Join(dir, "exticons.toml"),
		output:   base.Output,
	}

	settings := "[paths]\n" +
		"config = " + quote(base.Mapping) + "\n" +
		"templates = " + quote(base.Templates) + "\n" +
		"output = " + quote(base.Output) + "\n"
	testutil.CreateFile(t, fsys, p.settings, settings)
	return p
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func (p project) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--settings", p.settings))
	err := cmd.Execute()
	return out.String(), err
}

type summaryOutput struct {
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
	Templates int `json:"templates"`
	Issues    []struct {
		Code string `json:"code"`
	} `json:"issues"`
}

func decodeSummary(t *testing.T, out string) summaryOutput {
	t.Helper()
	var s summaryOutput
	require.NoError(t, json.Unmarshal([]byte(out), &s), out)
	return s
}

func TestGenerateCommand(t *testing.T) {
	p := newProject(t, `{"PNG":"#FF0000","DOC":{"color":"#2B579A","aliases":["DOCX"]}}`)

	out, err := p.run(t, "--format", "json")
	require.NoError(t, err)
	s := decodeSummary(t, out)
	assert.Equal(t, 3, s.Generated)
	assert.Equal(t, 1, s.Templates)

	icon := testutil.ReadFile(t, filesystem.NewOS(), p.Icon("solid", "png"))
	assert.Contains(t, icon, `fill="#FF0000"`)
	assert.Contains(t, icon, `font-size="10"`)
	assert.Contains(t, icon, ">PNG<")

	t.Run("second_run_skips", func(t *testing.T) {
		out, err := p.run(t, "generate", "--format", "json")
		require.NoError(t, err)
		s := decodeSummary(t, out)
		assert.Equal(t, 0, s.Generated)
		assert.Equal(t, 3, s.Skipped)
	})

	t.Run("force_regenerates", func(t *testing.T) {
		out, err := p.run(t, "generate", "--force", "--workers", "2", "--format", "json")
		require.NoError(t, err)
		assert.Equal(t, 3, decodeSummary(t, out).Generated)
	})

	t.Run("flat_output_dir", func(t *testing.T) {
		flat := filepath.Join(p.dir, "flat")
		_, err := p.run(t, p.mapping, "--output-dir", flat, "--format", "text")
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(flat, "docx.svg"))
	})

	t.Run("dry_run", func(t *testing.T) {
		other := filepath.Join(p.dir, "dry")
		out, err := p.run(t, "--output-dir", other, "--dry-run", "--format", "text")
		require.NoError(t, err)
		assert.Contains(t, out, "Dry run")
		assert.NoDirExists(t, other)
	})
}

func TestGenerateCommandErrors(t *testing.T) {
	t.Run("missing_mapping", func(t *testing.T) {
		p := newProject(t, `{"PNG":"#f00"}`)
		_, err := p.run(t, filepath.Join(p.dir, "nope.json"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("no_templates", func(t *testing.T) {
		p := newProject(t, `{"PNG":"#f00"}`)
		_, err := p.run(t, "--templates-dir", filepath.Join(p.dir, "empty"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoTemplates))
	})

	t.Run("bad_format", func(t *testing.T) {
		p := newProject(t, `{"PNG":"#f00"}`)
		_, err := p.run(t, "--format", "xml")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("invalid_template_is_reported_not_fatal", func(t *testing.T) {
		p := newProject(t, `{"PNG":"#f00"}`)
		broken := filepath.Join(p.dir, "template_broken.svg")
		require.NoError(t, os.WriteFile(broken, []byte(`<svg fill="{color}">{extension}</svg>`), 0644))

		out, err := p.run(t, "--template", broken, "--format", "json")
		require.NoError(t, err)
		s := decodeSummary(t, out)
		assert.Equal(t, 0, s.Generated)
		require.Len(t, s.Issues, 1)
		assert.Equal(t, "TEMPLATE_PLACEHOLDER", s.Issues[0].Code)
	})
}

func TestCheckCommand(t *testing.T) {
	t.Run("conflict_exits_with_error", func(t *testing.T) {
		p := newProject(t, `{"A":"#000","B":{"color":"#111","aliases":["A"]}}`)

		for _, args := range [][]string{{"check", "--format", "text"}, {"--check", "--format", "text"}} {
			out, err := p.run(t, args...)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrLabelConflict))
			assert.Contains(t, out, "A -> B")
			assert.Contains(t, out, "A is declared by A, B")
		}
		assert.NoDirExists(t, p.output)
	})

	t.Run("clean_mapping", func(t *testing.T) {
		p := newProject(t, `{"A":"#000","B":{"color":"#111","aliases":["C"]}}`)
		out, err := p.run(t, "check", p.mapping, "--format", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"conflicts": []`)
	})
}

func TestTemplatesCommand(t *testing.T) {
	p := newProject(t, `{"PNG":"#f00"}`)

	out, err := p.run(t, "templates", "--format", "json")
	require.NoError(t, err)

	var infos []struct {
		Style string `json:"style"`
		Valid bool   `json:"valid"`
		Width string `json:"width"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "solid", infos[0].Style)
	assert.True(t, infos[0].Valid)
	assert.Equal(t, "32", infos[0].Width)
}

func TestConfigCommand(t *testing.T) {
	p := newProject(t, `{"PNG":"#f00"}`)
	t.Setenv("EXTICONS_GENERATE_WORKERS", "5")

	out, err := p.run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "[paths]")
	assert.Contains(t, out, "workers = 5")
	assert.Contains(t, out, filepath.Base(p.output))
}

func TestMiscCommands(t *testing.T) {
	p := newProject(t, `{"PNG":"#f00"}`)

	out, err := p.run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "exticons version "))

	out, err = p.run(t, "guide")
	require.NoError(t, err)
	assert.Contains(t, out, "# exticons guide")

	out, err = p.run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "exticons")

	_, err = p.run(t, "completion", "tcsh")
	assert.Error(t, err)
}

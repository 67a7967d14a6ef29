package templates

import (
	"testing"

	"github.com/arthur-debert/exticons/pkg/errors"
	"github.com/arthur-debert/exticons/pkg/filesystem"
	"github.com/arthur-debert/exticons/pkg/render"
	"github.com/arthur-debert/exticons/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="32" height="40" viewBox="0 0 32 40"><rect fill="{color}"/><text font-size="{font_size}">{extension}</text></svg>`

func TestConventionStyleName(t *testing.T) {
	conv := DefaultConvention()

	tests := []struct {
		filename string
		want     string
	}{
		{"template_solid.svg", "solid"},
		{"templates/template_outline.svg", "outline"},
		{"template_flat_dark.svg", "flat_dark"},
		{"custom.svg", "custom"},
		{"template_round.xml", "round"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, conv.StyleName(tt.filename))
		})
	}
}

func TestConventionMatches(t *testing.T) {
	conv := DefaultConvention()

	assert.True(t, conv.Matches("template_solid.svg"))
	assert.False(t, conv.Matches("template_.svg"))
	assert.False(t, conv.Matches("solid.svg"))
	assert.False(t, conv.Matches("template_solid.png"))
}

func TestDiscover(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/templates/template_nested.svg", 0755))
	require.NoError(t, fs.WriteFile("/templates/template_solid.svg", []byte(validSVG), 0644))
	require.NoError(t, fs.WriteFile("/templates/template_outline.svg", []byte(validSVG), 0644))
	require.NoError(t, fs.WriteFile("/templates/readme.md", []byte("docs"), 0644))
	require.NoError(t, fs.WriteFile("/templates/icon.svg", []byte(validSVG), 0644))

	found, issues, err := Discover(fs, "/templates", DefaultConvention())
	require.NoError(t, err)
	assert.Empty(t, issues)
	require.Len(t, found, 2)

	assert.Equal(t, "outline", found[0].StyleName)
	assert.Equal(t, "/templates/template_outline.svg", found[0].Path)
	assert.Equal(t, ".svg", found[0].Extension)
	assert.Equal(t, validSVG, found[0].RawText)
	assert.Equal(t, "solid", found[1].StyleName)
}

func TestDiscoverErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, _, err := Discover(filesystem.NewMemory(), "/nope", DefaultConvention())
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoTemplates))
	})

	t.Run("no matching files", func(t *testing.T) {
		fs := filesystem.NewMemory()
		require.NoError(t, fs.MkdirAll("/templates", 0755))
		require.NoError(t, fs.WriteFile("/templates/other.svg", []byte(validSVG), 0644))

		_, _, err := Discover(fs, "/templates", DefaultConvention())
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoTemplates))
	})

	t.Run("custom convention", func(t *testing.T) {
		fs := filesystem.NewMemory()
		require.NoError(t, fs.MkdirAll("/t", 0755))
		require.NoError(t, fs.WriteFile("/t/icon-flat.svg", []byte(validSVG), 0644))

		found, _, err := Discover(fs, "/t", Convention{Prefix: "icon-", Suffix: ".svg"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "flat", found[0].StyleName)
	})
}

func TestLoad(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/x", 0755))
	require.NoError(t, fs.WriteFile("/x/template_solid.svg", []byte(validSVG), 0644))

	tmpl, err := Load(fs, "/x/template_solid.svg", DefaultConvention())
	require.NoError(t, err)
	assert.Equal(t, "solid", tmpl.StyleName)

	_, err = Load(fs, "/x/missing.svg", DefaultConvention())
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRead))
}

func TestInspect(t *testing.T) {
	placeholders := render.DefaultPlaceholders()

	t.Run("valid svg", func(t *testing.T) {
		info := Inspect(types.TemplateDescriptor{Path: "a.svg", StyleName: "a", RawText: validSVG}, placeholders)
		assert.True(t, info.Valid())
		assert.Equal(t, "32", info.Width)
		assert.Equal(t, "40", info.Height)
		assert.Equal(t, "0 0 32 40", info.ViewBox)
	})

	t.Run("missing placeholder", func(t *testing.T) {
		info := Inspect(types.TemplateDescriptor{RawText: `<svg><rect fill="{color}"/>{extension}</svg>`}, placeholders)
		assert.False(t, info.Valid())
		assert.Equal(t, []string{"{font_size}"}, info.Missing)
	})

	t.Run("not xml", func(t *testing.T) {
		info := Inspect(types.TemplateDescriptor{RawText: `{color}{extension}{font_size}<svg`}, placeholders)
		assert.True(t, info.Valid())
		assert.Empty(t, info.Width)
		assert.Empty(t, info.ViewBox)
	})
}

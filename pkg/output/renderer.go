package output

import (
	"io"
	"os"

	"github.com/arthur-debert/exticons/pkg/duplicates"
	"github.com/arthur-debert/exticons/pkg/errors"
	"github.com/arthur-debert/exticons/pkg/templates"
	"github.com/arthur-debert/exticons/pkg/types"
)

// Renderer writes exticons reports in one format.
type Renderer interface {
	// RenderSummary renders the outcome of a generation run
	RenderSummary(summary types.Summary) error

	// RenderCheck renders a duplicate check report
	RenderCheck(report duplicates.Report) error

	// RenderTemplates renders a template listing
	RenderTemplates(infos []templates.Info) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format writing to w. FormatAuto
// detects terminal capabilities when w is a file and falls back to plain
// text otherwise.
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := w.(*os.File); ok {
			return NewRenderer(DetectFormat(file), w)
		}
		return NewRenderer(FormatText, w)
	case FormatTerminal:
		return newTerminalRenderer(w), nil
	case FormatText:
		return newTextRenderer(w), nil
	case FormatJSON:
		return newJSONRenderer(w), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

// issue is the flattened form of a reported error.
type issue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func issuesOf(errs []error) []issue {
	out := make([]issue, 0, len(errs))
	for _, err := range errs {
		out = append(out, issue{
			Code:    string(errors.GetErrorCode(err)),
			Message: err.Error(),
		})
	}
	return out
}

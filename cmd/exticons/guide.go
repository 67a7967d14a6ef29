package exticons

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "guide",
		Short:   MsgGuideShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			content := guideMarkdown
			if stdoutIsTerminal() {
				content = renderMarkdown(content)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}

// renderMarkdown renders markdown with glamour, falling back to the raw text.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

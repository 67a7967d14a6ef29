package exticons

import (
	"github.com/arthur-debert/exticons/pkg/commands"
	"github.com/arthur-debert/exticons/pkg/logging"
	"github.com/spf13/cobra"
)

func newTemplatesCmd(global *globalFlags) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "templates",
		Short:   MsgTemplatesShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := global.settings()
			if err != nil {
				return err
			}
			renderer, err := global.renderer(cmd)
			if err != nil {
				return err
			}

			infos, issues, err := commands.ListTemplates(commands.ListTemplatesOptions{Settings: settings, Dir: dir})
			if err != nil {
				return err
			}
			logger := logging.GetLogger("cmd.templates")
			for _, issue := range issues {
				logger.Warn().Err(issue).Msg("template skipped")
			}
			return renderer.RenderTemplates(infos)
		},
	}
	cmd.Flags().StringVar(&dir, "templates-dir", "", MsgFlagTemplatesDir)
	_ = cmd.MarkFlagDirname("templates-dir")
	return cmd
}

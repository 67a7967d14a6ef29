package exticons

import (
	"fmt"

	"github.com/arthur-debert/exticons/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := global.settings()
			if err != nil {
				return err
			}
			dump, err := config.Dump(settings)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), dump)
			return err
		},
	}
}

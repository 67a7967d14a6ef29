package exticons

import (
	"github.com/arthur-debert/exticons/pkg/commands"
	"github.com/arthur-debert/exticons/pkg/errors"
	"github.com/spf13/cobra"
)

func newCheckCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "check [config-file]",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, global, args)
		},
	}
}

// runCheck renders the duplicate report and fails when any label conflicts.
func runCheck(cmd *cobra.Command, global *globalFlags, args []string) error {
	settings, err := global.settings()
	if err != nil {
		return err
	}
	renderer, err := global.renderer(cmd)
	if err != nil {
		return err
	}

	opts := commands.CheckOptions{Settings: settings}
	if len(args) == 1 {
		opts.ConfigPath = args[0]
	}

	result, err := commands.Check(opts)
	if err != nil {
		return err
	}
	if err := renderer.RenderCheck(result.Report); err != nil {
		return err
	}

	if result.Report.HasConflicts() {
		return errors.Newf(errors.ErrLabelConflict, MsgCheckConflicts, len(result.Report.Conflicts)).
			WithDetail("conflicts", len(result.Report.Conflicts))
	}
	return nil
}

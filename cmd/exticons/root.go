// Package exticons is the exticons command line.
package exticons

import (
	"github.com/arthur-debert/exticons/internal/version"
	"github.com/arthur-debert/exticons/pkg/config"
	"github.com/arthur-debert/exticons/pkg/logging"
	"github.com/arthur-debert/exticons/pkg/output"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every command.
type globalFlags struct {
	verbosity    int
	settingsFile string
	format       string
}

// settings loads the layered settings, honoring --settings.
func (g *globalFlags) settings() (*config.Settings, error) {
	return config.Load(config.DefaultSources(g.settingsFile))
}

// renderer builds the output renderer for --format writing to the command's stdout.
func (g *globalFlags) renderer(cmd *cobra.Command) (output.Renderer, error) {
	format, err := output.ParseFormat(g.format)
	if err != nil {
		return nil, err
	}
	return output.NewRenderer(format, cmd.OutOrStdout())
}

// NewRootCmd creates and returns the root command. Run without a
// subcommand it generates icons, or checks the mapping with --check.
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		global globalFlags
		gen    generateFlags
		check  bool
	)

	rootCmd := &cobra.Command{
		Use:     "exticons [config-file]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgGenerateExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(global.verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if check {
				return runCheck(cmd, &global, args)
			}
			return runGenerate(cmd, &global, &gen, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&global.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&global.settingsFile, "settings", "", MsgFlagSettings)
	rootCmd.PersistentFlags().StringVar(&global.format, "format", "auto", MsgFlagFormat)

	gen.register(rootCmd)
	rootCmd.Flags().BoolVar(&check, "check", false, MsgFlagCheck)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenerateCmd(&global))
	rootCmd.AddCommand(newCheckCmd(&global))
	rootCmd.AddCommand(newTemplatesCmd(&global))
	rootCmd.AddCommand(newConfigCmd(&global))
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

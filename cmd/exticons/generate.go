package exticons

import (
	"github.com/arthur-debert/exticons/pkg/commands"
	"github.com/arthur-debert/exticons/pkg/logging"
	"github.com/spf13/cobra"
)

// generateFlags are the flags of the root command and of generate.
type generateFlags struct {
	template     string
	templatesDir string
	outputDir    string
	force        bool
	dryRun       bool
	workers      int
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.template, "template", "", MsgFlagTemplate)
	cmd.Flags().StringVar(&f.templatesDir, "templates-dir", "", MsgFlagTemplatesDir)
	cmd.Flags().StringVar(&f.outputDir, "output-dir", "", MsgFlagOutputDir)
	cmd.Flags().BoolVarP(&f.force, "force", "f", false, MsgFlagForce)
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().IntVarP(&f.workers, "workers", "j", 0, MsgFlagWorkers)

	_ = cmd.MarkFlagFilename("template", "svg")
	_ = cmd.MarkFlagDirname("templates-dir")
	_ = cmd.MarkFlagDirname("output-dir")
}

func newGenerateCmd(global *globalFlags) *cobra.Command {
	var gen generateFlags

	cmd := &cobra.Command{
		Use:     "generate [config-file]",
		Short:   MsgGenerateShort,
		Long:    MsgRootLong,
		Example: MsgGenerateExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, global, &gen, args)
		},
	}
	gen.register(cmd)
	return cmd
}

func runGenerate(cmd *cobra.Command, global *globalFlags, gen *generateFlags, args []string) error {
	logger := logging.GetLogger("cmd.generate")

	settings, err := global.settings()
	if err != nil {
		return err
	}
	renderer, err := global.renderer(cmd)
	if err != nil {
		return err
	}

	opts := commands.GenerateOptions{
		Settings:     settings,
		TemplatePath: gen.template,
		TemplatesDir: gen.templatesDir,
		OutputDir:    gen.outputDir,
		Force:        gen.force,
		DryRun:       gen.dryRun,
		Workers:      gen.workers,
	}
	if len(args) == 1 {
		opts.ConfigPath = args[0]
	}
	logger.Info().
		Str("config", opts.ConfigPath).
		Str("template", opts.TemplatePath).
		Str("outputDir", opts.OutputDir).
		Bool("force", opts.Force).
		Bool("dryRun", opts.DryRun).
		Msg("Starting generate")

	summary, err := commands.Generate(cmd.Context(), opts)
	if err != nil {
		return err
	}
	return renderer.RenderSummary(summary)
}

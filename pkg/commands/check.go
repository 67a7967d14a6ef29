package commands

import (
	"github.com/arthur-debert/exticons/pkg/config"
	"github.com/arthur-debert/exticons/pkg/duplicates"
	"github.com/arthur-debert/exticons/pkg/logging"
	"github.com/arthur-debert/exticons/pkg/types"
)

// CheckOptions defines the options for the Check command.
type CheckOptions struct {
	FS       types.FS
	Settings *config.Settings

	// ConfigPath is the extension mapping document.
	ConfigPath string
}

// CheckResult is the duplicate report plus the record errors met while
// loading the mapping.
type CheckResult struct {
	Report duplicates.Report
	Issues []error
}

// Check loads the mapping and reports every label declared more than once.
func Check(opts CheckOptions) (*CheckResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Check").Msg("Executing command")

	settings, err := settingsOrDefault(opts.Settings)
	if err != nil {
		return nil, err
	}

	result, err := loadRecords(fsOrOS(opts.FS), opts.ConfigPath, settings)
	if err != nil {
		return nil, err
	}

	report := duplicates.Inspect(result.Records)
	for _, c := range report.Conflicts {
		log.Warn().Str("label", c.Label).Strs("owners", c.Owners).Msg("label declared more than once")
	}
	return &CheckResult{Report: report, Issues: result.Issues}, nil
}

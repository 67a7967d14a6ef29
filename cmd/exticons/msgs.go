package exticons

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate SVG file-extension icons from templates"
	MsgGenerateShort   = "Generate icons for every extension and template"
	MsgCheckShort      = "Report extensions and aliases declared more than once"
	MsgTemplatesShort  = "List templates and their placeholder status"
	MsgConfigShort     = "Print the effective settings as TOML"
	MsgGuideShort      = "Show the mapping and template guide"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgCheckConflicts = "%d label(s) declared more than once"
	MsgVersionFormat  = "exticons version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagSettings     = "Settings file (default ./exticons.toml)"
	MsgFlagFormat       = "Output format: auto, term, text or json"
	MsgFlagTemplate     = "Use only this template file"
	MsgFlagTemplatesDir = "Directory templates are discovered in"
	MsgFlagOutputDir    = "Write every icon directly into this directory"
	MsgFlagForce        = "Overwrite existing icons"
	MsgFlagDryRun       = "Count what would be generated without writing anything"
	MsgFlagWorkers      = "Number of parallel workers (default from settings)"
	MsgFlagCheck        = "Only check the mapping for duplicate labels"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/guide.md
	guideMarkdown string
)

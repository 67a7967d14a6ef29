// Package commands implements the exticons operations behind the CLI:
// generation, the duplicate check and the template listing. Each operation
// takes an options struct and returns a result; presentation is left to the
// caller.
package commands

import (
	"github.com/arthur-debert/exticons/pkg/config"
	"github.com/arthur-debert/exticons/pkg/extensions"
	"github.com/arthur-debert/exticons/pkg/filesystem"
	"github.com/arthur-debert/exticons/pkg/types"
)

func settingsOrDefault(s *config.Settings) (*config.Settings, error) {
	if s != nil {
		return s, nil
	}
	return config.Default()
}

func fsOrOS(fsys types.FS) types.FS {
	if fsys != nil {
		return fsys
	}
	return filesystem.NewOS()
}

// loadRecords loads the mapping at path, or at the configured default path.
func loadRecords(fsys types.FS, path string, settings *config.Settings) (*extensions.Result, error) {
	if path == "" {
		path = settings.Paths.Config
	}
	return extensions.Load(fsys, path)
}

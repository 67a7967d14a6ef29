package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/exticons/pkg/errors"
	"github.com/arthur-debert/exticons/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

const (
	// EnvPrefix prefixes every settings environment variable.
	EnvPrefix = "EXTICONS_"

	// ProjectFile is looked up in the working directory.
	ProjectFile = "exticons.toml"
)

// Sources names the files layered over the embedded defaults. Empty paths
// are skipped.
type Sources struct {
	User    string
	Project string

	// ProjectRequired makes a missing project file an error, as when the
	// file was named explicitly.
	ProjectRequired bool
}

// DefaultSources returns the standard user file and either settingsFile
// (required) or ./exticons.toml (optional).
func DefaultSources(settingsFile string) Sources {
	src := Sources{User: UserFile(), Project: ProjectFile}
	if settingsFile != "" {
		src.Project = settingsFile
		src.ProjectRequired = true
	}
	return src
}

// UserFile returns the per-user settings path.
func UserFile() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "exticons", "config.toml")
}

// Load builds the effective settings and validates them.
func Load(src Sources) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default settings")
	}

	// 2. User file
	if err := loadFile(k, src.User, false); err != nil {
		return nil, err
	}

	// 3. Project file
	if err := loadFile(k, src.Project, src.ProjectRequired); err != nil {
		return nil, err
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load settings from environment")
	}

	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("user", src.User).
		Str("project", src.Project).
		Interface("settings", settings).
		Msg("settings loaded")
	return &settings, nil
}

// Default returns the embedded defaults alone.
func Default() (*Settings, error) {
	return Load(Sources{})
}

func loadFile(k *koanf.Koanf, path string, required bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read settings file %s", path).
			WithDetail("path", path)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse settings file %s", path).
			WithDetail("path", path)
	}
	return nil
}

// Dump serializes settings as TOML.
func Dump(settings *Settings) (string, error) {
	data, err := gotoml.Marshal(settings)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode settings")
	}
	return string(data), nil
}

// Package config loads exticons settings.
//
// Settings are layered with koanf, later layers overriding earlier ones:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/exticons/config.toml
//  3. the project file, ./exticons.toml or the file given with --settings
//  4. EXTICONS_<SECTION>_<KEY> environment variables
//
// Only the first underscore after the prefix separates section and key, so
// EXTICONS_PLACEHOLDERS_FONT_SIZE sets placeholders.font_size.
package config

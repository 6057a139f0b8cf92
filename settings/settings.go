// Package settings persists localterm user settings.
//
// Settings are stored as a flat JSON object in the XDG config
// directory:
//
//	$XDG_CONFIG_HOME/localterm/settings.json  (default: ~/.config/localterm/)
//
// Every file carries a schema-identity pair (config_id, config_schema).
// If either field differs from the current build's constants, all
// stored values are discarded, defaults are restored, and the refreshed
// identity pair is persisted immediately. Settings are never migrated
// between schema revisions; a version bump means a clean slate.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDirName = "localterm"
	fileName      = "settings.json"
)

// Schema identity for the current build. Bump ConfigSchema whenever the
// stored field set changes incompatibly.
const (
	ConfigID     = "localterm"
	ConfigSchema = "1.0"
)

// Defaults for a fresh or reset settings file.
const (
	DefaultURLBase = "https://gramps-project.org/wiki/index.php/"
	DefaultFg      = "#000000"
	DefaultBg      = "#ffffff"
)

// Settings is the flat key-value record persisted between runs.
// Language selections are stored as file names, not list positions, so
// reordering the glossary directory cannot corrupt saved choices.
type Settings struct {
	// ShowAnchor toggles the anchor column in the panel.
	ShowAnchor bool `json:"show_anchor"`
	// TrackChanges enables divergent-translation highlighting.
	TrackChanges bool `json:"track_changes"`
	// URLBase is the glossary wiki base URL. The historic key name
	// "url_bas" is kept for compatibility with existing files.
	URLBase string `json:"url_bas"`
	// SearchLang selects which language column incremental search
	// matches against (1 or 2).
	SearchLang int `json:"search_lang"`
	// FgColor and BgColor are the colors for normal rows.
	FgColor string `json:"fg_sel_col"`
	BgColor string `json:"bg_sel_col"`
	// Lang1File and Lang2File are the selected glossary file names.
	Lang1File string `json:"lang1_file"`
	Lang2File string `json:"lang2_file"`

	// Identity pair, validated on load.
	ConfigID     string `json:"config_id"`
	ConfigSchema string `json:"config_schema"`
}

// Default returns the hard-coded defaults with the current identity.
func Default() *Settings {
	return &Settings{
		ShowAnchor:   true,
		TrackChanges: true,
		URLBase:      DefaultURLBase,
		SearchLang:   1,
		FgColor:      DefaultFg,
		BgColor:      DefaultBg,
		ConfigID:     ConfigID,
		ConfigSchema: ConfigSchema,
	}
}

// configDir returns the XDG config directory for localterm.
// Respects $XDG_CONFIG_HOME (falls back to ~/.config).
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, configDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", configDirName), nil
}

// FilePath returns the settings.json path for display purposes.
func FilePath() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, fileName)
}

// Load reads settings from disk. A missing or unreadable file, invalid
// JSON, or a schema-identity mismatch all reset to defaults; after a
// reset the refreshed file is persisted right away so the next load is
// clean. Load never fails.
func Load() *Settings {
	dir, err := configDir()
	if err != nil {
		return Default()
	}

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		return resetAndPersist()
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return resetAndPersist()
	}
	if s.ConfigID != ConfigID || s.ConfigSchema != ConfigSchema {
		return resetAndPersist()
	}
	return &s
}

func resetAndPersist() *Settings {
	s := Default()
	// Best effort; a read-only config dir still yields usable defaults.
	_ = Save(s)
	return s
}

// Save writes the settings file, creating the config directory as
// needed. The identity pair is stamped on every save.
func Save(s *Settings) error {
	dir, err := configDir()
	if err != nil {
		return err
	}

	s.ConfigID = ConfigID
	s.ConfigSchema = ConfigSchema

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

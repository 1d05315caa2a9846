// Package config loads the optional user overrides file. Auto-detection of
// the Cura environment covers most setups; the file exists for the ones it
// misses. Precedence is CLI flag > overrides file > auto-detection.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Overrides are the user-pinned values that replace auto-detection.
type Overrides struct {
	InstallPath    string `toml:"install_path"`
	DataPath       string `toml:"data_path"`
	SettingVersion int    `toml:"setting_version"`
}

// DefaultPath returns the conventional overrides file location, or "" when
// the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "curaprof", "curaprof.toml")
}

// Load reads the overrides file at path. A missing file (or empty path) is
// not an error: overrides are optional and the zero value means
// "auto-detect everything".
func Load(path string) (Overrides, error) {
	var o Overrides
	if path == "" {
		return o, nil
	}
	if _, err := toml.DecodeFile(path, &o); err != nil {
		if os.IsNotExist(err) {
			return Overrides{}, nil
		}
		return Overrides{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return o, nil
}

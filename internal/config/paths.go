package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file, following
// the XDG Base Directory Specification on Linux.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "chglog-uae", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
func ProjectConfigPath() string {
	return ".chglog-uae.yml"
}

// ProjectJSONConfigPath returns the path to the JSON project config file.
func ProjectJSONConfigPath() string {
	return ".chglog-uae.json"
}

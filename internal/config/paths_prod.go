//go:build prod

package config

import (
	"log"
	"os"
	"path/filepath"
)

// DefaultDataDir returns the per-user config directory in production builds.
func DefaultDataDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Warning: Failed to get user config dir: %v. Using fallback.", err)
		return "data"
	}
	return filepath.Join(configDir, "studydesk")
}

func IsDevelopment() bool {
	return false
}

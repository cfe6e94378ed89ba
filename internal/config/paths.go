package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths contains commonly used file paths.
type Paths struct {
	Database string // Local cache SQLite database
	Logs     string // Log directory
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	return Paths{
		Database: filepath.Join(cfg.BaseDir, "vocabforge.db"),
		Logs:     filepath.Join(cfg.BaseDir, "logs"),
	}
}

// DefaultBaseDir returns the default base directory, preferring the
// XDG data home and falling back to ~/.vocabforge.
func DefaultBaseDir() string {
	if xdg.DataHome != "" {
		return filepath.Join(xdg.DataHome, "vocabforge")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vocabforge"
	}
	return filepath.Join(home, ".vocabforge")
}

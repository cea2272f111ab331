package config

import (
	"os"
	"path/filepath"
)

// Config file names, in lookup order.
const (
	ConfigFileName    = "autolint.yaml"
	ConfigFileNameAlt = "autolint.yml"
)

// maxUpwardSearchLevels limits how far up the directory tree to search.
const maxUpwardSearchLevels = 10

// FindConfigFile returns the config file in dir, or "" if there is none.
func FindConfigFile(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// FindProjectRoot walks up from startDir to the nearest directory holding
// a config file. Returns "" if none is found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for range maxUpwardSearchLevels {
		if FindConfigFile(dir) != "" {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

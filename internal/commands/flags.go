// Package commands wires the CLI commands for klippy.
package commands

import (
	"os"
	"path/filepath"

	"github.com/klippy-app/klippy/internal/clipboard"
	"github.com/klippy-app/klippy/internal/core/config"
	"github.com/klippy-app/klippy/internal/klippy"
)

// Flags holds global flag values and the shared services built in the
// root command's Before hook.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Service is the clipboard history service
	Service *klippy.Service

	// Watcher bridges the OS clipboard into the service
	Watcher *klippy.Watcher

	// Clipboard is the system clipboard
	Clipboard clipboard.Clipboard
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "klippy", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "klippy")
}

// Package paths resolves the configuration directory and the optional
// schema file location for the fieldkit CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName is the directory name used under the platform config root.
const AppName = "fieldkit"

// Environment variable names for location overrides.
const (
	EnvConfigDir  = "FIELDKIT_CONFIG_DIR"
	EnvSchemaFile = "FIELDKIT_SCHEMA_FILE"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/fieldkit (fallback ~/.config/fieldkit)
// macOS:   ~/Library/Application Support/fieldkit
// Windows: %APPDATA%/fieldkit
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > FIELDKIT_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveSchemaFile returns the schema file to load following the precedence
// chain: flag > config.yaml value > FIELDKIT_SCHEMA_FILE env. A relative
// config.yaml value is taken relative to configDir. An empty result means
// the built-in schemas are used.
func ResolveSchemaFile(flag, configYAMLValue, configDir string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		if filepath.IsAbs(configYAMLValue) {
			return configYAMLValue, nil
		}
		return filepath.Join(configDir, configYAMLValue), nil
	}
	if env := os.Getenv(EnvSchemaFile); env != "" {
		return filepath.Abs(env)
	}
	return "", nil
}

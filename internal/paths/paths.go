// Package paths resolves the configuration directory and the todos
// storage directory.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// TodosDirName is the default storage directory name under the user's
// home directory.
const TodosDirName = "TODOS"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "DUEBOOK_CONFIG_DIR"
	EnvTodosDir  = "DUEBOOK_TODOS_DIR"
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
// Linux:   $XDG_CONFIG_HOME/duebook (fallback ~/.config/duebook)
// macOS:   ~/Library/Application Support/duebook
// Windows: %APPDATA%/duebook
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "duebook"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "duebook"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "duebook"), nil
	}
}

// DefaultTodosDir returns the default storage directory, ~/TODOS. The
// bucket files live directly inside it so they stay easy to find and
// hand-edit.
func DefaultTodosDir() (string, error) {
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, TodosDirName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > DUEBOOK_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveTodosDir returns the storage directory following the precedence
// chain: flag > config.yaml todos_dir > DUEBOOK_TODOS_DIR env >
// DefaultTodosDir().
func ResolveTodosDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvTodosDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultTodosDir()
}

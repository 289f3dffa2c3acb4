// Init command creates the configuration and storage directories.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	TodosDir string `yaml:"todos_dir,omitempty"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize duebook storage",
	Long:  "Create the configuration directory with a default config.yaml and the todos storage directory.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "init:", err)
		os.Exit(exitSysError)
	}
	if err := ensureConfigDir(configDir); err != nil {
		fmt.Fprintln(os.Stderr, "init:", err)
		os.Exit(exitSysError)
	}

	todosDir, err := resolveTodosDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "init:", err)
		os.Exit(exitSysError)
	}

	// Persist an explicit --todos-dir so later invocations find the same
	// files without the flag.
	configuredDir := ""
	if flagTodosDir != "" {
		configuredDir = todosDir
	}
	configPath := filepath.Join(configDir, configFileExt)
	if err := writeConfig(configPath, configuredDir); err != nil {
		fmt.Fprintln(os.Stderr, "init:", err)
		os.Exit(exitSysError)
	}

	if err := os.MkdirAll(todosDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "init:", err)
		os.Exit(exitSysError)
	}

	fmt.Println("Duebook initialized successfully")
	fmt.Println("  config:", configDir)
	fmt.Println("  todos: ", todosDir)
	return nil
}

// writeConfig persists config.yaml. An explicit todos_dir always wins;
// without one an existing file is left alone and a missing file gets the
// default content.
func writeConfig(path, todosDir string) error {
	if todosDir == "" {
		if _, err := os.Stat(path); err == nil {
			return nil
		}
		return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
	}

	cfg := configFile{TodosDir: todosDir}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

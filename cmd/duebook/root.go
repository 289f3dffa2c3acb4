// Root command for the duebook CLI.
package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/duebook/duebook/internal/paths"
	"github.com/duebook/duebook/pkg/duebook"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagTodosDir  string
	flagJSON      bool
	flagVerbose   bool
)

// configTodosDir holds the todos_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configTodosDir string

var rootCmd = &cobra.Command{
	Use:          "duebook",
	Short:        "Duebook is a local-first todo tracker backed by Markdown files",
	Version:      duebook.Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configTodosDir = cfg.GetString(cfgKeyTodosDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagTodosDir, "todos-dir", "", "todos storage directory (default: ~/TODOS)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(reorderCmd)
	rootCmd.AddCommand(rolloverCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > DUEBOOK_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveTodosDir returns the storage directory following the precedence:
// --todos-dir flag > config.yaml todos_dir > DUEBOOK_TODOS_DIR env > ~/TODOS.
func resolveTodosDir() (string, error) {
	return paths.ResolveTodosDir(flagTodosDir, configTodosDir)
}

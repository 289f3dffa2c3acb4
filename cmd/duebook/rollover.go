// Rollover command pushes today's unfinished todos to tomorrow.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Move today's unfinished todos to tomorrow",
	Long: `Rollover moves every todo due today that is not done to tomorrow and
raises its priority to high.

Example:
  duebook rollover`,
	Args: cobra.NoArgs,
	RunE: runRollover,
}

func runRollover(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	moved, err := s.RolloverToday()
	if err != nil {
		return fmt.Errorf("rollover: %w", err)
	}

	if moved == 0 {
		fmt.Println("Nothing to roll over.")
		return nil
	}
	fmt.Printf("Rolled over %d todo(s) to tomorrow\n", moved)
	return nil
}

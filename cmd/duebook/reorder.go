// Reorder command assigns manual ranks from an id list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reorderCmd = &cobra.Command{
	Use:   "reorder <id>...",
	Short: "Reorder todos",
	Long: `Reorder assigns manual ranks to the given todos in argument order:
the first id ranks first within its day. Todos not listed keep their
current rank.

Example:
  duebook reorder 9b1c2f9e 41d80a22 77aa31bc`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReorder,
}

func runReorder(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	if err := s.Reorder(args); err != nil {
		return fmt.Errorf("reorder todos: %w", err)
	}

	fmt.Printf("Reordered %d todo(s)\n", len(args))
	return nil
}

// Move command reschedules a todo to a different due date.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var moveOrder float64

var moveCmd = &cobra.Command{
	Use:   "move <id> <due>",
	Short: "Move a todo to a different due date",
	Long: `Move reschedules a todo. The due date is YYYY-MM-DD, or "none" to
make the todo undated. All other fields are kept.

Example:
  duebook move 9b1c2f9e 2026-02-14
  duebook move 9b1c2f9e none
  duebook move 9b1c2f9e 2026-02-14 --order 1`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

func init() {
	moveCmd.Flags().Float64Var(&moveOrder, "order", 0, "manual rank within the target day")
}

func runMove(cmd *cobra.Command, args []string) error {
	due, err := parseDueArg(args[1])
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	var order *float64
	if cmd.Flags().Changed("order") {
		v := moveOrder
		order = &v
	}

	if _, err := s.MoveDue(args[0], due, order); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("todo %q not found", args[0])
		}
		return fmt.Errorf("move todo: %w", err)
	}

	fmt.Println("Moved:", args[0], "->", dueLabel(due))
	return nil
}

// Done command marks a todo as completed.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duebook/duebook/pkg/types"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a todo as done",
	Long: `Done marks a todo as completed. Completing a recurring todo creates
its next occurrence automatically.

Example:
  duebook done 9b1c2f9e`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	existing, err := s.Read(args[0])
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("todo %q not found", args[0])
		}
		return fmt.Errorf("read todo: %w", err)
	}

	if _, err := s.Save(types.SavePayload{
		ID:     existing.ID,
		Due:    existing.Due,
		Status: types.StatusDone,
	}); err != nil {
		return fmt.Errorf("save todo: %w", err)
	}

	fmt.Println("Done:", types.StripDateSuffix(existing.Title))
	if existing.Recurring() {
		fmt.Println("Next occurrence scheduled if the series continues.")
	}
	return nil
}

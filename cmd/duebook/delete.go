// Delete command removes a todo or a recurring series.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteSeries bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a todo",
	Long: `Delete removes a todo. With --series it also removes every later
occurrence of the todo's recurring series; earlier occurrences are kept.

Example:
  duebook delete 9b1c2f9e
  duebook delete 9b1c2f9e --series`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteSeries, "series", false, "delete this and all future occurrences")
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	if deleteSeries {
		err = s.DeleteSeries(args[0])
	} else {
		err = s.Delete(args[0])
	}
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("todo %q not found", args[0])
		}
		return fmt.Errorf("delete todo: %w", err)
	}

	if deleteSeries {
		fmt.Println("Deleted series:", args[0])
	} else {
		fmt.Println("Deleted:", args[0])
	}
	return nil
}

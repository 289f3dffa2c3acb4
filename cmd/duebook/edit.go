// Edit command updates fields of an existing todo.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duebook/duebook/pkg/types"
)

var (
	editTitle       string
	editBody        string
	editDue         string
	editStatus      string
	editPriority    string
	editRemind      string
	editRepeat      string
	editRepeatEnd   string
	editRepeatCount int
	editTags        []string
	editOrder       float64
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing todo",
	Long: `Edit updates the given fields of a todo; fields without a flag keep
their current value. Moving the due date of an existing todo marks it
deferred unless --status says otherwise.

Example:
  duebook edit 9b1c2f9e --title "Water all plants"
  duebook edit 9b1c2f9e --due 2026-02-14
  duebook edit 9b1c2f9e --status done`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	editCmd.Flags().StringVar(&editBody, "body", "", "new note body")
	editCmd.Flags().StringVar(&editDue, "due", "", "new due date (YYYY-MM-DD, or none)")
	editCmd.Flags().StringVar(&editStatus, "status", "", "new status (todo, done, deferred)")
	editCmd.Flags().StringVar(&editPriority, "priority", "", "new priority (normal, high)")
	editCmd.Flags().StringVar(&editRemind, "remind", "", "new reminder offset (5m, 30m, 1h, 1d, none)")
	editCmd.Flags().StringVar(&editRepeat, "repeat", "", "new recurrence rule (daily, weekdays, biweekly, monthly, weekly:N, none)")
	editCmd.Flags().StringVar(&editRepeatEnd, "repeat-end", "", "new recurrence end date (YYYY-MM-DD)")
	editCmd.Flags().IntVar(&editRepeatCount, "repeat-count", 0, "new occurrence count (0 = unbounded)")
	editCmd.Flags().StringSliceVar(&editTags, "tag", nil, "replace tags (repeatable)")
	editCmd.Flags().Float64Var(&editOrder, "order", 0, "new manual rank within the day")
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	due := existing.Due
	if cmd.Flags().Changed("due") {
		due, err = parseDueArg(editDue)
		if err != nil {
			return err
		}
	}

	// Without an explicit --status, a moved due date defers the todo.
	status := editStatus
	if status == "" {
		status = types.StatusForSave(existing.Status, false, due, existing.Due)
	}

	payload := types.SavePayload{
		ID:              existing.ID,
		Title:           editTitle,
		Body:            editBody,
		Due:             due,
		Status:          status,
		Priority:        editPriority,
		Remind:          editRemind,
		Recurrence:      editRepeat,
		RecurrenceEnd:   editRepeatEnd,
		RecurrenceCount: editRepeatCount,
		Tags:            editTags,
	}
	if cmd.Flags().Changed("order") {
		order := editOrder
		payload.Order = &order
	}

	if _, err := s.Save(payload); err != nil {
		return fmt.Errorf("save todo: %w", err)
	}

	if flagJSON {
		record, err := s.Read(existing.ID)
		if err != nil {
			return fmt.Errorf("read todo: %w", err)
		}
		return printJSON(record)
	}

	fmt.Println("Updated:", existing.ID)
	return nil
}

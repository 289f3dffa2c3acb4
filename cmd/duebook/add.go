// Add command creates a new todo.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/duebook/duebook/pkg/types"
)

var (
	addBody        string
	addDue         string
	addStatus      string
	addPriority    string
	addRemind      string
	addRepeat      string
	addRepeatEnd   string
	addRepeatCount int
	addTags        []string
	addOrder       float64
)

var addCmd = &cobra.Command{
	Use:   "add <title>...",
	Short: "Add a new todo",
	Long: `Add creates a new todo. The title is taken from the arguments; all
other fields come from flags.

Example:
  duebook add Water the plants --due 2026-02-10
  duebook add Standup --due 2026-02-10 --repeat weekdays
  duebook add Pay rent --repeat monthly --repeat-count 12 --priority high`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addBody, "body", "", "freeform note body")
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD, or none)")
	addCmd.Flags().StringVar(&addStatus, "status", "", "status (todo, done, deferred)")
	addCmd.Flags().StringVar(&addPriority, "priority", "", "priority (normal, high)")
	addCmd.Flags().StringVar(&addRemind, "remind", "", "reminder offset (5m, 30m, 1h, 1d, none)")
	addCmd.Flags().StringVar(&addRepeat, "repeat", "", "recurrence rule (daily, weekdays, biweekly, monthly, weekly:N)")
	addCmd.Flags().StringVar(&addRepeatEnd, "repeat-end", "", "last date the recurrence may produce (YYYY-MM-DD)")
	addCmd.Flags().IntVar(&addRepeatCount, "repeat-count", 0, "total number of occurrences (0 = unbounded)")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "tag (repeatable)")
	addCmd.Flags().Float64Var(&addOrder, "order", 0, "manual rank within the day")
}

func runAdd(cmd *cobra.Command, args []string) error {
	due, err := parseDueArg(addDue)
	if err != nil {
		return err
	}

	payload := types.SavePayload{
		Title:           strings.Join(args, " "),
		Body:            addBody,
		Due:             due,
		Status:          addStatus,
		Priority:        addPriority,
		Remind:          addRemind,
		Recurrence:      addRepeat,
		RecurrenceEnd:   addRepeatEnd,
		RecurrenceCount: addRepeatCount,
		Tags:            addTags,
	}
	if cmd.Flags().Changed("order") {
		order := addOrder
		payload.Order = &order
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	id, err := s.Save(payload)
	if err != nil {
		return fmt.Errorf("save todo: %w", err)
	}

	if flagJSON {
		record, err := s.Read(id)
		if err != nil {
			return fmt.Errorf("read todo: %w", err)
		}
		return printJSON(record)
	}

	fmt.Println("Added:", id)
	return nil
}

// Show command displays a single todo with full details.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/duebook/duebook/pkg/recurrence"
	"github.com/duebook/duebook/pkg/types"
)

var showNext int

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Display a todo with full details",
	Long: `Show displays every field of one todo, including its body.

For recurring todos, --next previews the upcoming occurrence dates
without creating them.

Example:
  duebook show 9b1c2f9e
  duebook show 9b1c2f9e --next 5
  duebook show 9b1c2f9e --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVar(&showNext, "next", 0, "preview the next N occurrence dates of a recurring todo")
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	record, err := s.Read(args[0])
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("todo %q not found", args[0])
		}
		return fmt.Errorf("read todo: %w", err)
	}

	if flagJSON {
		return printJSON(record)
	}

	fmt.Println(record.Title)
	fmt.Println(strings.Repeat("=", len(record.Title)))
	fmt.Println("ID:      ", record.ID)
	fmt.Println("Status:  ", types.StatusLabel(record.Status))
	fmt.Println("Priority:", types.PriorityLabel(record.Priority))
	fmt.Println("Due:     ", dueLabel(record.Due))
	if label := types.RecurrenceLabel(record.Recurrence); label != "" {
		fmt.Println("Repeat:  ", label)
		if record.RecurrenceEnd != "" {
			fmt.Println("Until:   ", record.RecurrenceEnd)
		}
		if record.RecurrenceCount > 0 {
			fmt.Println("Left:    ", record.RecurrenceCount)
		}
	}
	if label := types.RemindLabel(record.Remind); label != "" {
		fmt.Println("Remind:  ", label)
	}
	if len(record.Tags) > 0 {
		fmt.Println("Tags:    ", strings.Join(record.Tags, ", "))
	}
	if !record.Created.IsZero() {
		fmt.Println("Created: ", record.Created.Local().Format("2006-01-02 15:04"))
	}
	if !record.Updated.IsZero() {
		fmt.Println("Updated: ", record.Updated.Local().Format("2006-01-02 15:04"))
	}
	if record.Body != "" {
		fmt.Println()
		fmt.Println(record.Body)
	}

	if showNext > 0 {
		printNextOccurrences(record, showNext)
	}
	return nil
}

// printNextOccurrences previews the upcoming due dates of a recurring
// todo, honoring its end bound and remaining count.
func printNextOccurrences(record *types.Record, n int) {
	if !record.Recurring() || record.Due == "" {
		fmt.Println()
		fmt.Println("Not a recurring todo.")
		return
	}

	remaining := record.RecurrenceCount
	due := record.Due
	var dates []string
	for len(dates) < n {
		next, ok := recurrence.NextDue(due, record.Recurrence)
		if !ok {
			break
		}
		if record.RecurrenceEnd != "" && next > record.RecurrenceEnd {
			break
		}
		if remaining != 0 {
			if remaining <= 1 {
				break
			}
			remaining--
		}
		dates = append(dates, next)
		due = next
	}

	fmt.Println()
	if len(dates) == 0 {
		fmt.Println("No upcoming occurrences.")
		return
	}
	fmt.Println("Upcoming:")
	for _, d := range dates {
		fmt.Println(" ", d)
	}
}

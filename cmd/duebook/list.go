// List command displays todos with optional filtering and sorting.
package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/duebook/duebook/pkg/types"
)

var (
	listStatus string
	listDue    string
	listTag    string
	listSort   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos",
	Long: `List fetches all todos and displays them.

Use --status, --due, or --tag to filter, and --sort to pick the order.

Example:
  duebook list
  duebook list --status todo
  duebook list --due 2026-02-10
  duebook list --tag home --sort title
  duebook list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (todo, done, deferred)")
	listCmd.Flags().StringVar(&listDue, "due", "", "filter by due date (YYYY-MM-DD, or none for undated)")
	listCmd.Flags().StringVar(&listTag, "tag", "", "filter by tag (case-insensitive)")
	listCmd.Flags().StringVar(&listSort, "sort", "due", "sort order (due, title, created, updated)")
}

// comparators maps --sort values to list item comparison functions.
var comparators = map[string]func(a, b types.ListItem) int{
	"due":     types.CompareDue,
	"title":   types.CompareTitle,
	"created": types.CompareCreated,
	"updated": types.CompareUpdated,
}

func runList(cmd *cobra.Command, args []string) error {
	compare, ok := comparators[listSort]
	if !ok {
		return fmt.Errorf("unknown sort %q (valid: due, title, created, updated)", listSort)
	}

	var dueFilter string
	filterByDue := listDue != ""
	if filterByDue {
		var err error
		dueFilter, err = parseDueArg(listDue)
		if err != nil {
			return err
		}
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	items, err := s.List()
	if err != nil {
		return fmt.Errorf("list todos: %w", err)
	}

	filtered := items[:0]
	for _, item := range items {
		if listStatus != "" && item.Status != listStatus {
			continue
		}
		if filterByDue && item.Due != dueFilter {
			continue
		}
		if listTag != "" && !hasTag(item.Tags, listTag) {
			continue
		}
		filtered = append(filtered, item)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if c := compare(filtered[i], filtered[j]); c != 0 {
			return c < 0
		}
		return types.CompareTitle(filtered[i], filtered[j]) < 0
	})

	if flagJSON {
		return printJSON(filtered)
	}

	printTodoTable(filtered)
	return nil
}

// hasTag reports whether tags contains tag, ignoring case.
func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// printTodoTable prints todos in a human-readable table format.
func printTodoTable(items []types.ListItem) {
	if len(items) == 0 {
		fmt.Println("No todos found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tDUE\tPRIORITY\tREPEAT")
	fmt.Fprintln(w, "--\t-----\t------\t---\t--------\t------")
	for _, item := range items {
		title := item.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		shortID := item.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID,
			title,
			item.Status,
			dueLabel(item.Due),
			item.Priority,
			item.Recurrence,
		)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d todo(s)\n", len(items))
}

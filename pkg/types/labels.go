package types

import (
	"strings"

	"github.com/duebook/duebook/pkg/recurrence"
)

// weekdayNames indexes weekday labels by the 0-6 day used in weekly
// recurrence rules (Sunday = 0).
var weekdayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// StatusLabel returns the display label for a status value.
func StatusLabel(status string) string {
	switch status {
	case StatusDone:
		return "Done"
	case StatusDeferred:
		return "Deferred"
	default:
		return "Todo"
	}
}

// PriorityLabel returns the display label for a priority value.
func PriorityLabel(priority string) string {
	if priority == PriorityHigh {
		return "High"
	}
	return "Normal"
}

// RemindLabel returns the display label for a remind offset, or the
// empty string when reminders are off.
func RemindLabel(value string) string {
	switch value {
	case "5m":
		return "Remind 5 minutes before"
	case "30m":
		return "Remind 30 minutes before"
	case "1h":
		return "Remind 1 hour before"
	case "1d":
		return "Remind 1 day before"
	default:
		return ""
	}
}

// RecurrenceLabel returns the display label for a recurrence rule, or
// the empty string for non-recurring todos.
func RecurrenceLabel(rule string) string {
	switch rule {
	case "", recurrence.RuleNone:
		return ""
	case recurrence.RuleDaily:
		return "Repeats daily"
	case recurrence.RuleWeekdays:
		return "Repeats weekdays"
	case recurrence.RuleBiweekly:
		return "Repeats every 2 weeks"
	case recurrence.RuleMonthly:
		return "Repeats monthly"
	}
	if day, ok := recurrence.WeeklyDay(rule); ok {
		return "Repeats " + weekdayNames[day]
	}
	return ""
}

// CompareDue orders two list items by due date, dated before undated.
func CompareDue(a, b ListItem) int {
	switch {
	case a.Due != "" && b.Due != "":
		return strings.Compare(a.Due, b.Due)
	case a.Due != "":
		return -1
	case b.Due != "":
		return 1
	default:
		return 0
	}
}

// CompareTitle orders two list items by case-insensitive title.
func CompareTitle(a, b ListItem) int {
	return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
}

// CompareCreated orders two list items newest-created first.
func CompareCreated(a, b ListItem) int {
	return b.Created.Compare(a.Created)
}

// CompareUpdated orders two list items newest-updated first.
func CompareUpdated(a, b ListItem) int {
	return b.Updated.Compare(a.Updated)
}

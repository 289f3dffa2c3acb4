package types

import (
	"regexp"
	"strings"
)

// dateSuffixPattern matches the trailing "(YYYY-MM-DD)" or "- YYYY-MM-DD"
// suffix appended to recurring titles.
var dateSuffixPattern = regexp.MustCompile(`\s*(?:\(|- )\d{4}-\d{2}-\d{2}\)?\s*$`)

// StripDateSuffix removes a trailing due-date suffix from a recurring
// title, returning the bare title.
func StripDateSuffix(title string) string {
	if title == "" {
		return ""
	}
	return strings.TrimSpace(dateSuffixPattern.ReplaceAllString(title, ""))
}

// AppendDateSuffix appends "(due)" to a title so successive occurrences
// of a recurring todo stay recognizable. Idempotent: a title already
// carrying the suffix for this due date is returned unchanged, and any
// older date suffix is replaced rather than stacked.
func AppendDateSuffix(title, due string) string {
	if due == "" {
		return title
	}
	if strings.HasSuffix(title, "("+due+")") || strings.HasSuffix(title, "- "+due) {
		return title
	}
	base := StripDateSuffix(title)
	if base == "" {
		return "(" + due + ")"
	}
	return base + " (" + due + ")"
}

// StatusForSave resolves the status to persist when a todo is edited.
// A done status always wins. An existing record whose due date moved
// away from its original date is automatically deferred; this inference
// is deliberate and mirrors how a due-date change without an explicit
// status choice has always behaved. Otherwise a deferred record stays
// deferred and everything else is a plain todo.
func StatusForSave(status string, isNew bool, due, originalDue string) string {
	if status == StatusDone {
		return StatusDone
	}
	if !isNew && due != "" && due != originalDue {
		return StatusDeferred
	}
	if status == StatusDeferred {
		return StatusDeferred
	}
	return StatusTodo
}

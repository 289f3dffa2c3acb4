package types

import (
	"math"
	"regexp"
	"strings"

	"github.com/duebook/duebook/pkg/recurrence"
)

// dayKeyPattern matches the strict YYYY-MM-DD due-date form. Anything
// else normalizes to the empty (undated) value.
var dayKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeDue coerces input to a day key. It accepts only strict
// YYYY-MM-DD; anything else yields the empty string. Total and
// idempotent.
func NormalizeDue(input string) string {
	trimmed := strings.TrimSpace(input)
	if !dayKeyPattern.MatchString(trimmed) {
		return ""
	}
	return trimmed
}

// NormalizeStatus whitelists value against the known statuses, falling
// back to the caller-supplied default on mismatch.
func NormalizeStatus(value, fallback string) string {
	if validStatuses[value] {
		return value
	}
	return fallback
}

// NormalizePriority whitelists value against the known priorities,
// falling back to the caller-supplied default on mismatch.
func NormalizePriority(value, fallback string) string {
	if value == PriorityNormal || value == PriorityHigh {
		return value
	}
	return fallback
}

// NormalizeRecurrence whitelists value against the known recurrence
// rules, including the parametrized weekly:<0-6> form. Out-of-range
// weekday indices and unknown rules yield the fallback.
func NormalizeRecurrence(value, fallback string) string {
	switch value {
	case recurrence.RuleNone, recurrence.RuleDaily, recurrence.RuleWeekdays,
		recurrence.RuleBiweekly, recurrence.RuleMonthly:
		return value
	}
	if day, ok := recurrence.WeeklyDay(value); ok {
		// Re-render so "weekly:01" and friends come out canonical.
		return recurrence.WeeklyPrefix + string(rune('0'+day))
	}
	return fallback
}

// NormalizeRecurrenceCount floors value to an integer and requires it to
// be at least one. Anything else, including non-finite input, yields
// zero (unbounded).
func NormalizeRecurrenceCount(value float64) int {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	count := int(math.Floor(value))
	if count < 1 {
		return 0
	}
	return count
}

// NormalizeRecurrenceEnd coerces the series end bound, which follows the
// same strict day-key rule as due dates.
func NormalizeRecurrenceEnd(value string) string {
	return NormalizeDue(value)
}

// NormalizeRecurrenceID trims the series identifier; whitespace-only
// input yields the empty string.
func NormalizeRecurrenceID(value string) string {
	return strings.TrimSpace(value)
}

// NormalizeTags trims each tag, drops empties, and deduplicates
// case-insensitively while preserving first-seen casing and order.
// The result is never nil.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		clean := strings.TrimSpace(tag)
		if clean == "" {
			continue
		}
		key := strings.ToLower(clean)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, clean)
	}
	return result
}

// NormalizeOrder passes through a finite manual rank and rejects
// everything else as unranked.
func NormalizeOrder(value *float64) *float64 {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return nil
	}
	v := *value
	return &v
}

// Package recurrence provides the calendar arithmetic behind recurring
// todos: day keys in YYYY-MM-DD form and the next-occurrence function
// for a recurrence rule. Both the store's succession logic and the CLI
// forward preview use NextDue, so it must stay a pure function of its
// inputs.
package recurrence

import (
	"strconv"
	"strings"
	"time"
)

// DayKeyLayout is the time layout for day keys.
const DayKeyLayout = "2006-01-02"

// Recurrence rules. WeeklyPrefix is followed by a weekday index 0-6
// (Sunday = 0), e.g. "weekly:1" for every Monday.
const (
	RuleNone     = "none"
	RuleDaily    = "daily"
	RuleWeekdays = "weekdays"
	RuleBiweekly = "biweekly"
	RuleMonthly  = "monthly"

	WeeklyPrefix = "weekly:"
)

// FormatDayKey renders t as a day key, dropping the time component.
func FormatDayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey parses a strict YYYY-MM-DD day key. The second return is
// false when the input is not a valid day key.
func ParseDayKey(key string) (time.Time, bool) {
	t, err := time.Parse(DayKeyLayout, key)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AddDays returns t shifted by the given number of calendar days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// WeeklyDay extracts the weekday index from a "weekly:N" rule.
// The second return is false for any other rule or an index outside 0-6.
func WeeklyDay(rule string) (int, bool) {
	raw, ok := strings.CutPrefix(rule, WeeklyPrefix)
	if !ok {
		return 0, false
	}
	day, err := strconv.Atoi(raw)
	if err != nil || day < 0 || day > 6 {
		return 0, false
	}
	return day, true
}

// NextDue computes the day key of the occurrence that follows due under
// the given rule. The second return is false when the rule is "none",
// empty, or unrecognized. When due is not a valid day key the current
// date is used as the base, so a completed undated recurring todo still
// advances.
//
// Rules:
//   - daily: the next day.
//   - weekdays: the next day, skipping forward past Saturday and Sunday.
//   - biweekly: fourteen days later.
//   - monthly: the same day of the next month, clamped to that month's
//     last day (Jan 31 -> Feb 28/29).
//   - weekly:N: the next date whose weekday is N; a base date already on
//     weekday N advances a full week, never returning the same date.
func NextDue(due, rule string) (string, bool) {
	if rule == "" || rule == RuleNone {
		return "", false
	}

	base, ok := ParseDayKey(due)
	if !ok {
		base, _ = ParseDayKey(FormatDayKey(time.Now()))
	}

	var next time.Time
	switch {
	case rule == RuleDaily:
		next = AddDays(base, 1)
	case rule == RuleWeekdays:
		next = AddDays(base, 1)
		for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
			next = AddDays(next, 1)
		}
	case rule == RuleBiweekly:
		next = AddDays(base, 14)
	case rule == RuleMonthly:
		next = nextMonthClamped(base)
	case strings.HasPrefix(rule, WeeklyPrefix):
		day, ok := WeeklyDay(rule)
		if !ok {
			return "", false
		}
		delta := (day - int(base.Weekday()) + 7) % 7
		if delta == 0 {
			delta = 7
		}
		next = AddDays(base, delta)
	default:
		return "", false
	}

	return FormatDayKey(next), true
}

// nextMonthClamped returns the same day of the following month, clamped
// to its last day.
func nextMonthClamped(base time.Time) time.Time {
	year, month, day := base.Date()
	// Day zero of the month after next is the last day of the next month.
	lastDay := time.Date(year, month+2, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month+1, day, 0, 0, 0, 0, time.UTC)
}

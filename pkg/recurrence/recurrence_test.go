package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextDue(t *testing.T) {
	tests := []struct {
		name string
		due  string
		rule string
		want string
		ok   bool
	}{
		{
			name: "daily advances one day",
			due:  "2026-02-10",
			rule: RuleDaily,
			want: "2026-02-11",
			ok:   true,
		},
		{
			name: "daily across month boundary",
			due:  "2026-01-31",
			rule: RuleDaily,
			want: "2026-02-01",
			ok:   true,
		},
		{
			name: "weekdays skips weekend",
			due:  "2026-02-13", // Friday
			rule: RuleWeekdays,
			want: "2026-02-16", // Monday
			ok:   true,
		},
		{
			name: "weekdays on a midweek day",
			due:  "2026-02-10", // Tuesday
			rule: RuleWeekdays,
			want: "2026-02-11",
			ok:   true,
		},
		{
			name: "biweekly adds fourteen days",
			due:  "2026-02-10",
			rule: RuleBiweekly,
			want: "2026-02-24",
			ok:   true,
		},
		{
			name: "monthly keeps day of month",
			due:  "2026-03-15",
			rule: RuleMonthly,
			want: "2026-04-15",
			ok:   true,
		},
		{
			name: "monthly clamps to last day",
			due:  "2026-01-31",
			rule: RuleMonthly,
			want: "2026-02-28",
			ok:   true,
		},
		{
			name: "monthly clamps in leap year",
			due:  "2028-01-31",
			rule: RuleMonthly,
			want: "2028-02-29",
			ok:   true,
		},
		{
			name: "monthly across year boundary",
			due:  "2026-12-31",
			rule: RuleMonthly,
			want: "2027-01-31",
			ok:   true,
		},
		{
			name: "weekly skips same-day match",
			due:  "2026-02-10", // Tuesday
			rule: "weekly:2",
			want: "2026-02-17",
			ok:   true,
		},
		{
			name: "weekly finds next monday",
			due:  "2026-02-10", // Tuesday
			rule: "weekly:1",
			want: "2026-02-16",
			ok:   true,
		},
		{
			name: "weekly finds upcoming friday",
			due:  "2026-02-10",
			rule: "weekly:5",
			want: "2026-02-13",
			ok:   true,
		},
		{
			name: "none yields no occurrence",
			due:  "2026-02-10",
			rule: RuleNone,
			ok:   false,
		},
		{
			name: "empty rule yields no occurrence",
			due:  "2026-02-10",
			rule: "",
			ok:   false,
		},
		{
			name: "unknown rule yields no occurrence",
			due:  "2026-02-10",
			rule: "fortnightly",
			ok:   false,
		},
		{
			name: "weekly with out-of-range day rejected",
			due:  "2026-02-10",
			rule: "weekly:7",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextDue(tt.due, tt.rule)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNextDueIsDeterministic(t *testing.T) {
	first, ok := NextDue("2026-02-10", RuleBiweekly)
	assert.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := NextDue("2026-02-10", RuleBiweekly)
		assert.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestNextDueInvalidBaseUsesToday(t *testing.T) {
	got, ok := NextDue("not-a-date", RuleDaily)
	assert.True(t, ok)
	want := FormatDayKey(AddDays(time.Now(), 1))
	assert.Equal(t, want, got)
}

func TestParseDayKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "valid key", input: "2026-02-10", ok: true},
		{name: "rejects slashes", input: "2026/02/10", ok: false},
		{name: "rejects short year", input: "26-02-10", ok: false},
		{name: "rejects empty", input: "", ok: false},
		{name: "rejects trailing text", input: "2026-02-10x", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseDayKey(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.input, FormatDayKey(parsed))
			}
		})
	}
}

func TestWeeklyDay(t *testing.T) {
	day, ok := WeeklyDay("weekly:3")
	assert.True(t, ok)
	assert.Equal(t, 3, day)

	_, ok = WeeklyDay("weekly:9")
	assert.False(t, ok)
	_, ok = WeeklyDay("weekly:")
	assert.False(t, ok)
	_, ok = WeeklyDay("monthly")
	assert.False(t, ok)
}

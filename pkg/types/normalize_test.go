package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "valid day key", input: "2026-02-10", want: "2026-02-10"},
		{name: "trims whitespace", input: "  2026-02-10 ", want: "2026-02-10"},
		{name: "rejects slashes", input: "2026/02/10", want: ""},
		{name: "rejects datetime", input: "2026-02-10T09:00:00Z", want: ""},
		{name: "rejects short form", input: "26-2-10", want: ""},
		{name: "rejects empty", input: "", want: ""},
		{name: "rejects words", input: "tomorrow", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDue(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeDue(got), "must be idempotent")
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusDone, NormalizeStatus("done", StatusTodo))
	assert.Equal(t, StatusDeferred, NormalizeStatus("deferred", StatusTodo))
	assert.Equal(t, StatusTodo, NormalizeStatus("garbage", StatusTodo))
	assert.Equal(t, StatusDone, NormalizeStatus("", StatusDone), "falls back to caller default")
}

func TestNormalizePriority(t *testing.T) {
	assert.Equal(t, PriorityHigh, NormalizePriority("high", PriorityNormal))
	assert.Equal(t, PriorityNormal, NormalizePriority("normal", PriorityHigh))
	assert.Equal(t, PriorityNormal, NormalizePriority("urgent", PriorityNormal))
}

func TestNormalizeRecurrence(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback string
		want     string
	}{
		{name: "none", value: "none", fallback: "daily", want: "none"},
		{name: "daily", value: "daily", fallback: "none", want: "daily"},
		{name: "weekdays", value: "weekdays", fallback: "none", want: "weekdays"},
		{name: "biweekly", value: "biweekly", fallback: "none", want: "biweekly"},
		{name: "monthly", value: "monthly", fallback: "none", want: "monthly"},
		{name: "weekly low bound", value: "weekly:0", fallback: "none", want: "weekly:0"},
		{name: "weekly high bound", value: "weekly:6", fallback: "none", want: "weekly:6"},
		{name: "weekly out of range", value: "weekly:7", fallback: "none", want: "none"},
		{name: "weekly negative", value: "weekly:-1", fallback: "none", want: "none"},
		{name: "weekly missing index", value: "weekly:", fallback: "none", want: "none"},
		{name: "unknown rule", value: "yearly", fallback: "none", want: "none"},
		{name: "fallback is prior value", value: "bogus", fallback: "monthly", want: "monthly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRecurrence(tt.value, tt.fallback)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRecurrenceCount(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  int
	}{
		{name: "positive integer", value: 3, want: 3},
		{name: "floors fractional", value: 2.9, want: 2},
		{name: "one is kept", value: 1, want: 1},
		{name: "zero is unbounded", value: 0, want: 0},
		{name: "negative is unbounded", value: -4, want: 0},
		{name: "nan is unbounded", value: math.NaN(), want: 0},
		{name: "inf is unbounded", value: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRecurrenceCount(tt.value))
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "trims and drops empties",
			input: []string{" home ", "", "  ", "work"},
			want:  []string{"home", "work"},
		},
		{
			name:  "dedupes case-insensitively keeping first casing",
			input: []string{"Home", "home", "HOME", "Work"},
			want:  []string{"Home", "Work"},
		},
		{
			name:  "preserves order",
			input: []string{"b", "a", "c", "A"},
			want:  []string{"b", "a", "c"},
		},
		{
			name:  "nil input yields empty set",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTags(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeTags(got), "must be idempotent")
		})
	}
}

func TestNormalizeOrder(t *testing.T) {
	v := 2.0
	got := NormalizeOrder(&v)
	assert.NotNil(t, got)
	assert.Equal(t, 2.0, *got)

	assert.Nil(t, NormalizeOrder(nil))

	nan := math.NaN()
	assert.Nil(t, NormalizeOrder(&nan))

	inf := math.Inf(-1)
	assert.Nil(t, NormalizeOrder(&inf))

	// Returned pointer is a copy, not an alias.
	*got = 9
	assert.Equal(t, 2.0, v)
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripDateSuffix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "parenthesized suffix", input: "Water plants (2026-02-10)", want: "Water plants"},
		{name: "dash suffix", input: "Water plants - 2026-02-10", want: "Water plants"},
		{name: "no suffix", input: "Water plants", want: "Water plants"},
		{name: "date in the middle stays", input: "Prep 2026-02-10 agenda", want: "Prep 2026-02-10 agenda"},
		{name: "empty title", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripDateSuffix(tt.input))
		})
	}
}

func TestAppendDateSuffix(t *testing.T) {
	tests := []struct {
		name  string
		title string
		due   string
		want  string
	}{
		{name: "appends suffix", title: "Water plants", due: "2026-02-10", want: "Water plants (2026-02-10)"},
		{name: "idempotent for same date", title: "Water plants (2026-02-10)", due: "2026-02-10", want: "Water plants (2026-02-10)"},
		{name: "replaces older date", title: "Water plants (2026-02-09)", due: "2026-02-10", want: "Water plants (2026-02-10)"},
		{name: "dash form is recognized", title: "Water plants - 2026-02-10", due: "2026-02-10", want: "Water plants - 2026-02-10"},
		{name: "no due leaves title alone", title: "Water plants", due: "", want: "Water plants"},
		{name: "bare suffix for empty title", title: "", due: "2026-02-10", want: "(2026-02-10)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppendDateSuffix(tt.title, tt.due))
		})
	}
}

func TestStatusForSave(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		isNew       bool
		due         string
		originalDue string
		want        string
	}{
		{
			name:   "done always wins",
			status: StatusDone, isNew: false, due: "2026-02-11", originalDue: "2026-02-10",
			want: StatusDone,
		},
		{
			name:   "due change defers existing record",
			status: StatusTodo, isNew: false, due: "2026-02-11", originalDue: "2026-02-10",
			want: StatusDeferred,
		},
		{
			name:   "new record is never auto-deferred",
			status: StatusTodo, isNew: true, due: "2026-02-11", originalDue: "2026-02-10",
			want: StatusTodo,
		},
		{
			name:   "clearing due does not defer",
			status: StatusTodo, isNew: false, due: "", originalDue: "2026-02-10",
			want: StatusTodo,
		},
		{
			name:   "deferred stays deferred",
			status: StatusDeferred, isNew: false, due: "2026-02-10", originalDue: "2026-02-10",
			want: StatusDeferred,
		},
		{
			name:   "unchanged due stays todo",
			status: StatusTodo, isNew: false, due: "2026-02-10", originalDue: "2026-02-10",
			want: StatusTodo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusForSave(tt.status, tt.isNew, tt.due, tt.originalDue)
			assert.Equal(t, tt.want, got)
		})
	}
}

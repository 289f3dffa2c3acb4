package types

import (
	"errors"
	"time"
)

// Todo statuses.
const (
	StatusTodo     = "todo"
	StatusDone     = "done"
	StatusDeferred = "deferred"
)

// validStatuses is the set of recognized status values.
var validStatuses = map[string]bool{
	StatusTodo:     true,
	StatusDone:     true,
	StatusDeferred: true,
}

// Todo priorities.
const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// Remind offsets. The store treats remind as an opaque tag interpreted
// by the reminder scheduler against the due date; RemindNone is the only
// value with store-level meaning.
const (
	RemindNone = "none"
)

// DefaultTitle is used when a record has no usable title.
const DefaultTitle = "Untitled"

// Record is one task occurrence as persisted in a bucket file.
type Record struct {
	ID              string    `json:"id"`                      // opaque unique identifier, stable for the record's lifetime
	Title           string    `json:"title"`                   // never empty; falls back to DefaultTitle
	Body            string    `json:"body"`                    // free-form text, newline-normalized to \n
	Due             string    `json:"due"`                     // day key YYYY-MM-DD, or empty for undated
	Status          string    `json:"status"`                  // one of the Status constants
	Remind          string    `json:"remind"`                  // offset tag or RemindNone
	Priority        string    `json:"priority"`                // one of the Priority constants
	Recurrence      string    `json:"recurrence"`              // recurrence rule, "none" when not recurring
	RecurrenceEnd   string    `json:"recurrenceEnd,omitempty"` // optional bound day key; empty when unbounded
	RecurrenceCount int       `json:"recurrenceCount,omitempty"` // remaining occurrences; zero when unbounded
	RecurrenceID    string    `json:"recurrenceId,omitempty"`  // shared by all records of one recurring series
	Tags            []string  `json:"tags"`                    // deduplicated case-insensitively, order-preserving
	Order           *float64  `json:"order"`                   // manual rank within a bucket; nil when unranked
	Created         time.Time `json:"created"`                 // immutable once set
	Updated         time.Time `json:"updated"`                 // refreshed on every save
	Bucket          string    `json:"bucket"`                  // derived: name of the file holding this record
	Legacy          bool      `json:"legacy,omitempty"`        // true when parsed via the whole-file fallback
}

// Recurring reports whether the record carries an active recurrence rule.
func (r *Record) Recurring() bool {
	return r.Recurrence != "" && r.Recurrence != "none"
}

// ListItem is the summary shape returned by Store.List: the record
// without its body, plus a short excerpt derived from it.
type ListItem struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Due             string    `json:"due"`
	Status          string    `json:"status"`
	Remind          string    `json:"remind"`
	Priority        string    `json:"priority"`
	Recurrence      string    `json:"recurrence"`
	RecurrenceEnd   string    `json:"recurrenceEnd,omitempty"`
	RecurrenceCount int       `json:"recurrenceCount,omitempty"`
	RecurrenceID    string    `json:"recurrenceId,omitempty"`
	Tags            []string  `json:"tags"`
	Order           *float64  `json:"order"`
	Created         time.Time `json:"created"`
	Updated         time.Time `json:"updated"`
	Excerpt         string    `json:"excerpt"`
}

// SavePayload is the caller-supplied shape for Store.Save. Empty string
// fields mean "unset": Save falls back to the existing record's value,
// and beyond that to the defaults for a brand-new record. Due is the
// exception: it is taken as given, because an empty due date is how a
// record moves to the undated bucket.
type SavePayload struct {
	ID              string
	Title           string
	Body            string
	Due             string
	Status          string
	Remind          string
	Priority        string
	Recurrence      string
	RecurrenceEnd   string
	RecurrenceCount int
	RecurrenceID    string
	Tags            []string
	Order           *float64
}

// Entity errors returned by store operations.
var (
	ErrNotFound = errors.New("todo not found")
)

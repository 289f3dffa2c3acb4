package store

import (
	"github.com/charmbracelet/log"
)

// Hooks receives notifications after every mutating store operation.
// CommitMessage gets a human-readable summary suitable for a version
// control commit; Changed signals that bucket files were rewritten so
// reminders and UI state can refresh. Both are fire-and-forget: the
// store never inspects a hook's outcome.
type Hooks interface {
	CommitMessage(summary string)
	Changed()
}

// NopHooks discards all notifications.
type NopHooks struct{}

func (NopHooks) CommitMessage(string) {}
func (NopHooks) Changed()             {}

// LogHooks records change summaries through a structured logger. It
// stands in for the git auto-commit integration when that is disabled
// or unavailable.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log through logger, or the default
// logger when nil.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{Logger: logger}
}

func (h *LogHooks) CommitMessage(summary string) {
	h.Logger.Info("todos changed", "summary", summary)
}

func (h *LogHooks) Changed() {
	h.Logger.Debug("change notification")
}

// Shared helpers for duebook CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/duebook/duebook/internal/store"
	"github.com/duebook/duebook/pkg/recurrence"
	"github.com/duebook/duebook/pkg/types"
)

// openStore resolves the todos directory and opens the store over it.
func openStore() (*store.Store, error) {
	dir, err := resolveTodosDir()
	if err != nil {
		return nil, fmt.Errorf("resolve todos dir: %w", err)
	}
	return store.New(dir, store.NewLogHooks(log.Default())), nil
}

// parseDueArg converts a user-supplied due date to a canonical day key.
// "none" and the empty string mean undated; anything else must be a
// valid YYYY-MM-DD date.
func parseDueArg(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "none") {
		return "", nil
	}
	if _, ok := recurrence.ParseDayKey(value); !ok {
		return "", fmt.Errorf("invalid due date %q (expected YYYY-MM-DD or none)", value)
	}
	return value, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// isNotFound returns true if the error wraps ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}

// dueLabel renders a due date for table output.
func dueLabel(due string) string {
	if due == "" {
		return "-"
	}
	return due
}

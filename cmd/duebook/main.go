// Package main provides the duebook CLI: a local-first todo tracker
// that keeps its records in human-editable Markdown files.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

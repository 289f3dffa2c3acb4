// Package types defines the todo record model, the normalizers that
// coerce arbitrary input into its canonical shape, and the standard
// errors shared by the store and its callers.
package types

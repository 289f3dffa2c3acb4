// Package duebook exposes module-level metadata shared by the CLI and
// any embedding program.
package duebook

// Version is the duebook release version.
const Version = "0.3.0"

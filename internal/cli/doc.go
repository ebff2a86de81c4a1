// Package cli implements the terminal surfaces that are not the TUI: the
// one-shot conversion, the interactive prompt and shell completion scripts.
//
// Naming:
// Display* writes to an io.Writer, Format* returns a string.
package cli

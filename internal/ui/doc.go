// Package ui holds the color themes shared by the CLI, REPL and TUI.
//
// ANSI helpers (ColorGreen, ColorReset, ...) read the active Theme, so
// InitTheme(true) or NO_COLOR turns every colored string into plain text.
package ui

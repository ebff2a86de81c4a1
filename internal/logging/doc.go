// Package logging provides a unified logging interface for dogyears.
// It abstracts the underlying logging implementation, allowing consistent logging
// across the controller, fact providers and input surfaces while supporting
// multiple backends.
package logging

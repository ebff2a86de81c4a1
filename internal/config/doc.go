// Package config parses command-line flags and DOGYEARS_* environment
// variables into an AppConfig.
//
// Priority is CLI flags, then environment variables, then defaults.
package config

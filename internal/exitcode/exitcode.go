// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates normal termination (Exit chosen, end of input, interrupt).
	Success = 0

	// UserError indicates bad command-line usage.
	UserError = 1

	// ConfigError indicates an unreadable or invalid settings file.
	ConfigError = 2
)

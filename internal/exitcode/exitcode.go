// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, out of range).
	UserError = 1

	// ConfigError indicates an invalid configuration.
	ConfigError = 2

	// StoreError indicates a storage failure.
	StoreError = 3
)

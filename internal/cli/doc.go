// Package cli is responsible for parsing command-line arguments and
// validating user input. It translates the raw argument list into the
// application's configuration and reports misuse as errors that carry a
// process exit code.
package cli

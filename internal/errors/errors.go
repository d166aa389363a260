// Package errors renders command failures for the terminal. Game-rule
// refusals (not enough coins, dead pet) are ordinary error returns and never
// come through here; this package is for failures that end the process.
package errors

import (
	"fmt"
	"os"

	"github.com/taskive/taskive/internal/logger"
)

// Format renders an error with the standard "Error: " prefix. A nil error
// renders as the empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return "Error: " + err.Error()
}

// Formatf is Format over a format string.
func Formatf(format string, args ...interface{}) string {
	return "Error: " + fmt.Sprintf(format, args...)
}

// Fatal logs the error, prints it to stderr, and exits with code 1.
// A nil error is a no-op so callers can pass through command results.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Exiting on fatal error", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}

// Package errors shapes fatal CLI failures: one "Error: " prefix on stderr,
// a matching entry in the log file, exit code 1.
package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/timebloom/internal/logger"
)

// Format renders err for terminal output. Returns "" for a nil error.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf is Format for a message built from a format string.
func Formatf(format string, args ...any) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs err, prints it to stderr, and exits with code 1.
// A nil error is a no-op.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf is Fatal for a message built from a format string.
func Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}

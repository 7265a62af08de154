package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/rahulraj-lab/Focus-flow/internal/ai"
	"github.com/rahulraj-lab/Focus-flow/internal/keyring"
	"github.com/rahulraj-lab/Focus-flow/internal/logger"
	"github.com/rahulraj-lab/Focus-flow/internal/schedule"
	"github.com/rahulraj-lab/Focus-flow/internal/storage"
)

var hints = []struct {
	target error
	hint   string
}{
	{schedule.ErrInvalidRange, "hours must be between 0 and 23, with start not after end"},
	{storage.ErrNotInitialized, "run 'focusflow init' to create the database"},
	{storage.ErrEmbeddedCredentials, "store the connection string with 'focusflow keyring set' and set storage.path to \"keyring\", or use a .pgpass file"},
	{ai.ErrNoAPIKey, "set GEMINI_API_KEY or run 'focusflow keyring set-api-key'"},
	{ai.ErrInFlight, "a plan is already being generated, wait for it to finish"},
	{keyring.ErrKeyringUnavailable, "the OS keyring is unavailable, use environment variables instead"},
}

// Hint returns a short remediation for known failures, or "".
func Hint(err error) string {
	for _, h := range hints {
		if stderrors.Is(err, h.target) {
			return h.hint
		}
	}
	return ""
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	if hint := Hint(err); hint != "" {
		return fmt.Sprintf("Error: %v (hint: %s)", err, hint)
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}

package secretscan

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	summary, err := scanner.Scan(ctx, root)
//	if errors.Is(err, secretscan.ErrInvalidRoot) {
//	    // Report configuration problem, no scan was performed
//	}
var (
	// ErrInvalidRoot indicates the scan root does not exist or is not a directory.
	ErrInvalidRoot = errors.New("invalid scan root")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidRule indicates a detection rule failed validation.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrScannerUsed indicates a Scanner instance was asked to scan twice.
	ErrScannerUsed = errors.New("scanner already used")

	// ErrUsage indicates the command line was malformed.
	ErrUsage = errors.New("usage error")
)

// usagePatterns are fragments of the errors cobra and pflag produce for bad
// command lines. They are not wrapped, so they are matched by message.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts at most",
	"accepts 1 arg(s)",
	"invalid argument",
	"flag needs an argument",
	"required flag",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidRoot), errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	}

	errStr := err.Error()
	for _, pattern := range usagePatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

// ExitCodeForSummary applies the exit policy to a finished scan.
// The scan succeeds when no alert fired or when the operator forced success;
// it fails otherwise, independent of how many alerts fired.
func ExitCodeForSummary(summary ScanSummary, forceSuccess bool) int {
	if summary.TotalAlerts == 0 || forceSuccess {
		return ExitSuccess
	}
	return ExitFindings
}

package secretscan

import "time"

// Exit codes for semantic result classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: Findings present, or a general/configuration error
//   - 2: CLI usage error (misuse of command line)
//   - 3: Internal panic
const (
	ExitSuccess      = 0 // Scan completed without alerts, or --exit-zero was set
	ExitFindings     = 1 // Scan completed and at least one alert fired
	ExitGeneralError = 1 // Unknown or unclassified error
	ExitConfigError  = 1 // Scan root missing or not a directory
	ExitUsageError   = 2 // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3 // Internal panic (unexpected crash)
)

const (
	// DefaultTarget is the directory scanned when no positional argument is given.
	DefaultTarget = "test_configs"

	// DefaultWorkers is the default number of files processed concurrently.
	// A value of 1 keeps the scan strictly sequential.
	DefaultWorkers = 1

	// MaxWorkers caps the worker pool regardless of configuration.
	MaxWorkers = 64

	// DefaultReadRetryAttempts is the number of extra read attempts for
	// transient I/O errors. Permanent errors are never retried.
	DefaultReadRetryAttempts = 2

	// DefaultReadRetryDelay is the initial backoff between read attempts.
	DefaultReadRetryDelay = 10 * time.Millisecond

	// DefaultReadRetryMaxDelay bounds a single backoff wait so that no
	// file read can stall the scan.
	DefaultReadRetryMaxDelay = 100 * time.Millisecond

	// RootDirectory is the relative directory name used for files that sit
	// directly in the scan root.
	RootDirectory = "."
)

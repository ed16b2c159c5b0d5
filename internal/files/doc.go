// Package files groups the file-handling pipeline of a scan into
// sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - walker: Lazy traversal yielding regular files only
//   - loader: Bounded reads that classify each file as text, undecodable or unreadable
//   - scanner: The scan aggregator tying the above to the rule set
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/secretscan/internal/files/filesystem"
//	    "github.com/vvka-141/secretscan/internal/files/scanner"
//	)
//
//	s := scanner.NewScanner(
//	    scanner.WithFileSystem(filesystem.NewOSFileSystem()),
//	    scanner.WithWorkers(4),
//	)
//	summary, err := s.Scan(ctx, "./configs")
//
// # Organization
//
// Each sub-package is focused on a single concern:
//   - filesystem: Provides filesystem abstraction for testability
//   - walker: Decides which entries are scanned
//   - loader: Owns retries and the text/binary decision
//   - scanner: Owns the scan state machine and the running totals
package files

// Package scanner aggregates a secret scan over a directory tree.
//
// A Scanner moves through three states: idle, scanning and finalized. It
// pulls regular files from the walker, reads each one through the loader,
// classifies readable text against the rule set and folds the per-file
// result into a ScanSummary at a single mutation point. Files that cannot
// be read or decoded are counted as skipped; they never abort the scan.
//
// Alerts are counted per matched rule, not per file: a file matching both
// "password" and "secret" contributes two alerts and appears once in
// FilesWithIssues.
//
// The scanner is filesystem-agnostic through filesystem.FileSystemProvider,
// enabling both production use with the OS filesystem and testing with
// in-memory trees.
package scanner

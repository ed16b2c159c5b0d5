// Package checksum provides content digests for flagged files.
//
// Digests let a pipeline tell whether a flagged file changed between two
// scans without the report ever carrying the file content itself.
//
// # Example Usage
//
//	calculator := checksum.New()
//	digest := calculator.Digest(content) // "sha256:..."
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum

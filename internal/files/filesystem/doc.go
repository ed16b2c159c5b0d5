// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The scanner never touches the os package directly. It opens a Directory
// through a FileSystemProvider and walks it, which keeps the scan logic
// testable against an in-memory tree that can simulate unreadable files,
// binary content and enumeration failures.
//
// Key interfaces:
//   - FileSystemProvider: Factory for creating directory instances
//   - Directory: Represents a directory that can be traversed
//   - File: Represents an individual entry with metadata and content
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem

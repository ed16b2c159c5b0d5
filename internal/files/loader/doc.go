// Package loader is the read boundary of the scanner.
//
// It turns a filesystem.File into an explicit ReadResult that is either
// decoded UTF-8 text or a skip with a reason:
//   - SkipIncompatibleType: content is not valid UTF-8 (binary files)
//   - SkipInsufficientPermissions: the OS refused access
//   - SkipUnreadable: any other failure, e.g. the file vanished mid-scan
//
// Transient read errors are retried a bounded number of times through the
// retry package before the file is reported as unreadable.
package loader

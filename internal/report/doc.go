// Package report renders scan events and the final summary.
//
// Two renderers are provided:
//
//   - TextReporter streams one line per finding or skip and finishes with a
//     human-readable summary block. Output is styled with lipgloss when the
//     destination is a terminal and NO_COLOR is unset.
//   - JSONReporter buffers events and writes a single JSON document when the
//     scan finishes, for consumption by CI tooling.
//
// Both implement Reporter, which embeds the scanner's EventSink so a reporter
// can be passed directly to scanner.WithEventSink.
package report

package secretscan

import "fmt"

// Rule is a single literal detection rule.
// Rules are immutable and defined at process start.
type Rule struct {
	// Name is the stable identifier reported for a match (e.g. "aws_key").
	Name string

	// Needle is the literal substring searched for. Must be non-empty.
	Needle string

	// CaseSensitive selects exact matching; otherwise content and needle
	// are compared in lower case.
	CaseSensitive bool

	// Description is the human-readable finding text.
	Description string
}

// Validate checks the rule invariants.
func (r Rule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rule name is required: %w", ErrInvalidRule)
	}
	if r.Needle == "" {
		return fmt.Errorf("rule %q has an empty needle: %w", r.Name, ErrInvalidRule)
	}
	return nil
}

// Outcome is the classification result for a single file.
type Outcome int

const (
	// OutcomeClean means the file was read and no rule matched.
	OutcomeClean Outcome = iota
	// OutcomeMatched means at least one rule matched.
	OutcomeMatched
	// OutcomeSkipped means the file could not be read as text.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeClean:
		return "clean"
	case OutcomeMatched:
		return "matched"
	case OutcomeSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// SkipReason explains why a file was skipped.
type SkipReason int

const (
	// SkipNone is the zero value for files that were not skipped.
	SkipNone SkipReason = iota
	// SkipIncompatibleType means the content is not valid text.
	SkipIncompatibleType
	// SkipInsufficientPermissions means the file could not be opened for reading.
	SkipInsufficientPermissions
	// SkipUnreadable covers any other read failure, such as a file removed mid-scan.
	SkipUnreadable
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return ""
	case SkipIncompatibleType:
		return "incompatible file type"
	case SkipInsufficientPermissions:
		return "insufficient permissions"
	case SkipUnreadable:
		return "file could not be read"
	default:
		return fmt.Sprintf("SkipReason(%d)", int(r))
	}
}

// FileResult is the per-file outcome produced during a scan.
type FileResult struct {
	// RelativePath is the slash-separated path relative to the scan root.
	RelativePath string

	// Directory is the slash-separated parent directory relative to the scan root.
	Directory string

	// MatchedRules lists the names of matched rules in rule-table order.
	MatchedRules []string

	Outcome    Outcome
	SkipReason SkipReason

	// Detail carries extra skip context, such as a detected MIME type.
	Detail string

	// Digest is the SHA-256 of the raw content, populated for matched files only.
	Digest string
}

// ScanSummary is the finalized, read-only result of a scan.
type ScanSummary struct {
	// Root is the absolute path of the scanned directory.
	Root string

	// DirectoriesVisited holds the distinct parent directories of all
	// files encountered, sorted.
	DirectoriesVisited []string

	// FilesWithIssues holds the distinct relative paths of files that
	// matched at least one rule, sorted.
	FilesWithIssues []string

	// TotalAlerts is the number of rule matches across all files.
	// A file matching two rules contributes two.
	TotalAlerts int

	// SkippedFiles counts files that could not be read as text.
	SkippedFiles int

	// FilesScanned counts files that were read and classified.
	FilesScanned int
}

// HasFindings reports whether any alert fired.
func (s ScanSummary) HasFindings() bool {
	return s.TotalAlerts > 0
}

// IssueCount returns the number of distinct files with findings.
func (s ScanSummary) IssueCount() int {
	return len(s.FilesWithIssues)
}

// TotalFiles returns the number of regular files encountered.
func (s ScanSummary) TotalFiles() int {
	return s.FilesScanned + s.SkippedFiles
}

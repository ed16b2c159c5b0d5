package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/secretscan/pkg/secretscan"
)

// Document is the JSON report layout.
type Document struct {
	ScanID    string        `json:"scan_id"`
	Root      string        `json:"root"`
	StartedAt time.Time     `json:"started_at"`
	Findings  []Finding     `json:"findings"`
	Skips     []Skip        `json:"skips"`
	Summary   SummaryRecord `json:"summary"`
}

// Finding is one rule match in one file.
type Finding struct {
	Path        string `json:"path"`
	Rule        string `json:"rule"`
	Description string `json:"description"`
	Digest      string `json:"digest,omitempty"`
}

// Skip is one file that could not be scanned.
type Skip struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

// SummaryRecord mirrors secretscan.ScanSummary.
type SummaryRecord struct {
	DirectoriesScanned int      `json:"directories_scanned"`
	Directories        []string `json:"directories"`
	TotalAlerts        int      `json:"total_alerts"`
	FilesWithIssues    []string `json:"files_with_issues"`
	FilesScanned       int      `json:"files_scanned"`
	SkippedFiles       int      `json:"skipped_files"`
}

// JSONReporter buffers events and writes one Document on Finish.
type JSONReporter struct {
	w   io.Writer
	now func() time.Time

	mu  sync.Mutex
	doc Document
}

// NewJSONReporter creates a JSONReporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	if w == nil {
		panic("writer cannot be nil")
	}
	return &JSONReporter{w: w, now: time.Now}
}

// Start assigns a fresh scan ID and records the root.
func (r *JSONReporter) Start(root string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = Document{
		ScanID:    uuid.NewString(),
		Root:      root,
		StartedAt: r.now().UTC(),
		Findings:  []Finding{},
		Skips:     []Skip{},
	}
	return nil
}

// OnFinding buffers one finding.
func (r *JSONReporter) OnFinding(result secretscan.FileResult, rule secretscan.Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Findings = append(r.doc.Findings, Finding{
		Path:        result.RelativePath,
		Rule:        rule.Name,
		Description: rule.Description,
		Digest:      result.Digest,
	})
}

// OnSkip buffers one skip.
func (r *JSONReporter) OnSkip(result secretscan.FileResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc.Skips = append(r.doc.Skips, Skip{
		Path:   result.RelativePath,
		Reason: result.SkipReason.String(),
		Detail: result.Detail,
	})
}

// Finish writes the document, indented for readability.
func (r *JSONReporter) Finish(summary secretscan.ScanSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.doc.ScanID == "" {
		r.doc.ScanID = uuid.NewString()
		r.doc.StartedAt = r.now().UTC()
	}
	if r.doc.Root == "" {
		r.doc.Root = summary.Root
	}
	if r.doc.Findings == nil {
		r.doc.Findings = []Finding{}
	}
	if r.doc.Skips == nil {
		r.doc.Skips = []Skip{}
	}
	r.doc.Summary = SummaryRecord{
		DirectoriesScanned: len(summary.DirectoriesVisited),
		Directories:        nonNil(summary.DirectoriesVisited),
		TotalAlerts:        summary.TotalAlerts,
		FilesWithIssues:    nonNil(summary.FilesWithIssues),
		FilesScanned:       summary.FilesScanned,
		SkippedFiles:       summary.SkippedFiles,
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.doc); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var _ Reporter = (*JSONReporter)(nil)

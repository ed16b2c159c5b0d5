package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/vvka-141/secretscan/pkg/secretscan"
)

// TextReporter writes human-readable scan output.
type TextReporter struct {
	w      io.Writer
	styles palette

	mu  sync.Mutex
	err error
}

// TextOption configures a TextReporter.
type TextOption func(*TextReporter)

// WithColor forces styling on or off, overriding terminal detection.
func WithColor(enabled bool) TextOption {
	return func(r *TextReporter) {
		if enabled {
			r.styles = colorPalette()
		} else {
			r.styles = plainPalette()
		}
	}
}

// NewTextReporter creates a TextReporter writing to w.
// Styling is enabled when ColorEnabled(w) is true.
func NewTextReporter(w io.Writer, opts ...TextOption) *TextReporter {
	if w == nil {
		panic("writer cannot be nil")
	}
	r := &TextReporter{w: w, styles: plainPalette()}
	if ColorEnabled(w) {
		r.styles = colorPalette()
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start writes the scan header.
func (r *TextReporter) Start(root string) error {
	r.printf("%s %s\n", r.styles.render(r.styles.heading, "Scanning folder:"), root)
	return r.lastErr()
}

// OnFinding writes one alert line.
func (r *TextReporter) OnFinding(result secretscan.FileResult, rule secretscan.Rule) {
	r.printf("%s %s: %s\n", r.styles.render(r.styles.alert, "[ALERT]"), result.RelativePath, rule.Description)
}

// OnSkip writes one skip line.
func (r *TextReporter) OnSkip(result secretscan.FileResult) {
	r.printf("%s %s: %s\n", r.styles.render(r.styles.skip, "[SKIP]"), result.RelativePath,
		r.styles.render(r.styles.muted, result.SkipReason.String()))
}

// Finish writes the summary block.
func (r *TextReporter) Finish(summary secretscan.ScanSummary) error {
	r.printf("\n%s\n", r.styles.render(r.styles.heading, "--- Scan Summary ---"))
	r.printf("Directories scanned: %d\n", len(summary.DirectoriesVisited))
	r.printf("Total alerts: %d\n", summary.TotalAlerts)
	r.printf("Files with issues: %d\n", summary.IssueCount())
	r.printf("Skipped files: %d\n", summary.SkippedFiles)

	if summary.HasFindings() {
		r.printf("Affected files:\n")
		for _, path := range summary.FilesWithIssues {
			r.printf(" - %s\n", r.styles.render(r.styles.alert, path))
		}
	}
	return r.lastErr()
}

func (r *TextReporter) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.w, format, args...); err != nil {
		r.err = fmt.Errorf("failed to write report: %w", err)
	}
}

func (r *TextReporter) lastErr() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

var _ Reporter = (*TextReporter)(nil)

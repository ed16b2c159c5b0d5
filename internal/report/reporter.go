package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/secretscan/internal/files/scanner"
	"github.com/vvka-141/secretscan/pkg/secretscan"
)

// Format selects a Reporter implementation.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatText, FormatJSON}

// ParseFormat resolves a user-supplied format name.
// Unknown names yield an error wrapping secretscan.ErrUsage.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (expected text or json): %w", name, secretscan.ErrUsage)
}

// Reporter receives scan events and renders the final summary.
// Write errors are sticky: the first one is returned from Finish.
type Reporter interface {
	scanner.EventSink

	// Start announces the scan of root.
	Start(root string) error

	// Finish renders the summary and flushes any buffered output.
	Finish(summary secretscan.ScanSummary) error
}

// New creates the Reporter for format, writing to w.
func New(format Format, w io.Writer) (Reporter, error) {
	switch format {
	case FormatText, "":
		return NewTextReporter(w), nil
	case FormatJSON:
		return NewJSONReporter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q: %w", format, secretscan.ErrUsage)
	}
}

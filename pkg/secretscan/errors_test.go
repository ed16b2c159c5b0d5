package secretscan_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/secretscan/pkg/secretscan"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, secretscan.ExitSuccess},
		{"unknown flag", errors.New("unknown flag: --foo"), secretscan.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), secretscan.ExitUsageError},
		{"too many args", errors.New("accepts at most 1 arg(s), received 2"), secretscan.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"--workers\""), secretscan.ExitUsageError},
		{"wrapped usage", fmt.Errorf("bad format: %w", secretscan.ErrUsage), secretscan.ExitUsageError},
		{"invalid root", fmt.Errorf("open /nope: %w", secretscan.ErrInvalidRoot), secretscan.ExitConfigError},
		{"invalid config", fmt.Errorf("workers: %w", secretscan.ErrInvalidConfig), secretscan.ExitConfigError},
		{"general error", errors.New("something went wrong"), secretscan.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := secretscan.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForSummary(t *testing.T) {
	tests := []struct {
		name         string
		alerts       int
		forceSuccess bool
		want         int
	}{
		{"no alerts", 0, false, secretscan.ExitSuccess},
		{"no alerts forced", 0, true, secretscan.ExitSuccess},
		{"one alert", 1, false, secretscan.ExitFindings},
		{"many alerts", 42, false, secretscan.ExitFindings},
		{"alerts forced", 42, true, secretscan.ExitSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := secretscan.ScanSummary{TotalAlerts: tt.alerts}
			if got := secretscan.ExitCodeForSummary(summary, tt.forceSuccess); got != tt.want {
				t.Errorf("ExitCodeForSummary(alerts=%d, force=%v) = %d, want %d",
					tt.alerts, tt.forceSuccess, got, tt.want)
			}
		})
	}
}

package secretscan_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/secretscan/pkg/secretscan"
)

func TestRule_Validate(t *testing.T) {
	assert.NoError(t, secretscan.Rule{Name: "aws_key", Needle: "AKIA"}.Validate())

	err := secretscan.Rule{Name: "empty"}.Validate()
	assert.True(t, errors.Is(err, secretscan.ErrInvalidRule), "got %v", err)

	err = secretscan.Rule{Needle: "x"}.Validate()
	assert.True(t, errors.Is(err, secretscan.ErrInvalidRule), "got %v", err)
}

func TestSkipReason_String(t *testing.T) {
	assert.Equal(t, "incompatible file type", secretscan.SkipIncompatibleType.String())
	assert.Equal(t, "insufficient permissions", secretscan.SkipInsufficientPermissions.String())
	assert.Equal(t, "file could not be read", secretscan.SkipUnreadable.String())
	assert.Equal(t, "", secretscan.SkipNone.String())
}

func TestScanSummary_Helpers(t *testing.T) {
	var empty secretscan.ScanSummary
	assert.False(t, empty.HasFindings())
	assert.Equal(t, 0, empty.IssueCount())
	assert.Equal(t, 0, empty.TotalFiles())

	s := secretscan.ScanSummary{
		FilesWithIssues: []string{"a.txt", "b/c.env"},
		TotalAlerts:     3,
		SkippedFiles:    1,
		FilesScanned:    4,
	}
	assert.True(t, s.HasFindings())
	assert.Equal(t, 2, s.IssueCount())
	assert.Equal(t, 5, s.TotalFiles())
}

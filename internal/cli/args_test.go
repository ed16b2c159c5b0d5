package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vvka-141/secretscan/pkg/secretscan"
)

func TestRequireAtMostOneDirectory(t *testing.T) {
	cmd := &cobra.Command{
		Use: "secretscan [directory]",
	}

	t.Run("accepts no args", func(t *testing.T) {
		if err := RequireAtMostOneDirectory(cmd, nil); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("accepts one arg", func(t *testing.T) {
		if err := RequireAtMostOneDirectory(cmd, []string{"./configs"}); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("rejects two args as a usage error", func(t *testing.T) {
		err := RequireAtMostOneDirectory(cmd, []string{"a", "b"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "accepts at most 1 arg") {
			t.Errorf("expected error to contain 'accepts at most 1 arg', got: %s", err.Error())
		}
		if code := secretscan.ExitCodeForError(err); code != secretscan.ExitUsageError {
			t.Errorf("expected exit code %d, got %d", secretscan.ExitUsageError, code)
		}
	})
}

func TestTargetFromArgs(t *testing.T) {
	if got := targetFromArgs(nil, secretscan.DefaultTarget); got != "test_configs" {
		t.Errorf("expected default target, got %q", got)
	}
	if got := targetFromArgs([]string{"src"}, secretscan.DefaultTarget); got != "src" {
		t.Errorf("expected src, got %q", got)
	}
}

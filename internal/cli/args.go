package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireAtMostOneDirectory accepts zero or one positional directory.
// The error message keeps cobra's wording so it is classified as a usage error.
func RequireAtMostOneDirectory(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`accepts at most 1 arg(s), received %d

Usage: %s

Example:
  %s ./configs`, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// targetFromArgs returns the directory to scan.
func targetFromArgs(args []string, fallback string) string {
	if len(args) == 0 || args[0] == "" {
		return fallback
	}
	return args[0]
}

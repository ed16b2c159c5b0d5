package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/secretscan/pkg/secretscan"
)

var rootCmd = &cobra.Command{
	Use:   "secretscan [directory]",
	Short: "Scan a directory tree for leaked secrets",
	Long: `secretscan walks a directory tree, reads every text file and flags files
containing likely credentials: AWS access key prefixes and the words
"password" or "secret". Findings are printed as they are found, followed by
a summary. The exit status makes the tool usable as a CI gate.

When no directory is given, "` + secretscan.DefaultTarget + `" is scanned.

Configuration is read from ` + "`.secretscan.yaml`" + ` in the working directory (or
--config), then SECRETSCAN_* environment variables (a .env file is loaded
first), then command-line flags.

Exit Codes:
  0 - No alerts, or --exit-zero was given
  1 - Alerts were raised, or the target/configuration is invalid
  2 - CLI usage error (invalid arguments or flags)
  3 - Panic or unexpected system error`,
	Example: `  secretscan
  secretscan ./configs --exit-zero
  secretscan . -w 8 -o json > report.json`,
	Args:          RequireAtMostOneDirectory,
	RunE:          runScan,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
// Errors are printed to stderr before returning.
func Execute() int {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout, os.Stderr)
		return secretscan.ExitSuccess
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return executeArgs(ctx, os.Args[1:])
}

// executeArgs runs rootCmd with args and maps the outcome to an exit code.
func executeArgs(ctx context.Context, args []string) int {
	resetScanState()
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return secretscan.ExitCodeForError(err)
	}
	return scanState.exitCode
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

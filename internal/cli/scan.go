package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vvka-141/secretscan/internal/config"
	"github.com/vvka-141/secretscan/internal/files/scanner"
	"github.com/vvka-141/secretscan/internal/logging"
	"github.com/vvka-141/secretscan/internal/report"
	"github.com/vvka-141/secretscan/pkg/secretscan"
)

type scanFlagValues struct {
	exitZero   bool
	workers    int
	format     string
	configPath string
}

var scanFlags scanFlagValues

// scanState carries the exit code of the last scan out of cobra, since a
// scan with findings is not an error.
var scanState struct {
	exitCode int
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&scanFlags.exitZero, "exit-zero", false, "Exit 0 even when alerts were raised")
	flags.IntVarP(&scanFlags.workers, "workers", "w", secretscan.DefaultWorkers,
		fmt.Sprintf("Number of files processed concurrently (1-%d)", secretscan.MaxWorkers))
	flags.StringVarP(&scanFlags.format, "format", "o", string(report.FormatText), "Output format: text or json")
	flags.StringVarP(&scanFlags.configPath, "config", "c", "", "Config file (default "+config.FileName+" in the working directory)")
}

// resetScanState restores flag defaults so rootCmd can be executed again.
func resetScanState() {
	scanState.exitCode = secretscan.ExitSuccess
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)
}

// scanSettings is the fully resolved configuration for one scan.
type scanSettings struct {
	Target   string
	ExitZero bool
	Workers  int
	Format   report.Format
	Verbose  bool
}

func runScan(cmd *cobra.Command, args []string) error {
	settings, err := resolveScanSettings(cmd, args, os.LookupEnv)
	if err != nil {
		return err
	}

	code, err := executeScan(cmd.Context(), settings, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	scanState.exitCode = code
	return nil
}

// resolveScanSettings merges defaults, the config file, the environment and
// explicitly set flags, in increasing order of precedence.
func resolveScanSettings(cmd *cobra.Command, args []string, lookupEnv func(string) (string, bool)) (scanSettings, error) {
	_ = godotenv.Load()

	cfg, err := loadConfig(scanFlags.configPath)
	if err != nil {
		return scanSettings{}, err
	}
	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return scanSettings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("exit-zero") {
		cfg.ExitZero = scanFlags.exitZero
	}
	if flags.Changed("workers") {
		if scanFlags.workers < 1 || scanFlags.workers > secretscan.MaxWorkers {
			return scanSettings{}, fmt.Errorf("invalid argument %d for --workers: must be between 1 and %d: %w",
				scanFlags.workers, secretscan.MaxWorkers, secretscan.ErrUsage)
		}
		cfg.Workers = scanFlags.workers
	}

	formatName := cfg.Format
	if flags.Changed("format") {
		formatName = scanFlags.format
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return scanSettings{}, err
	}

	return scanSettings{
		Target:   targetFromArgs(args, secretscan.DefaultTarget),
		ExitZero: cfg.ExitZero,
		Workers:  cfg.Workers,
		Format:   format,
		Verbose:  getVerboseFlag(cmd) || cfg.Verbose,
	}, nil
}

// loadConfig reads an explicit config path, or the optional default file.
// A missing default file is not an error; a missing explicit one is.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg, err := config.LoadFromDir(".")
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				defaults := config.Default()
				return &defaults, nil
			}
			return nil, fmt.Errorf("failed to load %s: %w", config.FileName, err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s does not exist", secretscan.ErrInvalidConfig, path)
		}
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// validateTarget rejects a target that is missing or not a directory before
// any scanning starts.
func validateTarget(target string) error {
	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: directory %q does not exist", secretscan.ErrInvalidRoot, target)
		}
		return fmt.Errorf("%w: %w", secretscan.ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %q is not a directory", secretscan.ErrInvalidRoot, target)
	}
	return nil
}

// executeScan runs one scan and returns the exit code for its summary.
// Errors are returned only when no complete summary could be produced.
func executeScan(ctx context.Context, settings scanSettings, stdout, stderr io.Writer) (int, error) {
	logger := logging.NewWriterLogger(stderr, settings.Verbose)

	if err := validateTarget(settings.Target); err != nil {
		return secretscan.ExitConfigError, err
	}

	rep, err := report.New(settings.Format, stdout)
	if err != nil {
		return secretscan.ExitUsageError, err
	}
	if err := rep.Start(settings.Target); err != nil {
		return secretscan.ExitGeneralError, err
	}

	logger.Verbose("Resolved settings: workers=%d format=%s exit-zero=%t",
		settings.Workers, settings.Format, settings.ExitZero)

	s := scanner.NewScanner(
		scanner.WithLogger(logger),
		scanner.WithEventSink(rep),
		scanner.WithWorkers(settings.Workers),
	)
	summary, err := s.Scan(ctx, settings.Target)
	if err != nil {
		return secretscan.ExitCodeForError(err), fmt.Errorf("scan of %s did not complete: %w", settings.Target, err)
	}

	if err := rep.Finish(summary); err != nil {
		return secretscan.ExitGeneralError, err
	}
	return secretscan.ExitCodeForSummary(summary, settings.ExitZero), nil
}

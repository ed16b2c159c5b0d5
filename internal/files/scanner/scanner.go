package scanner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/secretscan/internal/checksum"
	"github.com/vvka-141/secretscan/internal/files/filesystem"
	"github.com/vvka-141/secretscan/internal/files/loader"
	"github.com/vvka-141/secretscan/internal/files/walker"
	"github.com/vvka-141/secretscan/internal/logging"
	"github.com/vvka-141/secretscan/internal/rules"
	"github.com/vvka-141/secretscan/pkg/secretscan"
)

// EventSink receives per-file events as a scan progresses.
// With one worker, events arrive in walk order as files are processed.
// With more workers, they are buffered and delivered in lexicographic path
// order once the walk is exhausted.
type EventSink interface {
	// OnFinding is called once per matched rule.
	OnFinding(result secretscan.FileResult, rule secretscan.Rule)

	// OnSkip is called once per skipped file.
	OnSkip(result secretscan.FileResult)
}

type nopSink struct{}

func (nopSink) OnFinding(secretscan.FileResult, secretscan.Rule) {}
func (nopSink) OnSkip(secretscan.FileResult)                     {}

type state int

const (
	stateIdle state = iota
	stateScanning
	stateFinalized
)

// Scanner drives one scan of a directory tree: it walks the tree, reads and
// classifies every regular file, and aggregates the results into a
// ScanSummary. A Scanner performs exactly one scan.
type Scanner struct {
	rules      *rules.Set
	fsProvider filesystem.FileSystemProvider
	loader     *loader.Loader
	calculator checksum.Calculator
	logger     secretscan.Logger
	sink       EventSink
	workers    int

	mu    sync.Mutex
	state state
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithFileSystem sets the filesystem provider. Defaults to the OS filesystem.
func WithFileSystem(p filesystem.FileSystemProvider) Option {
	return func(s *Scanner) { s.fsProvider = p }
}

// WithRules sets the rule set. Defaults to rules.Default().
func WithRules(set *rules.Set) Option {
	return func(s *Scanner) { s.rules = set }
}

// WithLogger sets the diagnostics logger. Defaults to a NullLogger.
func WithLogger(l secretscan.Logger) Option {
	return func(s *Scanner) { s.logger = l }
}

// WithEventSink sets the receiver of finding and skip events.
func WithEventSink(sink EventSink) Option {
	return func(s *Scanner) { s.sink = sink }
}

// WithLoader sets the file loader. Defaults to loader.New with the scanner's logger.
func WithLoader(l *loader.Loader) Option {
	return func(s *Scanner) { s.loader = l }
}

// WithWorkers sets how many files are processed concurrently.
// Values below 1 are treated as 1; values above MaxWorkers are capped.
func WithWorkers(n int) Option {
	return func(s *Scanner) { s.workers = n }
}

// NewScanner creates a Scanner in the idle state.
// Panics if an option sets a nil collaborator.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		rules:      rules.Default(),
		fsProvider: filesystem.NewOSFileSystem(),
		calculator: checksum.New(),
		logger:     logging.NewNullLogger(),
		sink:       nopSink{},
		workers:    secretscan.DefaultWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.rules == nil {
		panic("rules cannot be nil")
	}
	if s.fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if s.logger == nil {
		panic("logger cannot be nil")
	}
	if s.sink == nil {
		panic("sink cannot be nil")
	}
	if s.loader == nil {
		s.loader = loader.New(s.logger)
	}
	s.workers = min(max(s.workers, 1), secretscan.MaxWorkers)

	return s
}

// Scan walks root and returns the finalized summary.
//
// An unusable root yields an error wrapping secretscan.ErrInvalidRoot and
// no scan is performed. Unreadable or undecodable files are counted as
// skipped and never fail the scan. If ctx is cancelled, the scan stops at
// the next file boundary and returns the summary of the files processed so
// far together with ctx.Err().
func (s *Scanner) Scan(ctx context.Context, root string) (secretscan.ScanSummary, error) {
	if err := s.begin(); err != nil {
		return secretscan.ScanSummary{}, err
	}
	defer s.finish()

	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return secretscan.ScanSummary{}, fmt.Errorf("%w: %w", secretscan.ErrInvalidRoot, err)
	}

	agg := newAggregate(dir.Path())
	s.logger.Verbose("Scanning %s with %d worker(s) and %d rule(s)", dir.Path(), s.workers, s.rules.Len())

	if s.workers == 1 {
		err = s.scanSequential(ctx, dir, agg)
	} else {
		err = s.scanParallel(ctx, dir, agg)
	}

	summary := agg.finalize()
	s.logger.Verbose("Scan finished: %d file(s) read, %d skipped, %d alert(s)",
		summary.FilesScanned, summary.SkippedFiles, summary.TotalAlerts)
	return summary, err
}

func (s *Scanner) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateIdle {
		return secretscan.ErrScannerUsed
	}
	s.state = stateScanning
	return nil
}

func (s *Scanner) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = stateFinalized
}

func (s *Scanner) scanSequential(ctx context.Context, dir filesystem.Directory, agg *aggregate) error {
	for entry := range walker.Walk(dir, s.logger) {
		if err := ctx.Err(); err != nil {
			return err
		}
		result, ok := s.processFile(ctx, entry)
		if !ok {
			return ctx.Err()
		}
		agg.record(result)
		s.emit(result)
	}
	return nil
}

func (s *Scanner) scanParallel(ctx context.Context, dir filesystem.Directory, agg *aggregate) error {
	var (
		mu      sync.Mutex
		results []secretscan.FileResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for entry := range walker.Walk(dir, s.logger) {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			result, ok := s.processFile(gctx, entry)
			if !ok {
				return nil
			}
			mu.Lock()
			agg.record(result)
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].RelativePath < results[j].RelativePath
	})
	for _, result := range results {
		s.emit(result)
	}

	return ctx.Err()
}

// processFile reads and classifies one file. ok is false when the read was
// abandoned because ctx ended, in which case the file must not be recorded.
func (s *Scanner) processFile(ctx context.Context, entry walker.Entry) (result secretscan.FileResult, ok bool) {
	result = secretscan.FileResult{
		RelativePath: entry.RelativePath,
		Directory:    entry.Directory,
	}

	read := s.loader.Read(ctx, entry.File)
	if !read.OK() {
		if read.Err != nil && ctx.Err() != nil && errors.Is(read.Err, ctx.Err()) {
			return result, false
		}
		result.Outcome = secretscan.OutcomeSkipped
		result.SkipReason = read.Reason
		result.Detail = read.Detail
		return result, true
	}

	result.MatchedRules = s.rules.Evaluate(read.Content)
	if len(result.MatchedRules) == 0 {
		result.Outcome = secretscan.OutcomeClean
		return result, true
	}

	result.Outcome = secretscan.OutcomeMatched
	result.Digest = s.calculator.Digest(read.Raw)
	return result, true
}

func (s *Scanner) emit(result secretscan.FileResult) {
	switch result.Outcome {
	case secretscan.OutcomeSkipped:
		s.sink.OnSkip(result)
	case secretscan.OutcomeMatched:
		for _, name := range result.MatchedRules {
			rule, _ := s.rules.Lookup(name)
			s.sink.OnFinding(result, rule)
		}
	}
}

package loader

import (
	"context"
	"errors"
	"io/fs"
	"time"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"

	"github.com/vvka-141/secretscan/internal/files/filesystem"
	"github.com/vvka-141/secretscan/internal/retry"
	"github.com/vvka-141/secretscan/pkg/secretscan"
)

// ReadResult is the outcome of reading one file at the read boundary.
// Exactly one of Content (when Reason is SkipNone) or Reason is meaningful.
type ReadResult struct {
	// Content is the decoded text.
	Content string

	// Raw is the undecoded content, kept for digesting.
	Raw []byte

	// Reason is SkipNone on success, otherwise why the file was skipped.
	Reason secretscan.SkipReason

	// Detail is extra context for a skip, e.g. the detected MIME type.
	Detail string

	// Err is the underlying read error for access failures.
	Err error
}

// OK reports whether the file was read and decoded as text.
func (r ReadResult) OK() bool {
	return r.Reason == secretscan.SkipNone
}

// Loader reads files and decodes them as UTF-8 text.
// Loader is safe for concurrent use by multiple goroutines.
type Loader struct {
	executor *retry.Executor
	logger   secretscan.Logger
}

// New creates a Loader that retries transient read errors with the default
// bounded backoff.
func New(logger secretscan.Logger) *Loader {
	return NewWithExecutor(retry.NewFileReadExecutor(), logger)
}

// NewWithExecutor creates a Loader with a custom retry executor.
// Panics if executor or logger is nil.
func NewWithExecutor(executor *retry.Executor, logger secretscan.Logger) *Loader {
	if executor == nil {
		panic("executor cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Loader{
		executor: executor,
		logger:   logger,
	}
}

// Read loads file and classifies the result. Read failures and undecodable
// content are returned as skip results, never as errors.
func (l *Loader) Read(ctx context.Context, file filesystem.File) ReadResult {
	rel := file.RelativePath()

	var raw []byte
	executor := l.executor.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		l.logger.Verbose("Retrying read of %s (attempt %d) in %s: %v", rel, attempt+1, delay, err)
	})
	err := executor.Execute(ctx, func(context.Context) error {
		var readErr error
		raw, readErr = file.ReadContent()
		return readErr
	})
	if err != nil {
		reason := secretscan.SkipUnreadable
		if errors.Is(err, fs.ErrPermission) {
			reason = secretscan.SkipInsufficientPermissions
		}
		l.logger.Verbose("Read of %s failed: %v", rel, err)
		return ReadResult{Reason: reason, Err: err}
	}

	if !utf8.Valid(raw) {
		mime := mimetype.Detect(raw).String()
		l.logger.Verbose("%s is not valid UTF-8 text (detected %s)", rel, mime)
		return ReadResult{Raw: raw, Reason: secretscan.SkipIncompatibleType, Detail: mime}
	}

	return ReadResult{Content: string(raw), Raw: raw}
}

package retry

import (
	"context"
	"time"

	"github.com/vvka-141/secretscan/pkg/secretscan"
)

// Executor runs an operation, retrying transient failures with backoff.
// Safe for concurrent use; WithOnRetry returns a configured copy.
type Executor struct {
	classifier secretscan.ErrorClassifier
	strategy   secretscan.BackoffStrategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates a new retry executor.
// Panics if classifier or strategy is nil.
func NewExecutor(classifier secretscan.ErrorClassifier, strategy secretscan.BackoffStrategy) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return &Executor{classifier: classifier, strategy: strategy}
}

// NewFileReadExecutor returns the executor used for file reads, bounded by
// the package-level read retry defaults.
func NewFileReadExecutor() *Executor {
	return NewExecutor(
		NewFileErrorClassifier(),
		NewExponentialBackoff(secretscan.DefaultReadRetryAttempts,
			WithInitialDelay(secretscan.DefaultReadRetryDelay),
			WithMaxDelay(secretscan.DefaultReadRetryMaxDelay),
		),
	)
}

// WithOnRetry returns a copy of the executor that calls callback before
// every retry. The receiver is not modified.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Execute runs operation once, then retries while the error is transient
// and attempts remain. It returns the last error, or ctx.Err() if the
// context ends during a backoff wait.
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	err := operation(ctx)

	for attempt := 0; err != nil && attempt < e.strategy.MaxAttempts(); attempt++ {
		if !e.classifier.IsTransient(err) {
			return err
		}

		delay := e.strategy.NextDelay(attempt)
		if e.onRetry != nil {
			e.onRetry(attempt, err, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		err = operation(ctx)
	}

	return err
}

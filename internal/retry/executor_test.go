package retry

import (
	"context"
	"errors"
	"io/fs"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastBackoff(attempts int) *ExponentialBackoff {
	return NewExponentialBackoff(attempts, WithInitialDelay(time.Millisecond), WithMaxDelay(time.Millisecond), WithJitter(0))
}

func TestExecutor_SuccessFirstAttempt(t *testing.T) {
	e := NewExecutor(NewFileErrorClassifier(), fastBackoff(3))

	calls := 0
	err := e.Execute(context.Background(), func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecutor_RetriesTransientThenSucceeds(t *testing.T) {
	var retries []int
	e := NewExecutor(NewFileErrorClassifier(), fastBackoff(3)).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			retries = append(retries, attempt)
		})

	calls := 0
	err := e.Execute(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return &fs.PathError{Op: "read", Path: "x", Err: syscall.EINTR}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{0, 1}, retries)
}

func TestExecutor_PermanentErrorNotRetried(t *testing.T) {
	e := NewExecutor(NewFileErrorClassifier(), fastBackoff(3))

	calls := 0
	err := e.Execute(context.Background(), func(context.Context) error {
		calls++
		return &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}
	})
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Equal(t, 1, calls)
}

func TestExecutor_BoundedAttempts(t *testing.T) {
	e := NewExecutor(NewFileErrorClassifier(), fastBackoff(2))

	calls := 0
	err := e.Execute(context.Background(), func(context.Context) error {
		calls++
		return syscall.EAGAIN
	})
	assert.ErrorIs(t, err, syscall.EAGAIN)
	assert.Equal(t, 3, calls, "one initial attempt plus two retries")
}

func TestExecutor_ContextCancelledDuringBackoff(t *testing.T) {
	e := NewExecutor(NewFileErrorClassifier(),
		NewExponentialBackoff(5, WithInitialDelay(time.Hour), WithMaxDelay(time.Hour), WithJitter(0)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.Execute(ctx, func(context.Context) error { return syscall.EINTR })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewExecutor_NilArgsPanic(t *testing.T) {
	assert.Panics(t, func() { NewExecutor(nil, fastBackoff(1)) })
	assert.Panics(t, func() { NewExecutor(NewFileErrorClassifier(), nil) })
}

func TestWithOnRetry_DoesNotMutateReceiver(t *testing.T) {
	base := NewFileReadExecutor()
	configured := base.WithOnRetry(func(int, error, time.Duration) {})
	assert.Nil(t, base.onRetry)
	assert.NotNil(t, configured.onRetry)
}

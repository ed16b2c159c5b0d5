package logging

import "github.com/vvka-141/secretscan/pkg/secretscan"

// NullLogger discards all log messages.
// Safe for concurrent use by multiple goroutines.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}
func (l *NullLogger) Info(format string, args ...interface{})    {}
func (l *NullLogger) Error(format string, args ...interface{})   {}

var (
	_ secretscan.Logger = (*NullLogger)(nil)
	_ secretscan.Logger = (*ConsoleLogger)(nil)
)

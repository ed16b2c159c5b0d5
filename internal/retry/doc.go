// Package retry provides bounded retry with exponential backoff for
// transient file read failures.
//
// A read interrupted by a signal or refused because of momentary resource
// exhaustion (EINTR, EAGAIN, EBUSY, EMFILE, ENFILE) is retried a small,
// fixed number of times with short delays. Everything else, permission
// and not-exist errors in particular, fails immediately so the scanner can
// record a skip and move on.
//
// # Example Usage
//
//	executor := retry.NewFileReadExecutor()
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    data, err = file.ReadContent()
//	    return err
//	})
package retry

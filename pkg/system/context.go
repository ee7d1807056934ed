package system

import (
	"context"
)

// Executes an operation with context awareness, ensuring proper completion
// or graceful interruption. Used to bound checksum jobs over external
// inputs (files, pipes) that may outlive the caller's patience.
//
// Returns:
//   - nil if the operation completes successfully.
//   - the operation's error if it fails.
//   - the operation's result after cancellation was signalled, allowing it
//     to stop at the next safe point instead of being abandoned mid-state.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	// Fast feedback if the caller was already cancelled before we started.
	if err := ctx.Err(); err != nil {
		return err
	}

	// The operation gets its own context so that cancellation can be
	// signalled without abandoning the goroutine's result.
	opCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so the operation goroutine can exit even if nobody reads
	// the result immediately after parent cancellation.
	done := make(chan error, 1)

	go func() {
		done <- operation(opCtx)
		close(done)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// Signal the operation to stop, then wait for it to observe the
		// cancellation and return, so no work is left half-finished.
		cancel()
		return <-done
	}
}

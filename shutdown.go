package playlytics

import (
	"context"
	"fmt"
	"time"
)

// ShutdownError reports a shutdown that could not complete cleanly.
// It provides context about what was lost.
type ShutdownError struct {
	Cause         error // The underlying error (e.g. context deadline exceeded)
	PendingEvents int   // Number of events that were not sent
	Message       string
}

// Error implements the error interface.
func (e *ShutdownError) Error() string {
	if e.PendingEvents > 0 {
		return fmt.Sprintf("playlytics: shutdown failed (%s): %d pending events may be lost", e.Message, e.PendingEvents)
	}
	return fmt.Sprintf("playlytics: shutdown failed: %s", e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *ShutdownError) Unwrap() error {
	return e.Cause
}

// Shutdown flushes pending events and closes the client gracefully.
//
// The shutdown process:
//  1. Stop accepting new events (Track becomes a no-op)
//  2. Cancel the auto-flush loop and await its termination
//  3. Make up to 3 flush rounds while the queue is non-empty, stopping
//     early on an empty queue or a non-retryable failure, with a 1s wait
//     between rounds
//  4. Wait for all background flush goroutines to finish
//
// Leftover events after the final round are logged as data loss; that is
// not an error. A second call returns ErrClientClosed. Cancelling ctx
// abandons the remaining rounds and returns a ShutdownError carrying the
// number of events left behind.
func (c *Client) Shutdown(ctx context.Context) error {
	if !c.shuttingDown.CompareAndSwap(false, true) {
		return ErrClientClosed
	}

	// Stop the auto-flush loop before the final rounds so they don't
	// race. In-flight flushes keep running; only the loop is cancelled.
	c.cancel()
	<-c.loopDone

	var interrupted bool
	for attempt := 1; attempt <= shutdownFlushAttempts; attempt++ {
		if c.queue.IsEmpty() {
			break
		}

		err := c.flushOnce(ctx)
		if err == nil {
			if c.queue.IsEmpty() {
				break
			}
		} else {
			c.handleError(err)
			if !IsRetryable(err) {
				// A permanently rejecting endpoint; further rounds
				// are futile.
				break
			}
		}

		if attempt < shutdownFlushAttempts {
			select {
			case <-time.After(shutdownRetryDelay):
			case <-ctx.Done():
				interrupted = true
			}
			if interrupted {
				break
			}
		}
	}

	pending := c.queue.Len()
	if pending > 0 {
		c.logWarn("events dropped at shutdown", "pending", pending)
	} else {
		c.logInfo("shutdown complete", "drained", true)
	}

	// Wait for eager and async flushes still in flight.
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return &ShutdownError{
			Cause:         ctx.Err(),
			PendingEvents: pending,
			Message:       "timeout waiting for background flushes",
		}
	}

	if interrupted {
		return &ShutdownError{
			Cause:         ctx.Err(),
			PendingEvents: pending,
			Message:       "context cancelled during final flush rounds",
		}
	}
	return nil
}

// Close is an alias for Shutdown.
func (c *Client) Close(ctx context.Context) error {
	return c.Shutdown(ctx)
}

package playlytics

import (
	"context"
	"net/url"
)

// flushOnce drains one batch and attempts to deliver it.
//
// An empty queue returns nil without a network call. A drain that comes
// back empty (lost a race with a concurrent flush) also returns nil. On a
// retryable failure the entire batch goes back to the head of the queue in
// its original order; on a non-retryable failure it is dropped.
func (c *Client) flushOnce(ctx context.Context) error {
	if c.queue.IsEmpty() {
		return nil
	}

	batch := c.queue.DrainUpTo(c.config.MaxBatchSize)
	if len(batch) == 0 {
		return nil
	}

	status, body, err := c.http.put(ctx, "/analytics/"+url.PathEscape(c.config.ServerKey), batch)
	if err != nil {
		// No response reached us: always retryable.
		c.queue.RequeueFront(batch)
		return &FlushError{
			Message:    err.Error(),
			StatusCode: StatusNoResponse,
			Retryable:  true,
			Err:        err,
		}
	}

	if status >= 200 && status < 300 {
		c.log("flushed %d events", len(batch))
		return nil
	}

	retryable := retryableStatus(status)
	if retryable {
		c.queue.RequeueFront(batch)
	}
	return &FlushError{
		Message:    flushErrorMessage(body, nil),
		StatusCode: status,
		Retryable:  retryable,
	}
}

package playlytics

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// defaultStderrLogger is used as a fallback when no logger is configured.
// This ensures background flush failures are never silently dropped.
var defaultStderrLogger = log.New(os.Stderr, "playlytics: ", log.LstdFlags)

// Client is the Playlytics analytics client. It owns the event queue, the
// background auto-flush loop, and the flush policy.
//
// All public methods are safe for concurrent use. Two flushes may run
// concurrently (an eager flush racing the auto-flush loop, for example);
// the queue's drain is atomic per call, so no event is ever handed to two
// flushes at once.
type Client struct {
	config *Config
	http   *httpClient
	queue  *eventQueue

	// Set-once false→true transition, read by Track and the experiments
	// lookup. Once true, new events are silently dropped.
	shuttingDown atomic.Bool

	// Governs only the auto-flush loop. In-flight network calls are not
	// cancelled by shutdown; they run to completion.
	ctx    context.Context
	cancel context.CancelFunc

	// Tracks background flush goroutines and the auto-flush loop.
	wg sync.WaitGroup

	// Closed when the auto-flush loop exits (immediately at construction
	// when the loop is disabled).
	loopDone chan struct{}
}

// New creates a new Playlytics client.
func New(serverKey string, opts ...ConfigOption) (*Client, error) {
	cfg := &Config{ServerKey: serverKey}
	for _, opt := range opts {
		opt(cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a new Playlytics client from a Config struct.
// This is useful when you want to configure the client using a struct
// rather than functional options.
//
// Example:
//
//	client, err := playlytics.NewWithConfig(&playlytics.Config{
//	    ServerKey:    os.Getenv("PLAYLYTICS_SERVER_KEY"),
//	    MaxBatchSize: 500,
//	})
func NewWithConfig(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	// Make a copy to avoid modifying the original
	cfgCopy := *cfg

	cfgCopy.applyDefaults()

	if err := cfgCopy.validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := &Client{
		config:   &cfgCopy,
		http:     newHTTPClient(&cfgCopy),
		queue:    newEventQueue(),
		ctx:      ctx,
		cancel:   cancel,
		loopDone: make(chan struct{}),
	}

	if cfgCopy.DisableAutoFlush {
		close(c.loopDone)
	} else {
		c.wg.Add(1)
		go c.autoFlushLoop()
	}

	return c, nil
}

// Track enqueues an event for asynchronous delivery. It never blocks and
// never fails; after Shutdown has begun it is a silent no-op.
//
// When the queue reaches MaxBatchSize, Track schedules an eager background
// flush without waiting for it.
func (c *Client) Track(eventType string, properties map[string]any) {
	if c.shuttingDown.Load() {
		return
	}

	c.queue.Enqueue(newEvent(eventType, properties))

	if c.queue.Len() >= c.config.MaxBatchSize {
		c.startFlush(nil)
	}
}

// Flush synchronously drains up to MaxBatchSize events and sends them.
// A nil return means success (including the empty-queue case, which makes
// no network call). A non-nil return is always a *FlushError; if it is
// retryable, the batch has been returned to the head of the queue.
func (c *Client) Flush(ctx context.Context) error {
	if c.shuttingDown.Load() {
		return ErrClientClosed
	}
	return c.flushOnce(ctx)
}

// FlushAsync schedules a flush on a background goroutine. The callback, if
// non-nil, receives the flush result and is invoked on the background
// goroutine, never the caller's. With a nil callback, failures go through
// the configured error handler or logger.
func (c *Client) FlushAsync(callback func(error)) {
	if c.shuttingDown.Load() {
		if callback != nil {
			go callback(ErrClientClosed)
		}
		return
	}
	c.startFlush(callback)
}

// startFlush runs one flush on a tracked background goroutine.
func (c *Client) startFlush(callback func(error)) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		err := c.flushOnce(context.Background())
		if callback != nil {
			callback(err)
			return
		}
		if err != nil {
			c.handleError(err)
		}
	}()
}

// QueueLen returns the number of events waiting to be sent. The value is
// advisory and may be stale immediately.
func (c *Client) QueueLen() int {
	return c.queue.Len()
}

// autoFlushLoop periodically flushes the queue until the client context is
// cancelled. A failed flush is logged and the loop continues; cancellation
// interrupts the wait promptly rather than letting the interval elapse.
func (c *Client) autoFlushLoop() {
	defer c.wg.Done()
	defer close(c.loopDone)

	ticker := time.NewTicker(c.config.AutoFlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			if c.queue.IsEmpty() {
				continue
			}
			if err := c.flushOnce(context.Background()); err != nil {
				c.handleError(err)
			}
		}
	}
}

// handleError handles background flush failures.
// Errors are NEVER silently dropped - if no handler or logger is
// configured, they are logged to stderr as a fallback.
func (c *Client) handleError(err error) {
	handled := false

	if c.config.ErrorHandler != nil {
		c.config.ErrorHandler(err)
		handled = true
	}

	if c.config.StructuredLogger != nil {
		c.config.StructuredLogger.Error("flush error", "error", err)
		handled = true
	} else if c.config.Logger != nil {
		c.config.Logger.Printf("error: %v", err)
		handled = true
	}

	// Never silently drop errors - log to stderr as fallback
	if !handled {
		defaultStderrLogger.Printf("unhandled flush error: %v", err)
	}
}

// log logs a message if logging is enabled.
func (c *Client) log(format string, v ...any) {
	if c.config.StructuredLogger != nil {
		c.config.StructuredLogger.Debug(fmt.Sprintf(format, v...))
	} else if c.config.Logger != nil {
		c.config.Logger.Printf(format, v...)
	}
}

// logInfo logs an info-level message.
func (c *Client) logInfo(msg string, args ...any) {
	if c.config.StructuredLogger != nil {
		c.config.StructuredLogger.Info(msg, args...)
	} else if c.config.Logger != nil {
		c.config.Logger.Printf(msg + formatArgs(args))
	}
}

// logWarn logs a warning-level message.
func (c *Client) logWarn(msg string, args ...any) {
	if c.config.StructuredLogger != nil {
		c.config.StructuredLogger.Warn(msg, args...)
	} else if c.config.Logger != nil {
		c.config.Logger.Printf("[WARN] " + msg + formatArgs(args))
	}
}

package playlytics

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// Default configuration values.
const (
	// DefaultBaseURL is the ingest endpoint used when none is configured.
	DefaultBaseURL = "http://localhost:3000"

	// DefaultAutoFlushInterval is the default period of the background
	// flush loop.
	DefaultAutoFlushInterval = 30 * time.Second

	// DefaultMaxBatchSize is the default maximum number of events per
	// batch. Reaching it also triggers an eager asynchronous flush.
	DefaultMaxBatchSize = 1000

	// DefaultTimeout is the default per-request timeout of the HTTP
	// client built when none is supplied.
	DefaultTimeout = 30 * time.Second

	// shutdownFlushAttempts is the number of final flush rounds Shutdown
	// makes while the queue is non-empty.
	shutdownFlushAttempts = 3

	// shutdownRetryDelay is the wait between shutdown flush rounds.
	shutdownRetryDelay = time.Second
)

// Config holds the configuration for the Playlytics client.
type Config struct {
	// ServerKey identifies the game server to the ingest endpoint
	// (required). It is embedded in the request path, not a header.
	ServerKey string

	// BaseURL is the base URL of the Playlytics API.
	// Defaults to DefaultBaseURL.
	BaseURL string

	// AutoFlushInterval is the period of the background flush loop.
	// Defaults to DefaultAutoFlushInterval.
	AutoFlushInterval time.Duration

	// MaxBatchSize is the maximum number of events sent in one batch.
	// Enqueueing the MaxBatchSize-th event triggers an eager flush.
	// Defaults to DefaultMaxBatchSize.
	MaxBatchSize int

	// DisableAutoFlush turns off the background flush loop. Events are
	// then only sent by eager size-triggered flushes and explicit Flush
	// calls.
	DisableAutoFlush bool

	// HTTPClient is the HTTP client used for requests. If nil, a default
	// client with Timeout is used. Deadline policy belongs entirely to
	// this client; the SDK imposes none of its own.
	HTTPClient *http.Client

	// Timeout is the request timeout of the default HTTP client. Ignored
	// when HTTPClient is set. Defaults to DefaultTimeout.
	Timeout time.Duration

	// Debug enables debug logging to stderr when no logger is configured.
	Debug bool

	// ErrorHandler is called when background flushes fail.
	// If nil, failures are logged instead.
	ErrorHandler func(error)

	// Logger is used for SDK logging (printf-style).
	// For structured logging, use StructuredLogger instead.
	Logger Logger

	// StructuredLogger is used for structured SDK logging.
	// If set, this takes precedence over Logger.
	// Compatible with slog.Logger via NewSlogAdapter().
	StructuredLogger StructuredLogger
}

// String returns a string representation of the config with the server key
// masked. It is safe to use in logs and debug output.
func (c *Config) String() string {
	return fmt.Sprintf("Config{ServerKey: %q, BaseURL: %q, AutoFlushInterval: %v, MaxBatchSize: %d, DisableAutoFlush: %v}",
		MaskCredential(c.ServerKey),
		c.BaseURL,
		c.AutoFlushInterval,
		c.MaxBatchSize,
		c.DisableAutoFlush,
	)
}

// applyDefaults sets default values for unset configuration options.
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}

	if c.AutoFlushInterval == 0 {
		c.AutoFlushInterval = DefaultAutoFlushInterval
	}

	if c.MaxBatchSize == 0 {
		c.MaxBatchSize = DefaultMaxBatchSize
	}

	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}

	// Set default logger if debug is enabled and no logger is set
	if c.Debug && c.Logger == nil && c.StructuredLogger == nil {
		c.Logger = &defaultLogger{
			logger: log.New(os.Stderr, "playlytics: ", log.LstdFlags),
		}
	}

	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{
			Timeout: c.Timeout,
		}
	}
}

// validate checks that the configuration is valid.
func (c *Config) validate() error {
	if c.ServerKey == "" {
		return ErrMissingServerKey
	}
	if c.AutoFlushInterval <= 0 {
		return ErrInvalidFlushInterval
	}
	if c.MaxBatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	return nil
}

package playlytics

import (
	"net/http"
	"time"
)

// ConfigOption is a function that modifies a Config.
type ConfigOption func(*Config)

// WithBaseURL sets a custom base URL for the Playlytics API.
func WithBaseURL(baseURL string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithAutoFlushInterval sets the period of the background flush loop.
func WithAutoFlushInterval(interval time.Duration) ConfigOption {
	return func(c *Config) {
		c.AutoFlushInterval = interval
	}
}

// WithMaxBatchSize sets the maximum number of events per batch.
func WithMaxBatchSize(size int) ConfigOption {
	return func(c *Config) {
		c.MaxBatchSize = size
	}
}

// WithAutoFlush enables or disables the background flush loop.
// It is enabled by default.
func WithAutoFlush(enabled bool) ConfigOption {
	return func(c *Config) {
		c.DisableAutoFlush = !enabled
	}
}

// WithHTTPClient sets a custom HTTP client. Timeout policy is entirely the
// client's; the SDK imposes no deadline of its own.
func WithHTTPClient(client *http.Client) ConfigOption {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
// It has no effect when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithDebug enables debug logging.
func WithDebug(debug bool) ConfigOption {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithErrorHandler sets an error callback for background flush failures.
func WithErrorHandler(handler func(error)) ConfigOption {
	return func(c *Config) {
		c.ErrorHandler = handler
	}
}

// WithLogger sets a custom logger (printf-style).
func WithLogger(logger Logger) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithStructuredLogger sets a structured logger.
// This takes precedence over Logger set via WithLogger.
//
// Example with slog:
//
//	client, _ := playlytics.New(serverKey,
//	    playlytics.WithStructuredLogger(playlytics.NewSlogAdapter(slog.Default())),
//	)
func WithStructuredLogger(logger StructuredLogger) ConfigOption {
	return func(c *Config) {
		c.StructuredLogger = logger
	}
}

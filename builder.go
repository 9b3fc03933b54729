package playlytics

import (
	"net/http"
	"time"
)

// Builder constructs a Client fluently. All setters return the builder for
// chaining; Build produces an immutable configured client.
//
// Example:
//
//	client, err := playlytics.NewBuilder(serverKey).
//	    BaseURL("https://ingest.example.com").
//	    AutoFlushInterval(10 * time.Second).
//	    MaxBatchSize(500).
//	    Build()
type Builder struct {
	cfg Config
}

// NewBuilder creates a builder for a client authenticated with serverKey.
func NewBuilder(serverKey string) *Builder {
	return &Builder{cfg: Config{ServerKey: serverKey}}
}

// BaseURL sets the base URL of the Playlytics API.
func (b *Builder) BaseURL(baseURL string) *Builder {
	b.cfg.BaseURL = baseURL
	return b
}

// AutoFlushInterval sets the period of the background flush loop.
func (b *Builder) AutoFlushInterval(interval time.Duration) *Builder {
	b.cfg.AutoFlushInterval = interval
	return b
}

// MaxBatchSize sets the maximum number of events per batch.
func (b *Builder) MaxBatchSize(size int) *Builder {
	b.cfg.MaxBatchSize = size
	return b
}

// EnableAutoFlush enables or disables the background flush loop.
func (b *Builder) EnableAutoFlush(enabled bool) *Builder {
	b.cfg.DisableAutoFlush = !enabled
	return b
}

// HTTPClient sets a custom HTTP client.
func (b *Builder) HTTPClient(client *http.Client) *Builder {
	b.cfg.HTTPClient = client
	return b
}

// Debug enables debug logging.
func (b *Builder) Debug(debug bool) *Builder {
	b.cfg.Debug = debug
	return b
}

// ErrorHandler sets an error callback for background flush failures.
func (b *Builder) ErrorHandler(handler func(error)) *Builder {
	b.cfg.ErrorHandler = handler
	return b
}

// Logger sets a printf-style logger.
func (b *Builder) Logger(logger Logger) *Builder {
	b.cfg.Logger = logger
	return b
}

// StructuredLogger sets a structured logger.
func (b *Builder) StructuredLogger(logger StructuredLogger) *Builder {
	b.cfg.StructuredLogger = logger
	return b
}

// Build validates the configuration and constructs the client.
func (b *Builder) Build() (*Client, error) {
	cfg := b.cfg
	return NewWithConfig(&cfg)
}

package playlytics

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names for configuration.
const (
	// EnvServerKey is the environment variable for the server key.
	EnvServerKey = "PLAYLYTICS_SERVER_KEY"
	// EnvBaseURL is the environment variable for the API base URL.
	EnvBaseURL = "PLAYLYTICS_BASE_URL"
	// EnvAutoFlushInterval is the environment variable for the auto-flush
	// interval in milliseconds.
	EnvAutoFlushInterval = "PLAYLYTICS_AUTO_FLUSH_INTERVAL_MS"
	// EnvMaxBatchSize is the environment variable for the batch size.
	EnvMaxBatchSize = "PLAYLYTICS_MAX_BATCH_SIZE"
	// EnvDisableAutoFlush is the environment variable to disable the
	// background flush loop.
	EnvDisableAutoFlush = "PLAYLYTICS_DISABLE_AUTO_FLUSH"
	// EnvDebug is the environment variable to enable debug mode.
	EnvDebug = "PLAYLYTICS_DEBUG"
)

// NewFromEnv creates a new client using environment variables for
// configuration. It reads PLAYLYTICS_SERVER_KEY and optionally
// PLAYLYTICS_BASE_URL, PLAYLYTICS_AUTO_FLUSH_INTERVAL_MS,
// PLAYLYTICS_MAX_BATCH_SIZE, PLAYLYTICS_DISABLE_AUTO_FLUSH, and
// PLAYLYTICS_DEBUG.
//
// Example:
//
//	client, err := playlytics.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Shutdown(context.Background())
func NewFromEnv(opts ...ConfigOption) (*Client, error) {
	return newFromGetenv(os.Getenv, opts...)
}

// NewFromEnvFile creates a new client from a dotenv-style file. The file is
// read directly; the process environment is neither consulted nor modified.
// Explicit options override file values.
func NewFromEnvFile(path string, opts ...ConfigOption) (*Client, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("playlytics: failed to read env file %s: %w", path, err)
	}
	return newFromGetenv(func(key string) string { return vars[key] }, opts...)
}

// newFromGetenv builds a client from an environment lookup function.
func newFromGetenv(getenv func(string) string, opts ...ConfigOption) (*Client, error) {
	serverKey := getenv(EnvServerKey)
	if serverKey == "" {
		return nil, fmt.Errorf("playlytics: %s environment variable is required", EnvServerKey)
	}

	// Prepend env var options so explicit options can override them
	envOpts := make([]ConfigOption, 0, 5)

	if baseURL := getenv(EnvBaseURL); baseURL != "" {
		envOpts = append(envOpts, WithBaseURL(baseURL))
	}

	if interval := getenv(EnvAutoFlushInterval); interval != "" {
		ms, err := strconv.Atoi(interval)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("playlytics: invalid %s value %q", EnvAutoFlushInterval, interval)
		}
		envOpts = append(envOpts, WithAutoFlushInterval(time.Duration(ms)*time.Millisecond))
	}

	if size := getenv(EnvMaxBatchSize); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("playlytics: invalid %s value %q", EnvMaxBatchSize, size)
		}
		envOpts = append(envOpts, WithMaxBatchSize(n))
	}

	if disable := getenv(EnvDisableAutoFlush); disable == "true" || disable == "1" {
		envOpts = append(envOpts, WithAutoFlush(false))
	}

	if debug := getenv(EnvDebug); debug == "true" || debug == "1" {
		envOpts = append(envOpts, WithDebug(true))
	}

	// Combine env options with explicit options (explicit options take precedence)
	allOpts := append(envOpts, opts...)

	return New(serverKey, allOpts...)
}

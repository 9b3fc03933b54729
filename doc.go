// Package playlytics provides a Go SDK for the Playlytics game analytics platform.
//
// Applications call Track to enqueue structured events; the SDK batches them
// in memory and ships them asynchronously to the Playlytics ingest endpoint.
// Delivery is best-effort: events are held in an unbounded in-memory queue,
// flushed periodically by a background loop and eagerly once a full batch has
// accumulated, and retried on transient failures.
//
// # Quick Start
//
// Create a client and start tracking:
//
//	client, err := playlytics.New(os.Getenv("PLAYLYTICS_SERVER_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Shutdown(context.Background())
//
//	client.Track("level_completed", map[string]any{
//	    "level":   7,
//	    "seconds": 42.5,
//	})
//
// # Configuration
//
// The client can be configured with functional options:
//
//	client, err := playlytics.New(serverKey,
//	    playlytics.WithBaseURL("https://ingest.example.com"),
//	    playlytics.WithMaxBatchSize(500),
//	    playlytics.WithAutoFlushInterval(10*time.Second),
//	)
//
// or with the fluent builder:
//
//	client, err := playlytics.NewBuilder(serverKey).
//	    BaseURL("https://ingest.example.com").
//	    MaxBatchSize(500).
//	    Build()
//
// # Thread Safety
//
// The Client is safe for concurrent use. Track never blocks and never
// returns an error; flush failures are surfaced through the configured
// error handler or logger.
//
// # Event Delivery Guarantees
//
// Delivery is best-effort. Events are not persisted across process
// restarts. A batch that fails with a retryable status (408, 429, 500,
// 502, 503, 504 or a connection failure) is returned to the head of the
// queue in its original order; a batch rejected with any other status is
// dropped. Shutdown makes up to three final flush attempts before giving
// up on whatever remains in the queue.
package playlytics

package playlyticstest

import (
	"context"
	"time"

	playlytics "github.com/playlytics/playlytics-go"
)

// TestingT is an interface that matches *testing.T and *testing.B.
type TestingT interface {
	Fatalf(format string, args ...any)
	Cleanup(func())
	Helper()
}

// TestServerKey is the default test server key.
const TestServerKey = "srv-test-key"

// NewTestClient creates a client wired to a MockServer. Auto-flush is
// disabled and the batch size is large so tests control exactly when
// network calls happen. Both are cleaned up when the test ends.
func NewTestClient(t TestingT) (*playlytics.Client, *MockServer) {
	t.Helper()
	return NewTestClientWithOptions(t)
}

// NewTestClientWithOptions creates a test client with extra options applied
// on top of the test defaults.
func NewTestClientWithOptions(t TestingT, opts ...playlytics.ConfigOption) (*playlytics.Client, *MockServer) {
	t.Helper()

	server := NewMockServer()

	baseOpts := []playlytics.ConfigOption{
		playlytics.WithBaseURL(server.URL),
		playlytics.WithAutoFlush(false),
		playlytics.WithMaxBatchSize(1000),
		playlytics.WithTimeout(5 * time.Second),
	}

	client, err := playlytics.New(TestServerKey, append(baseOpts, opts...)...)
	if err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}

	t.Cleanup(func() {
		client.Shutdown(context.Background())
		server.Close()
	})

	return client, server
}

// Package playlyticstest provides test helpers for the Playlytics SDK.
//
// It offers an in-memory MockServer that records ingested batches and
// experiment evaluations without real network calls, plus NewTestClient
// for one-line client setup in tests:
//
//	func TestMyGame(t *testing.T) {
//	    client, server := playlyticstest.NewTestClient(t)
//
//	    client.Track("match_started", map[string]any{"mode": "ranked"})
//	    if err := client.Flush(context.Background()); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if server.EventCount() != 1 {
//	        t.Errorf("EventCount() = %d, want 1", server.EventCount())
//	    }
//	}
package playlyticstest

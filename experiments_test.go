package playlytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEvaluateExperiment(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   bool
	}{
		{"enrolled", http.StatusOK, `{"inExperiment":true}`, true},
		{"not enrolled", http.StatusOK, `{"inExperiment":false}`, false},
		{"server error yields false", http.StatusInternalServerError, `{"error":"boom"}`, false},
		{"not found yields false", http.StatusNotFound, ``, false},
		{"undecodable body yields false", http.StatusOK, `not json`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newFlushTestClient(t, server.URL)

			got := client.EvaluateExperiment(context.Background(), "exp-1", "")
			if got != tt.want {
				t.Errorf("EvaluateExperiment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateExperimentRequestShape(t *testing.T) {
	type recorded struct {
		path  string
		query string
	}
	got := make(chan recorded, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- recorded{path: r.URL.Path, query: r.URL.Query().Get("playerUUID")}
		json.NewEncoder(w).Encode(map[string]bool{"inExperiment": true})
	}))
	defer server.Close()

	client := newFlushTestClient(t, server.URL)

	if !client.EvaluateExperiment(context.Background(), "double-xp", "player-42") {
		t.Error("EvaluateExperiment should return true")
	}

	rec := <-got
	if rec.path != "/experiments/srv-test-key/double-xp/evaluate" {
		t.Errorf("path = %q, want /experiments/srv-test-key/double-xp/evaluate", rec.path)
	}
	if rec.query != "player-42" {
		t.Errorf("playerUUID = %q, want player-42", rec.query)
	}
}

func TestEvaluateExperimentOmitsEmptyPlayerUUID(t *testing.T) {
	queries := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries <- r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]bool{"inExperiment": true})
	}))
	defer server.Close()

	client := newFlushTestClient(t, server.URL)
	client.EvaluateExperiment(context.Background(), "exp-1", "")

	if q := <-queries; q != "" {
		t.Errorf("query = %q, want no query string for empty playerUUID", q)
	}
}

func TestEvaluateExperimentTransportFailureYieldsFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := newFlushTestClient(t, serverURL)

	if client.EvaluateExperiment(context.Background(), "exp-1", "player-42") {
		t.Error("EvaluateExperiment should return false on transport failure")
	}
}

func TestEvaluateExperimentAfterShutdown(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]bool{"inExperiment": true})
	}))
	defer server.Close()

	client, err := New("srv-test-key", WithBaseURL(server.URL), WithAutoFlush(false))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	client.Shutdown(context.Background())

	if client.EvaluateExperiment(context.Background(), "exp-1", "") {
		t.Error("EvaluateExperiment should return false after shutdown")
	}
	if calls != 0 {
		t.Errorf("server received %d calls after shutdown, want 0", calls)
	}
}

func TestNewPlayerUUID(t *testing.T) {
	a := NewPlayerUUID()
	b := NewPlayerUUID()

	if a == "" || b == "" {
		t.Fatal("NewPlayerUUID should not return empty strings")
	}
	if a == b {
		t.Error("NewPlayerUUID should return unique values")
	}
	if len(a) != 36 {
		t.Errorf("NewPlayerUUID() = %q, want canonical 36-char UUID", a)
	}
}

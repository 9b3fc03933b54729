package playlyticstest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	playlytics "github.com/playlytics/playlytics-go"
)

// MockServer is a test HTTP server that implements the Playlytics ingest
// and experiments endpoints and records requests for verification.
type MockServer struct {
	*httptest.Server

	mu          sync.Mutex
	batches     [][]playlytics.Event
	evaluations []*RecordedEvaluation

	// IngestResponseFunc allows scripting ingest responses. If nil, the
	// server returns 200 with an empty body.
	IngestResponseFunc func(r *http.Request) (int, any)

	// InExperiment is returned by the experiments evaluate endpoint.
	InExperiment bool

	// ExperimentStatus overrides the evaluate endpoint status when
	// non-zero.
	ExperimentStatus int
}

// RecordedEvaluation is one call to the experiments evaluate endpoint.
type RecordedEvaluation struct {
	ExperimentID string
	PlayerUUID   string
}

// NewMockServer creates a new mock server for testing.
func NewMockServer() *MockServer {
	ms := &MockServer{}

	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/analytics/"):
			ms.handleIngest(w, r)
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/experiments/"):
			ms.handleEvaluate(w, r)
		default:
			http.NotFound(w, r)
		}
	}))

	return ms
}

func (ms *MockServer) handleIngest(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	var batch []playlytics.Event
	json.Unmarshal(body, &batch)

	ms.mu.Lock()
	ms.batches = append(ms.batches, batch)
	responseFunc := ms.IngestResponseFunc
	ms.mu.Unlock()

	if responseFunc == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	status, response := responseFunc(r)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if response != nil {
		json.NewEncoder(w).Encode(response)
	}
}

func (ms *MockServer) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	// Path: /experiments/{serverKey}/{experimentID}/evaluate
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	experimentID := ""
	if len(parts) >= 3 {
		experimentID = parts[2]
	}

	ms.mu.Lock()
	ms.evaluations = append(ms.evaluations, &RecordedEvaluation{
		ExperimentID: experimentID,
		PlayerUUID:   r.URL.Query().Get("playerUUID"),
	})
	status := ms.ExperimentStatus
	inExperiment := ms.InExperiment
	ms.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]bool{"inExperiment": inExperiment})
}

// Batches returns all ingested batches in arrival order.
func (ms *MockServer) Batches() [][]playlytics.Event {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([][]playlytics.Event{}, ms.batches...)
}

// BatchCount returns the number of ingest requests received.
func (ms *MockServer) BatchCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.batches)
}

// EventCount returns the total number of events across all batches.
func (ms *MockServer) EventCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	total := 0
	for _, batch := range ms.batches {
		total += len(batch)
	}
	return total
}

// Evaluations returns all recorded experiment evaluations.
func (ms *MockServer) Evaluations() []*RecordedEvaluation {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]*RecordedEvaluation{}, ms.evaluations...)
}

// Reset clears all recorded batches and evaluations.
func (ms *MockServer) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.batches = nil
	ms.evaluations = nil
}

// Response scenarios

// RespondWithSuccess configures the server to accept all batches.
func (ms *MockServer) RespondWithSuccess() {
	ms.setIngestResponse(nil)
}

// RespondWithStatus configures the server to reject all batches with the
// given status and an empty body.
func (ms *MockServer) RespondWithStatus(status int) {
	ms.setIngestResponse(func(r *http.Request) (int, any) {
		return status, nil
	})
}

// RespondWithError configures the server to reject all batches with the
// given status and a structured error body.
func (ms *MockServer) RespondWithError(status int, message string, details ...map[string]string) {
	body := map[string]any{"error": message}
	if len(details) > 0 {
		body["details"] = details
	}
	ms.setIngestResponse(func(r *http.Request) (int, any) {
		return status, body
	})
}

func (ms *MockServer) setIngestResponse(fn func(r *http.Request) (int, any)) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.IngestResponseFunc = fn
}

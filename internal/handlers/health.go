package handlers

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

// HealthResponse is the liveness body. Timestamp is the UTC instant the
// probe was answered.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles GET /health. Always 200: the process answering at all is
// the signal.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

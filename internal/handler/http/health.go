// Package http provides HTTP handlers and middleware for the dashboard
// service: dashboard panel endpoints, health checks, metrics collection,
// and request middleware.
package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// Pinger checks reachability of the upstream spreadsheet endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerReporter exposes the state of the upstream fetch circuit breaker.
type BreakerReporter interface {
	BreakerState() string
}

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthHandler reports detailed health status. It checks the upstream
// spreadsheet endpoint and reports the fetch circuit breaker state.
type HealthHandler struct {
	Upstream Pinger
	Breaker  BreakerReporter
	Version  string
}

// ServeHTTP returns 200 OK when all checks pass, 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	allHealthy := true

	// 上流シートへの到達性チェック
	if h.Upstream != nil {
		if err := h.Upstream.Ping(ctx); err != nil {
			checks["upstream"] = CheckStatus{Status: "unhealthy", Message: err.Error()}
			allHealthy = false
		} else {
			checks["upstream"] = CheckStatus{Status: "healthy"}
		}
	} else {
		checks["upstream"] = CheckStatus{Status: "unhealthy", Message: "not configured"}
		allHealthy = false
	}

	// ブレーカー状態は情報提供のみで、open でも unhealthy にはしない
	if h.Breaker != nil {
		checks["circuit_breaker"] = CheckStatus{
			Status:  "healthy",
			Details: map[string]interface{}{"state": h.Breaker.BreakerState()},
		}
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("health: failed to encode response: %v", err)
	}
}

// ReadyHandler handles readiness probe requests: the service is ready when
// the upstream spreadsheet endpoint is reachable.
type ReadyHandler struct {
	Upstream Pinger
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.Upstream == nil {
		http.Error(w, "upstream not configured", http.StatusServiceUnavailable)
		return
	}

	if err := h.Upstream.Ping(ctx); err != nil {
		http.Error(w, "upstream not ready: "+err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		log.Printf("ready: failed to write response: %v", err)
	}
}

// LiveHandler handles liveness probe requests with a trivial 200 response.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		log.Printf("alive: failed to write response: %v", err)
	}
}

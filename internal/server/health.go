package server

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthChecker provides health check endpoints for Kubernetes probes.
type HealthChecker struct {
	// ready indicates whether the server is ready to receive traffic
	ready atomic.Bool
	// serverContext provides access to dependencies for health checks
	serverContext *ServerContext
	// startTime tracks when the server started
	startTime time.Time
}

// NewHealthChecker creates a new HealthChecker.
func NewHealthChecker(sc *ServerContext) *HealthChecker {
	h := &HealthChecker{
		serverContext: sc,
		startTime:     time.Now(),
	}
	// Server starts as ready by default
	h.ready.Store(true)
	return h
}

// SetReady sets the readiness state of the server.
func (h *HealthChecker) SetReady(ready bool) {
	h.ready.Store(ready)
}

// IsReady returns whether the server is ready to receive traffic.
func (h *HealthChecker) IsReady() bool {
	return h.ready.Load()
}

// HealthResponse represents the JSON response for health endpoints.
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version,omitempty"`
	Uptime  string            `json:"uptime,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// RegisterHealthEndpoints registers /healthz and /readyz on the given mux.
func (h *HealthChecker) RegisterHealthEndpoints(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", h.handleHealthz)
	mux.HandleFunc("/readyz", h.handleReadyz)
}

// handleHealthz reports liveness. The server is alive as long as it can
// answer; the execution backends are advisory and reported as checks.
func (h *HealthChecker) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	prereqs := h.serverContext.Prereqs()

	checks := map[string]string{
		"kubectl":    prereqs.KubectlDetail,
		"kubeconfig": prereqs.KubeconfigDetail,
	}

	resp := HealthResponse{
		Status:  "ok",
		Version: h.serverContext.Config().Version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		Checks:  checks,
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleReadyz reports readiness for traffic.
func (h *HealthChecker) handleReadyz(w http.ResponseWriter, _ *http.Request) {
	if !h.IsReady() || h.serverContext.IsShutdown() {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "not ready"})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ready"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

package driver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/alorle/nexum-portal/internal/application"
	"github.com/alorle/nexum-portal/internal/channel"
	"github.com/alorle/nexum-portal/internal/probe"
)

// ProbeHTTPHandler handles HTTP requests for probe results and quality scores.
type ProbeHTTPHandler struct {
	service *application.ProbeService
}

// NewProbeHTTPHandler creates a new HTTP handler for probes.
func NewProbeHTTPHandler(service *application.ProbeService) *ProbeHTTPHandler {
	return &ProbeHTTPHandler{service: service}
}

// probeResultResponse represents a probe result in JSON format.
type probeResultResponse struct {
	ChannelID      string `json:"channel_id"`
	SessionID      string `json:"session_id,omitempty"`
	Timestamp      string `json:"timestamp"`
	Reachable      bool   `json:"reachable"`
	StartupLatency int64  `json:"startup_latency_ms"`
	State          string `json:"state"`
	Message        string `json:"message,omitempty"`
}

// qualityResponse represents a channel's quality score in JSON format.
type qualityResponse struct {
	ChannelID         string  `json:"channel_id"`
	Score             float64 `json:"score"`
	TotalProbes       int     `json:"total_probes"`
	ReachableProbes   int     `json:"reachable_probes"`
	UptimeRatio       float64 `json:"uptime_ratio"`
	AvgStartupLatency float64 `json:"avg_startup_latency_ms"`
	LatencyStdDev     float64 `json:"latency_std_dev_ms"`
}

// ServeHTTP routes the request based on path prefix.
func (h *ProbeHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	// POST /probes/run - trigger immediate probe cycle
	if r.Method == http.MethodPost && path == "/probes/run" {
		h.handleRun(w, r)
		return
	}

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	switch {
	// GET /quality
	case path == "/quality" || path == "/quality/":
		h.handleScores(w, r)

	// GET /quality/{id}
	case strings.HasPrefix(path, "/quality/"):
		id, err := bindID(strings.TrimPrefix(path, "/quality/"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.handleQuality(w, r, id)

	// GET /probes/{id} - probe history
	case strings.HasPrefix(path, "/probes/"):
		id, err := bindID(strings.TrimPrefix(path, "/probes/"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.handleHistory(w, r, id)

	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

// handleHistory handles GET /probes/{id}
func (h *ProbeHTTPHandler) handleHistory(w http.ResponseWriter, r *http.Request, id string) {
	results, err := h.service.GetProbeHistory(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]probeResultResponse, len(results))
	for i, res := range results {
		response[i] = toProbeResultResponse(res)
	}

	writeJSON(w, http.StatusOK, response)
}

// handleQuality handles GET /quality/{id}
func (h *ProbeHTTPHandler) handleQuality(w http.ResponseWriter, r *http.Request, id string) {
	q, err := h.service.GetQuality(r.Context(), id)
	if err != nil {
		if errors.Is(err, channel.ErrChannelNotFound) || errors.Is(err, probe.ErrNoProbeData) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toQualityResponse(q))
}

// handleScores handles GET /quality
func (h *ProbeHTTPHandler) handleScores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.service.GetQualityScores(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]qualityResponse, len(scores))
	for i, q := range scores {
		response[i] = toQualityResponse(q)
	}

	writeJSON(w, http.StatusOK, response)
}

// handleRun handles POST /probes/run
func (h *ProbeHTTPHandler) handleRun(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ProbeAllChannels(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "probe cycle failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
}

func toProbeResultResponse(r probe.Result) probeResultResponse {
	return probeResultResponse{
		ChannelID:      r.ChannelID(),
		SessionID:      r.SessionID(),
		Timestamp:      r.Timestamp().Format(time.RFC3339),
		Reachable:      r.Reachable(),
		StartupLatency: r.StartupLatency().Milliseconds(),
		State:          string(r.State()),
		Message:        r.Message(),
	}
}

func toQualityResponse(q application.ChannelQuality) qualityResponse {
	return qualityResponse{
		ChannelID:         q.ChannelID,
		Score:             q.Score,
		TotalProbes:       q.Summary.TotalProbes(),
		ReachableProbes:   q.Summary.ReachableProbes(),
		UptimeRatio:       q.Summary.UptimeRatio(),
		AvgStartupLatency: q.Summary.AvgStartupLatency(),
		LatencyStdDev:     q.Summary.LatencyStdDev(),
	}
}

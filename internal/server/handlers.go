package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/insightdash/insight-api/internal/completion"
	"github.com/insightdash/insight-api/internal/models"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Insight Dashboard API",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(s.pipeline.GetMetrics()))
}

func (s *Server) handleRunFlow(w http.ResponseWriter, r *http.Request) {
	var req models.RunFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if len(req.Platforms) == 0 {
		writeError(w, http.StatusBadRequest, "platforms must name at least one platform")
		return
	}
	if req.Preset == "" {
		req.Preset = s.config.Preset
	}
	if req.Tone == "" {
		req.Tone = s.config.Tone
	}

	logrus.Infof("Run-flow request: platforms=%v preset=%s tone=%s dateRange=%s",
		req.Platforms, req.Preset, req.Tone, req.DateRange)

	response, err := s.pipeline.Run(r.Context(), req)
	if err != nil {
		if errors.Is(err, completion.ErrMissingAPIKey) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		logrus.Errorf("Insight pipeline failed: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error processing request: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	if s.refresher == nil {
		writeError(w, http.StatusNotFound, "scheduled refresh is not enabled")
		return
	}

	latest, refreshedAt, ok := s.refresher.Latest()
	if !ok {
		writeError(w, http.StatusNotFound, "no refreshed insights available yet")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"refreshedAt": refreshedAt.Format(time.RFC3339),
		"response":    latest,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

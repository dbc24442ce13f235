package mockdata

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/insightdash/insight-api/internal/models"
)

// Runner serves generated mock insights through the same contract as
// the real pipeline
type Runner struct {
	mu        sync.RWMutex
	totalRuns int
	lastRun   time.Time
}

// NewRunner creates a mock insight runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run returns mock insights for the request
func (r *Runner) Run(ctx context.Context, req models.RunFlowRequest) (*models.InsightResponse, error) {
	r.mu.Lock()
	r.totalRuns++
	r.lastRun = time.Now()
	r.mu.Unlock()

	return Generate(req.Platforms, req.Preset, req.Tone, req.DateRange), nil
}

// GetMetrics returns current metrics as JSON
func (r *Runner) GetMetrics() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, _ := json.MarshalIndent(map[string]interface{}{
		"mode":       "mock",
		"total_runs": r.totalRuns,
		"last_run":   r.lastRun,
	}, "", "  ")
	return string(data)
}

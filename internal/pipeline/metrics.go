package pipeline

import (
	"encoding/json"
	"time"

	"github.com/insightdash/insight-api/internal/models"
)

// Metrics holds in-process counters for the /metrics endpoint
type Metrics struct {
	TotalRuns        int            `json:"total_runs"`
	LastRun          time.Time      `json:"last_run"`
	LastRunDuration  string         `json:"last_run_duration"`
	PlatformInsights map[string]int `json:"platform_insights"`
	DegradedBundles  int            `json:"degraded_bundles"`
}

func newMetrics() *Metrics {
	return &Metrics{
		PlatformInsights: make(map[string]int),
	}
}

func (p *Pipeline) updateMetrics(response *models.InsightResponse, bundles map[string]models.AnalysisBundle, duration time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.metrics.TotalRuns++
	p.metrics.LastRun = time.Now()
	p.metrics.LastRunDuration = duration.String()

	p.metrics.PlatformInsights = make(map[string]int)
	for platform, data := range response.Platforms {
		p.metrics.PlatformInsights[platform] = len(data.Insights)
	}

	p.metrics.DegradedBundles = 0
	for _, bundle := range bundles {
		if bundle.Degraded {
			p.metrics.DegradedBundles++
		}
	}
}

// GetMetrics returns current metrics as JSON
func (p *Pipeline) GetMetrics() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	data, _ := json.MarshalIndent(p.metrics, "", "  ")
	return string(data)
}

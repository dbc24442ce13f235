package refresher

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/insightdash/insight-api/internal/config"
	"github.com/insightdash/insight-api/internal/models"
)

const refreshTimeout = 5 * time.Minute

// Runner is the pipeline contract consumed by the refresher
type Runner interface {
	Run(ctx context.Context, req models.RunFlowRequest) (*models.InsightResponse, error)
}

// Service periodically re-runs the insight pipeline for the configured
// default platforms and keeps the latest response in memory, backing
// the dashboard's realtime view
type Service struct {
	config   *config.Config
	pipeline Runner
	cron     *cron.Cron

	mu          sync.RWMutex
	latest      *models.InsightResponse
	refreshedAt time.Time
}

// NewService creates a new refresh service
func NewService(cfg *config.Config, pipeline Runner) *Service {
	return &Service{
		config:   cfg,
		pipeline: pipeline,
		cron:     cron.New(cron.WithSeconds()),
	}
}

// Start begins the scheduled refresh
func (s *Service) Start() error {
	_, err := s.cron.AddFunc(s.config.RefreshSchedule, func() {
		logrus.Info("Starting scheduled insight refresh")
		if err := s.Refresh(); err != nil {
			logrus.Errorf("Scheduled insight refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logrus.Infof("Insight refresher started with schedule %q", s.config.RefreshSchedule)
	return nil
}

// Stop stops the scheduled refresh
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		logrus.Info("Insight refresher stopped")
	}
}

// Refresh runs the pipeline once with the configured defaults and
// caches the response
func (s *Service) Refresh() error {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	response, err := s.pipeline.Run(ctx, models.RunFlowRequest{
		Platforms: s.config.Platforms,
		Preset:    s.config.Preset,
		Tone:      s.config.Tone,
		Keywords:  s.config.Keywords,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.latest = response
	s.refreshedAt = time.Now()
	s.mu.Unlock()

	logrus.Infof("Insight refresh completed: %d posts across %d platforms",
		response.Summary.TotalPosts, len(response.Platforms))
	return nil
}

// Latest returns the most recent refreshed response, or false when no
// refresh has completed yet
func (s *Service) Latest() (*models.InsightResponse, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return nil, time.Time{}, false
	}
	return s.latest, s.refreshedAt, true
}

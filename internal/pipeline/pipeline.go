package pipeline

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/insightdash/insight-api/internal/analyzer"
	"github.com/insightdash/insight-api/internal/completion"
	"github.com/insightdash/insight-api/internal/composer"
	"github.com/insightdash/insight-api/internal/config"
	"github.com/insightdash/insight-api/internal/models"
	"github.com/insightdash/insight-api/internal/sources"
)

// ContentFinder locates the content source for a platform id.
// *sources.Registry is the production implementation.
type ContentFinder interface {
	ForPlatform(platform string) sources.Source
}

// Pipeline sequences content scraping, analysis, and composition into
// the insight response served to the dashboard
type Pipeline struct {
	config    *config.Config
	completer completion.Completer
	analyzer  *analyzer.Analyzer
	registry  ContentFinder
	metrics   *Metrics
	mu        sync.RWMutex
}

// New creates a new insight pipeline
func New(cfg *config.Config, completer completion.Completer, registry ContentFinder) *Pipeline {
	return &Pipeline{
		config:    cfg,
		completer: completer,
		analyzer:  analyzer.NewAnalyzer(completer, cfg.Model, cfg.MaxTokens),
		registry:  registry,
		metrics:   newMetrics(),
	}
}

// Run executes the full pipeline for one request: scrape the requested
// platforms, analyze each platform's content, compose the summary and
// charts, and convert to the response shape. A missing completion
// credential aborts the run before any scraping happens.
func (p *Pipeline) Run(ctx context.Context, req models.RunFlowRequest) (*models.InsightResponse, error) {
	if !p.completer.Configured() {
		return nil, completion.ErrMissingAPIKey
	}

	start := time.Now()

	keywords := req.Keywords
	if len(keywords) == 0 {
		keywords = p.config.Keywords
	}
	tone := req.Tone
	if tone == "" {
		tone = p.config.Tone
	}

	logrus.Infof("Scraping content from platforms: %v", req.Platforms)
	platformContent := p.scrapePlatforms(ctx, req.Platforms, keywords, req.DateRange)

	logrus.Info("Analyzing scraped content")
	bundles := p.analyzer.Analyze(ctx, platformContent, tone)

	logrus.Infof("Composing insights with tone: %s and preset: %s", tone, req.Preset)
	composed := composer.Compose(bundles, req.Platforms)

	response := formatResponse(composed)

	p.updateMetrics(response, bundles, time.Since(start))
	logrus.Infof("Insight pipeline completed in %v", time.Since(start))

	return response, nil
}

// scrapePlatforms fetches content for every requested platform.
// Platforms are independent, so they are scraped concurrently; results
// are reassembled in request order to keep downstream tie-breaking
// deterministic. Unknown platforms yield an empty item list.
func (p *Pipeline) scrapePlatforms(ctx context.Context, platforms, keywords []string, dateRange string) map[string][]models.ContentItem {
	results := make([][]models.ContentItem, len(platforms))

	var wg sync.WaitGroup
	for i, platform := range platforms {
		src := p.registry.ForPlatform(platform)
		if src == nil {
			logrus.Warnf("Unsupported platform: %s", platform)
			continue
		}

		wg.Add(1)
		go func(i int, src sources.Source) {
			defer wg.Done()

			items := src.FetchContent(ctx, keywords, dateRange)
			logrus.Infof("Fetched %d content items from %s", len(items), src.GetName())
			results[i] = items
		}(i, src)
	}
	wg.Wait()

	platformContent := make(map[string][]models.ContentItem, len(platforms))
	for i, platform := range platforms {
		if results[i] == nil {
			platformContent[platform] = []models.ContentItem{}
			continue
		}
		platformContent[platform] = results[i]
	}

	return platformContent
}

// formatResponse converts the composed result into the external
// response shape, defaulting missing insight fields and capitalizing
// sentiment labels
func formatResponse(composed composer.Result) *models.InsightResponse {
	platforms := make(map[string]models.PlatformData, len(composed.Platforms))

	for platform, data := range composed.Platforms {
		insights := make([]models.Insight, 0, len(data.Insights))

		for _, insight := range data.Insights {
			if insight.Title == "" {
				insight.Title = "Untitled Insight"
			}
			if insight.Date == "" {
				insight.Date = "today"
			}
			if insight.Sentiment == "" {
				insight.Sentiment = "neutral"
			}
			insight.Sentiment = capitalize(insight.Sentiment)

			insights = append(insights, insight)
		}

		platforms[platform] = models.PlatformData{
			Insights: insights,
			Charts:   data.Charts,
		}
	}

	return &models.InsightResponse{
		Summary:   composed.Summary,
		Platforms: platforms,
	}
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

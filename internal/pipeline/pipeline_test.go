package pipeline

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdash/insight-api/internal/completion"
	"github.com/insightdash/insight-api/internal/config"
	"github.com/insightdash/insight-api/internal/models"
	"github.com/insightdash/insight-api/internal/sources"
)

// countingSource records FetchContent invocations
type countingSource struct {
	name  string
	items []models.ContentItem
	calls int
}

func (s *countingSource) GetName() string { return s.name }
func (s *countingSource) IsEnabled() bool { return true }

func (s *countingSource) FetchContent(ctx context.Context, keywords []string, dateRange string) []models.ContentItem {
	s.calls++
	return s.items
}

type stubRegistry struct {
	byPlatform map[string]sources.Source
}

func (r *stubRegistry) ForPlatform(platform string) sources.Source {
	return r.byPlatform[platform]
}

// stubCompleter returns a fixed completion
type stubCompleter struct {
	configured bool
	response   string
}

func (c *stubCompleter) Configured() bool { return c.configured }

func (c *stubCompleter) Complete(ctx context.Context, prompt string, temperature float32, maxTokens int, model string) (string, error) {
	return c.response, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Model:     "llama3-8b-8192",
		MaxTokens: 1000,
		Keywords:  []string{"technology"},
		Tone:      "professional",
		Preset:    "standard",
	}
}

func TestRun_MissingCredentialAbortsBeforeScraping(t *testing.T) {
	src := &countingSource{name: "reddit"}
	registry := &stubRegistry{byPlatform: map[string]sources.Source{"reddit": src}}

	p := New(testConfig(), &stubCompleter{configured: false}, registry)

	_, err := p.Run(context.Background(), models.RunFlowRequest{
		Platforms: []string{"reddit"},
	})

	require.ErrorIs(t, err, completion.ErrMissingAPIKey)
	assert.Equal(t, 0, src.calls, "no content source may be invoked without a credential")
}

func TestRun_FullPipelineShape(t *testing.T) {
	src := &countingSource{
		name: "reddit",
		items: []models.ContentItem{
			{Platform: "reddit", Title: "Post", Content: "text", Author: "a"},
		},
	}
	registry := &stubRegistry{byPlatform: map[string]sources.Source{"reddit": src}}

	completer := &stubCompleter{
		configured: true,
		// Missing title and date on the second insight exercises the
		// response-shape defaults.
		response: `Sure! {
			"insights": [
				{"title": "Finding", "summary": "s", "sentiment": "positive", "date": "today"},
				{"summary": "untitled one", "sentiment": "negative"}
			],
			"sentiment": "positive",
			"key_themes": ["theme"],
			"engagement_indicators": ["indicator"]
		} Hope that helps.`,
	}

	p := New(testConfig(), completer, registry)

	response, err := p.Run(context.Background(), models.RunFlowRequest{
		Platforms: []string{"reddit"},
		Preset:    "standard",
		Tone:      "professional",
		DateRange: "last 7 days",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)

	require.Contains(t, response.Platforms, "reddit")
	insights := response.Platforms["reddit"].Insights
	require.Len(t, insights, 2)

	assert.Equal(t, "Finding", insights[0].Title)
	assert.Equal(t, "Positive", insights[0].Sentiment)

	assert.Equal(t, "Untitled Insight", insights[1].Title)
	assert.Equal(t, "today", insights[1].Date)
	assert.Equal(t, "Negative", insights[1].Sentiment)

	assert.Equal(t, 2, response.Summary.TotalPosts)
	assert.Equal(t, "Reddit", response.Summary.TopPlatform)

	assert.Len(t, response.Platforms["reddit"].Charts.SentimentTrend, 7)
	assert.Len(t, response.Platforms["reddit"].Charts.Engagement, 7)
}

func TestRun_UnknownPlatformYieldsEmptyRecord(t *testing.T) {
	registry := &stubRegistry{byPlatform: map[string]sources.Source{}}
	completer := &stubCompleter{configured: true, response: "{}"}

	p := New(testConfig(), completer, registry)

	response, err := p.Run(context.Background(), models.RunFlowRequest{
		Platforms: []string{"myspace"},
	})
	require.NoError(t, err)

	require.Contains(t, response.Platforms, "myspace")
	assert.Empty(t, response.Platforms["myspace"].Insights)
	assert.Len(t, response.Platforms["myspace"].Charts.SentimentTrend, 7)
	assert.Equal(t, 0, response.Summary.TotalPosts)
}

func TestRun_DefaultKeywordsFromConfig(t *testing.T) {
	var gotKeywords []string
	src := &recordingSource{record: func(keywords []string) { gotKeywords = keywords }}
	registry := &stubRegistry{byPlatform: map[string]sources.Source{"reddit": src}}

	p := New(testConfig(), &stubCompleter{configured: true, response: "{}"}, registry)

	_, err := p.Run(context.Background(), models.RunFlowRequest{Platforms: []string{"reddit"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"technology"}, gotKeywords)

	_, err = p.Run(context.Background(), models.RunFlowRequest{
		Platforms: []string{"reddit"},
		Keywords:  []string{"golang"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"golang"}, gotKeywords)
}

type recordingSource struct {
	record func(keywords []string)
}

func (s *recordingSource) GetName() string { return "reddit" }
func (s *recordingSource) IsEnabled() bool { return true }

func (s *recordingSource) FetchContent(ctx context.Context, keywords []string, dateRange string) []models.ContentItem {
	s.record(keywords)
	return nil
}

func TestGetMetrics(t *testing.T) {
	src := &countingSource{
		name:  "reddit",
		items: []models.ContentItem{{Platform: "reddit", Content: "text"}},
	}
	registry := &stubRegistry{byPlatform: map[string]sources.Source{"reddit": src}}
	completer := &stubCompleter{
		configured: true,
		response:   `{"insights": [{"title": "One", "summary": "s", "sentiment": "neutral", "date": "today"}], "sentiment": "neutral"}`,
	}

	p := New(testConfig(), completer, registry)

	_, err := p.Run(context.Background(), models.RunFlowRequest{Platforms: []string{"reddit"}})
	require.NoError(t, err)

	var metrics Metrics
	require.NoError(t, json.Unmarshal([]byte(p.GetMetrics()), &metrics))

	assert.Equal(t, 1, metrics.TotalRuns)
	assert.Equal(t, 1, metrics.PlatformInsights["reddit"])
	assert.Equal(t, 0, metrics.DegradedBundles)
	assert.False(t, metrics.LastRun.IsZero())
}

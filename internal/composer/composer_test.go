package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdash/insight-api/internal/models"
)

func bundleWithSentiments(sentiments ...string) models.AnalysisBundle {
	insights := make([]models.Insight, 0, len(sentiments))
	for _, s := range sentiments {
		insights = append(insights, models.Insight{Title: "t", Summary: "s", Date: "today", Sentiment: s})
	}
	return models.AnalysisBundle{
		Insights:             insights,
		Sentiment:            "neutral",
		KeyThemes:            []string{},
		EngagementIndicators: []string{},
	}
}

func TestCompose_TotalPostsIsSumOfInsights(t *testing.T) {
	bundles := map[string]models.AnalysisBundle{
		"reddit": bundleWithSentiments("positive", "negative", "neutral"),
		"x":      bundleWithSentiments("neutral"),
		"web":    bundleWithSentiments(),
	}

	result := Compose(bundles, []string{"reddit", "x", "web"})

	assert.Equal(t, 4, result.Summary.TotalPosts)
}

func TestCompose_DominantSentimentAndTopPlatform(t *testing.T) {
	bundles := map[string]models.AnalysisBundle{
		"reddit": bundleWithSentiments("positive", "positive", "negative"),
		"x":      bundleWithSentiments("neutral"),
	}

	result := Compose(bundles, []string{"reddit", "x"})

	assert.Equal(t, "Positive", result.Summary.DominantSentiment)
	assert.Equal(t, "Reddit", result.Summary.TopPlatform)
}

func TestCompose_TieBreaksFollowInputOrder(t *testing.T) {
	bundles := map[string]models.AnalysisBundle{
		"x":      bundleWithSentiments("positive"),
		"reddit": bundleWithSentiments("negative"),
	}

	// Equal insight counts and a 1-1 sentiment tie: the input order
	// decides topPlatform, the fixed bucket order decides sentiment.
	result := Compose(bundles, []string{"x", "reddit"})
	assert.Equal(t, "X (Twitter)", result.Summary.TopPlatform)
	assert.Equal(t, "Positive", result.Summary.DominantSentiment)

	result = Compose(bundles, []string{"reddit", "x"})
	assert.Equal(t, "Reddit", result.Summary.TopPlatform)
	assert.Equal(t, "Positive", result.Summary.DominantSentiment)
}

func TestCompose_EmptyBundleGetsChartsButNoInsights(t *testing.T) {
	bundles := map[string]models.AnalysisBundle{
		"linkedin": bundleWithSentiments(),
	}

	result := Compose(bundles, []string{"linkedin"})

	data, ok := result.Platforms["linkedin"]
	require.True(t, ok)
	assert.Empty(t, data.Insights)
	assert.Len(t, data.Charts.SentimentTrend, 7)
	assert.Len(t, data.Charts.Engagement, 7)
}

func TestCompose_UnknownSentimentCountsAsNeutral(t *testing.T) {
	bundles := map[string]models.AnalysisBundle{
		"reddit": bundleWithSentiments("mixed", "mixed", "positive"),
	}

	result := Compose(bundles, []string{"reddit"})

	assert.Equal(t, "Neutral", result.Summary.DominantSentiment)
}

func TestCompose_PassesInsightsThroughUnchanged(t *testing.T) {
	insights := []models.Insight{
		{Title: "First", Summary: "a", Date: "today", Sentiment: "positive"},
		{Title: "Second", Summary: "b", Date: "today", Sentiment: "negative"},
	}
	bundles := map[string]models.AnalysisBundle{
		"reddit": {Insights: insights, Sentiment: "positive", KeyThemes: []string{}, EngagementIndicators: []string{}},
	}

	result := Compose(bundles, []string{"reddit"})

	assert.Equal(t, insights, result.Platforms["reddit"].Insights)
}

func TestNormalizeSentiment(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"positive", "Positive"},
		{"Positive", "Positive"},
		{" NEGATIVE ", "Negative"},
		{"neutral", "Neutral"},
		{"mixed", "Neutral"},
		{"", "Neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSentiment(tt.input))
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		platform string
		expected string
	}{
		{"x", "X (Twitter)"},
		{"twitter", "X (Twitter)"},
		{"reddit", "Reddit"},
		{"linkedin", "LinkedIn"},
		{"youtube", "YouTube"},
		{"tiktok", "TikTok"},
		{"web", "Web Articles"},
		{"mastodon", "Mastodon"},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayName(tt.platform))
		})
	}
}

func TestSentimentTrend_ShapeAndRanges(t *testing.T) {
	for _, overall := range []string{"positive", "neutral", "negative", "unexpected"} {
		t.Run(overall, func(t *testing.T) {
			points := SentimentTrend(overall)
			require.Len(t, points, 7)

			for _, p := range points {
				assert.NotEmpty(t, p.Date)
				assert.GreaterOrEqual(t, p.Positive, 30)
				assert.LessOrEqual(t, p.Positive, 70)
				assert.GreaterOrEqual(t, p.Neutral, 20)
				assert.LessOrEqual(t, p.Neutral, 40)
				assert.GreaterOrEqual(t, p.Negative, 5)
				assert.LessOrEqual(t, p.Negative, 50)
			}
		})
	}
}

func TestEngagement_ShapeAndRanges(t *testing.T) {
	points := Engagement()
	require.Len(t, points, 7)

	for _, p := range points {
		assert.NotEmpty(t, p.Date)
		assert.GreaterOrEqual(t, p.Value, 100)
		assert.LessOrEqual(t, p.Value, 500)
	}
}

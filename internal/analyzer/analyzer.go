package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/insightdash/insight-api/internal/completion"
	"github.com/insightdash/insight-api/internal/models"
)

const analysisTemperature = 0.3

// Analyzer turns scraped content into per-platform insight bundles by
// prompting the completion service and parsing its output
type Analyzer struct {
	completer completion.Completer
	model     string
	maxTokens int
}

// NewAnalyzer creates a new content analyzer
func NewAnalyzer(completer completion.Completer, model string, maxTokens int) *Analyzer {
	return &Analyzer{
		completer: completer,
		model:     model,
		maxTokens: maxTokens,
	}
}

// Analyze produces an analysis bundle for every platform in
// platformContent. Platform failures are isolated: a completion error
// or unparsable response for one platform degrades only that
// platform's bundle and never aborts the others.
func (a *Analyzer) Analyze(ctx context.Context, platformContent map[string][]models.ContentItem, tone string) map[string]models.AnalysisBundle {
	results := make(map[string]models.AnalysisBundle, len(platformContent))

	for platform, items := range platformContent {
		if len(items) == 0 {
			logrus.Warnf("No content to analyze for platform: %s", platform)
			results[platform] = emptyBundle()
			continue
		}

		bundle, err := a.analyzePlatform(ctx, platform, items, tone)
		if err != nil {
			logrus.Errorf("Error analyzing content for %s: %v", platform, err)
			results[platform] = errorBundle(platform, err)
			continue
		}

		results[platform] = bundle
	}

	return results
}

func (a *Analyzer) analyzePlatform(ctx context.Context, platform string, items []models.ContentItem, tone string) (models.AnalysisBundle, error) {
	prompt := buildAnalysisPrompt(platform, formatContent(items), tone)

	logrus.Infof("Calling LLM to analyze content for %s", platform)
	response, err := a.completer.Complete(ctx, prompt, analysisTemperature, a.maxTokens, a.model)
	if err != nil {
		return models.AnalysisBundle{}, err
	}

	bundle, err := parseResponse(response)
	if err != nil {
		logrus.Errorf("Error parsing LLM response for %s: %v", platform, err)
		logrus.Debugf("Raw response: %s", response)
		return unstructuredBundle(platform), nil
	}

	return bundle, nil
}

// formatContent renders content items into the text block embedded in
// the analysis prompt. Field order is stable: index, title, author,
// content, url, score, date, separator.
func formatContent(items []models.ContentItem) string {
	var b strings.Builder
	b.WriteString("CONTENT FOR ANALYSIS:\n\n")

	for i, item := range items {
		fmt.Fprintf(&b, "ITEM %d:\n", i+1)

		if item.Title != "" {
			fmt.Fprintf(&b, "Title: %s\n", item.Title)
		}
		if item.Author != "" {
			fmt.Fprintf(&b, "Author: %s\n", item.Author)
		}
		fmt.Fprintf(&b, "Content: %s\n", item.Content)
		if item.URL != "" {
			fmt.Fprintf(&b, "URL: %s\n", item.URL)
		}
		if item.Score != 0 {
			fmt.Fprintf(&b, "Score/Engagement: %d\n", item.Score)
		}
		if item.Date != "" {
			fmt.Fprintf(&b, "Date: %s\n", item.Date)
		}

		b.WriteString("\n---\n\n")
	}

	return b.String()
}

func buildAnalysisPrompt(platform, content, tone string) string {
	display := titleCase(platform)

	return fmt.Sprintf(`You are an expert social media analyst specializing in %s content.
Analyze the following %s content and generate insights in a %s tone.

%s

Analyze this content and provide:
1. A JSON object with the following structure:
{
  "insights": [
    {
      "title": "Insightful title about a specific finding",
      "summary": "2-3 sentence explanation in a %s tone",
      "sentiment": "positive/neutral/negative",
      "date": "today"
    }
  ],
  "sentiment": "overall sentiment (positive/neutral/negative)",
  "key_themes": ["theme1", "theme2", "theme3"],
  "engagement_indicators": ["indicator1", "indicator2"]
}
Include 3-5 insights total.

Make sure the insights are specific, data-driven, and actionable. The tone should be %s.
IMPORTANT: Return ONLY the JSON object with no additional text.`, display, display, tone, content, tone, tone)
}

func emptyBundle() models.AnalysisBundle {
	return models.AnalysisBundle{
		Insights:             []models.Insight{},
		Sentiment:            "neutral",
		KeyThemes:            []string{},
		EngagementIndicators: []string{},
	}
}

// errorBundle is the degraded bundle substituted when the completion
// call itself fails
func errorBundle(platform string, err error) models.AnalysisBundle {
	return models.AnalysisBundle{
		Insights: []models.Insight{{
			Title:     fmt.Sprintf("Error Analyzing %s Content", titleCase(platform)),
			Summary:   fmt.Sprintf("An error occurred while analyzing content: %v", err),
			Sentiment: "neutral",
			Date:      "today",
		}},
		Sentiment:            "neutral",
		KeyThemes:            []string{},
		EngagementIndicators: []string{},
		Degraded:             true,
		DegradedReason:       err.Error(),
	}
}

// unstructuredBundle is the degraded bundle substituted when the
// completion text could not be parsed
func unstructuredBundle(platform string) models.AnalysisBundle {
	return models.AnalysisBundle{
		Insights: []models.Insight{{
			Title:     fmt.Sprintf("%s Content Analysis", titleCase(platform)),
			Summary:   "The content was analyzed but the results could not be properly structured.",
			Sentiment: "neutral",
			Date:      "today",
		}},
		Sentiment:            "neutral",
		KeyThemes:            []string{},
		EngagementIndicators: []string{},
		Degraded:             true,
		DegradedReason:       "unparsable completion response",
	}
}

// titleCase capitalizes the first letter of each space-separated word
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

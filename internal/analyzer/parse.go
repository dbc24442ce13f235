package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/insightdash/insight-api/internal/models"
)

// llmAnalysis mirrors the JSON contract the analysis prompt asks the
// model to follow
type llmAnalysis struct {
	Insights             []models.Insight `json:"insights"`
	Sentiment            string           `json:"sentiment"`
	KeyThemes            []string         `json:"key_themes"`
	EngagementIndicators []string         `json:"engagement_indicators"`
}

// ExtractJSON isolates the JSON object embedded in free-form completion
// text by taking the substring from the first '{' to the last '}'.
// Completion APIs routinely wrap the object in prose or markdown
// fences; this heuristic tolerates that. Known limitation: it picks the
// wrong span when stray braces appear outside the intended object.
func ExtractJSON(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")

	if start < 0 || end <= start {
		return "", fmt.Errorf("could not extract JSON from LLM response")
	}

	return raw[start : end+1], nil
}

// parseResponse parses completion text into an analysis bundle. Keys
// the model omitted are filled with their empty defaults rather than
// treated as errors.
func parseResponse(raw string) (models.AnalysisBundle, error) {
	extracted, err := ExtractJSON(raw)
	if err != nil {
		return models.AnalysisBundle{}, err
	}

	var parsed llmAnalysis
	if err := json.Unmarshal([]byte(extracted), &parsed); err != nil {
		return models.AnalysisBundle{}, fmt.Errorf("invalid JSON in LLM response: %w", err)
	}

	bundle := models.AnalysisBundle{
		Insights:             parsed.Insights,
		Sentiment:            parsed.Sentiment,
		KeyThemes:            parsed.KeyThemes,
		EngagementIndicators: parsed.EngagementIndicators,
	}

	if bundle.Insights == nil {
		bundle.Insights = []models.Insight{}
	}
	if bundle.Sentiment == "" {
		bundle.Sentiment = "neutral"
	}
	if bundle.KeyThemes == nil {
		bundle.KeyThemes = []string{}
	}
	if bundle.EngagementIndicators == nil {
		bundle.EngagementIndicators = []string{}
	}

	return bundle, nil
}

// Developer tool: runs the insight pipeline end to end with canned
// content and a canned completion, so the response shape can be
// inspected without network access or a Groq credential.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/insightdash/insight-api/internal/config"
	"github.com/insightdash/insight-api/internal/models"
	"github.com/insightdash/insight-api/internal/pipeline"
	"github.com/insightdash/insight-api/internal/sources"
)

type stubSource struct {
	name  string
	items []models.ContentItem
}

func (s *stubSource) GetName() string { return s.name }
func (s *stubSource) IsEnabled() bool { return true }
func (s *stubSource) FetchContent(context.Context, []string, string) []models.ContentItem {
	return s.items
}

type stubRegistry struct {
	byPlatform map[string]sources.Source
}

func (r *stubRegistry) ForPlatform(platform string) sources.Source {
	return r.byPlatform[platform]
}

type cannedCompleter struct{}

func (cannedCompleter) Configured() bool { return true }

func (cannedCompleter) Complete(ctx context.Context, prompt string, temperature float32, maxTokens int, model string) (string, error) {
	// Prose around the JSON object exercises the brace-extraction path.
	return `Here is the analysis you requested:
{
  "insights": [
    {"title": "Strong Interest in AI Tooling", "summary": "Posts about AI developer tools drew the most engagement this week.", "sentiment": "positive", "date": "today"},
    {"title": "Pricing Concerns Persist", "summary": "Several threads questioned subscription pricing for new features.", "sentiment": "negative", "date": "today"},
    {"title": "Steady Community Growth", "summary": "New contributors continue to join the discussion at a stable rate.", "sentiment": "neutral", "date": "today"}
  ],
  "sentiment": "positive",
  "key_themes": ["ai tooling", "pricing", "community"],
  "engagement_indicators": ["high comment counts", "repeat posters"]
}
Hope that helps!`, nil
}

func main() {
	cfg := &config.Config{
		Model:     "llama3-8b-8192",
		MaxTokens: 1000,
		Keywords:  []string{"technology", "ai"},
		Tone:      "professional",
	}

	registry := &stubRegistry{byPlatform: map[string]sources.Source{
		"reddit": &stubSource{name: "reddit", items: []models.ContentItem{
			{Platform: "reddit", Title: "New AI assistant released", Content: "Discussion of the latest AI assistant.", Author: "dev123", Score: 250, Keyword: "ai"},
			{Platform: "reddit", Title: "Tooling thread", Content: "What tooling are you using this year?", Author: "builder", Score: 90, Keyword: "technology"},
		}},
		"x": &stubSource{name: "twitter", items: []models.ContentItem{
			{Platform: "twitter", Author: "@techie", Content: "The new release is impressive.", Date: "2h", Keyword: "ai"},
		}},
	}}

	p := pipeline.New(cfg, cannedCompleter{}, registry)

	response, err := p.Run(context.Background(), models.RunFlowRequest{
		Platforms: []string{"reddit", "x"},
		Preset:    "standard",
		Tone:      "professional",
		DateRange: "last 7 days",
	})
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	out, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal response: %v", err)
	}

	fmt.Println(string(out))
}

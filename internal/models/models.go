package models

// ContentItem represents one piece of scraped source material
type ContentItem struct {
	Platform   string `json:"platform"`
	Title      string `json:"title,omitempty"`
	Author     string `json:"author,omitempty"`
	Content    string `json:"content"`
	URL        string `json:"url,omitempty"`
	Score      int    `json:"score,omitempty"`
	Date       string `json:"date,omitempty"`
	Keyword    string `json:"keyword,omitempty"`
	IsFallback bool   `json:"isFallback,omitempty"`
}

// Insight is a single finding produced by the analyzer
type Insight struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Date      string `json:"date"`
	Sentiment string `json:"sentiment"`
}

// AnalysisBundle is the per-platform output of content analysis.
// All four exported fields are always populated; absence is normalized
// to an empty slice or "neutral" so downstream stages never see nil.
type AnalysisBundle struct {
	Insights             []Insight `json:"insights"`
	Sentiment            string    `json:"sentiment"`
	KeyThemes            []string  `json:"keyThemes"`
	EngagementIndicators []string  `json:"engagementIndicators"`

	// Degraded marks a bundle substituted after an analysis failure,
	// so callers can tell a failure apart from genuinely neutral content.
	Degraded       bool   `json:"-"`
	DegradedReason string `json:"-"`
}

// SentimentPoint is one day of sentiment trend chart data
type SentimentPoint struct {
	Date     string `json:"date"`
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
}

// EngagementPoint is one day of engagement chart data
type EngagementPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// ChartData holds the decorative chart series attached to each platform
type ChartData struct {
	SentimentTrend []SentimentPoint  `json:"sentimentTrend"`
	Engagement     []EngagementPoint `json:"engagement"`
}

// PlatformData is the per-platform section of the response
type PlatformData struct {
	Insights []Insight `json:"insights"`
	Charts   ChartData `json:"charts"`
}

// SummaryData aggregates insight counts and sentiment across all platforms
type SummaryData struct {
	TotalPosts        int    `json:"totalPosts"`
	DominantSentiment string `json:"dominantSentiment"`
	TopPlatform       string `json:"topPlatform"`
}

// InsightResponse is the root response returned to the dashboard
type InsightResponse struct {
	Summary   SummaryData             `json:"summary"`
	Platforms map[string]PlatformData `json:"platforms"`
}

// RunFlowRequest is the inbound request to the insight pipeline
type RunFlowRequest struct {
	Platforms []string `json:"platforms"`
	Preset    string   `json:"preset"`
	Tone      string   `json:"tone"`
	DateRange string   `json:"dateRange"`
	Keywords  []string `json:"keywords,omitempty"`
}

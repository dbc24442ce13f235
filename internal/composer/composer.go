package composer

import (
	"sort"
	"strings"

	"github.com/insightdash/insight-api/internal/models"
)

// sentimentBuckets is the fixed enumeration order for the sentiment
// tally; ties resolve to the first bucket with the maximum count
var sentimentBuckets = [3]string{"Positive", "Neutral", "Negative"}

// platformNames maps platform ids to the display names the dashboard shows
var platformNames = map[string]string{
	"x":         "X (Twitter)",
	"twitter":   "X (Twitter)",
	"reddit":    "Reddit",
	"linkedin":  "LinkedIn",
	"facebook":  "Facebook",
	"instagram": "Instagram",
	"youtube":   "YouTube",
	"tiktok":    "TikTok",
	"web":       "Web Articles",
}

// Result is the composed output consumed by the pipeline's final shape
// conversion
type Result struct {
	Summary   models.SummaryData
	Platforms map[string]models.PlatformData
}

// Compose turns per-platform analysis bundles into presentation-ready
// platform records and a cross-platform summary. order fixes the
// platform iteration used for tie-breaking; platforms present in
// bundles but absent from order are appended alphabetically so the
// result stays deterministic.
func Compose(bundles map[string]models.AnalysisBundle, order []string) Result {
	platforms := make(map[string]models.PlatformData, len(bundles))

	ordered := orderedPlatforms(bundles, order)

	for _, platform := range ordered {
		bundle := bundles[platform]

		if len(bundle.Insights) == 0 {
			platforms[platform] = emptyPlatformData()
			continue
		}

		platforms[platform] = models.PlatformData{
			Insights: bundle.Insights,
			Charts: models.ChartData{
				SentimentTrend: SentimentTrend(bundle.Sentiment),
				Engagement:     Engagement(),
			},
		}
	}

	return Result{
		Summary:   computeSummary(platforms, ordered),
		Platforms: platforms,
	}
}

// emptyPlatformData is the record emitted for a platform with no
// insights: decorative charts, nothing else
func emptyPlatformData() models.PlatformData {
	return models.PlatformData{
		Insights: []models.Insight{},
		Charts: models.ChartData{
			SentimentTrend: SentimentTrend("neutral"),
			Engagement:     Engagement(),
		},
	}
}

func computeSummary(platforms map[string]models.PlatformData, ordered []string) models.SummaryData {
	totalPosts := 0
	counts := map[string]int{"Positive": 0, "Neutral": 0, "Negative": 0}

	topPlatform := ""
	topCount := -1

	for _, platform := range ordered {
		insights := platforms[platform].Insights
		totalPosts += len(insights)

		// First-seen max wins, so the input order decides ties.
		if len(insights) > topCount {
			topPlatform = platform
			topCount = len(insights)
		}

		for _, insight := range insights {
			counts[NormalizeSentiment(insight.Sentiment)]++
		}
	}

	dominant := "Neutral"
	dominantCount := -1
	for _, bucket := range sentimentBuckets {
		if counts[bucket] > dominantCount {
			dominant = bucket
			dominantCount = counts[bucket]
		}
	}

	return models.SummaryData{
		TotalPosts:        totalPosts,
		DominantSentiment: dominant,
		TopPlatform:       DisplayName(topPlatform),
	}
}

// NormalizeSentiment maps a free-form sentiment label onto one of the
// Positive/Neutral/Negative buckets. Unknown labels count as Neutral so
// a stray model output cannot corrupt the tally.
func NormalizeSentiment(sentiment string) string {
	switch strings.ToLower(strings.TrimSpace(sentiment)) {
	case "positive":
		return "Positive"
	case "negative":
		return "Negative"
	default:
		return "Neutral"
	}
}

// DisplayName maps a platform id to its dashboard display name,
// title-casing unknown ids
func DisplayName(platform string) string {
	if name, ok := platformNames[platform]; ok {
		return name
	}

	words := strings.Fields(platform)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func orderedPlatforms(bundles map[string]models.AnalysisBundle, order []string) []string {
	seen := make(map[string]bool, len(bundles))
	var ordered []string

	for _, platform := range order {
		if _, ok := bundles[platform]; ok && !seen[platform] {
			ordered = append(ordered, platform)
			seen[platform] = true
		}
	}

	var rest []string
	for platform := range bundles {
		if !seen[platform] {
			rest = append(rest, platform)
		}
	}
	sort.Strings(rest)

	return append(ordered, rest...)
}

package mockdata

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/insightdash/insight-api/internal/composer"
	"github.com/insightdash/insight-api/internal/models"
)

// Generated placeholder insights for local development, served when
// MOCK_DATA is set so the dashboard can be built without scraping or
// an LLM credential.

var insightTitles = map[string][]string{
	"x": {
		"Engagement Spike Detected",
		"Viral Hashtag Emerging",
		"User Sentiment Shift",
		"Competitor Mention Increase",
	},
	"reddit": {
		"Subreddit Topic Trend",
		"Community Feedback Pattern",
		"Product Discussion Thread",
		"Feature Request Cluster",
	},
	"linkedin": {
		"Industry Conversation Shift",
		"Professional Network Growth",
		"B2B Content Performance",
		"Thought Leadership Impact",
	},
	"facebook": {
		"Page Engagement Analysis",
		"Group Discussion Trend",
		"Demographic Shift",
		"Ad Performance Insight",
	},
	"instagram": {
		"Visual Content Performance",
		"Story Engagement Pattern",
		"Follower Growth Insight",
		"Hashtag Strategy Analysis",
	},
	"youtube": {
		"Video Performance Trend",
		"Comment Sentiment Pattern",
		"Subscriber Growth Insight",
		"Content Strategy Analysis",
	},
	"tiktok": {
		"Short-form Trend Detection",
		"Audio Trend Analysis",
		"Creator Collaboration Opportunity",
		"Demographic Engagement Pattern",
	},
}

var sentiments = []string{"Positive", "Neutral", "Negative"}

var sentimentDescriptions = map[string][]string{
	"Positive": {
		"Users are responding well to the recent update",
		"Positive mentions have increased by 15% this week",
		"Customers are praising the new features",
		"Brand sentiment has improved significantly",
	},
	"Neutral": {
		"Mixed reactions to the latest announcement",
		"Users are discussing functionality without strong opinions",
		"Balanced feedback on product changes",
		"General discussion without significant sentiment",
	},
	"Negative": {
		"Criticism of recent service issues",
		"Customers expressing frustration with new interface",
		"Negative comparison to competitor offerings",
		"Concerns about recent policy changes",
	},
}

// Generate builds a mock insight response for the requested platforms
func Generate(platforms []string, preset, tone, dateRange string) *models.InsightResponse {
	platformData := make(map[string]models.PlatformData, len(platforms))

	for _, platform := range platforms {
		platformData[platform] = models.PlatformData{
			Insights: platformInsights(platform, tone),
			Charts: models.ChartData{
				SentimentTrend: sentimentTrend(),
				Engagement:     engagement(),
			},
		}
	}

	return &models.InsightResponse{
		Summary:   summarize(platformData, platforms),
		Platforms: platformData,
	}
}

func platformInsights(platform, tone string) []models.Insight {
	titles, ok := insightTitles[platform]
	if !ok {
		titles = insightTitles["x"]
	}

	dates := recentDates()
	count := 3 + rand.Intn(3)

	insights := make([]models.Insight, 0, count)
	for i := 0; i < count; i++ {
		sentiment := sentiments[rand.Intn(len(sentiments))]
		descriptions := sentimentDescriptions[sentiment]
		summary := descriptions[rand.Intn(len(descriptions))]

		switch strings.ToLower(tone) {
		case "professional":
			summary = fmt.Sprintf("Analysis indicates that %s", strings.ToLower(summary[:1])+summary[1:])
		case "viral":
			summary = fmt.Sprintf("Breaking insight: %s! This trend is gaining traction rapidly.", summary)
		case "casual":
			summary = fmt.Sprintf("Heads up! %s", summary)
		}

		insights = append(insights, models.Insight{
			Title:     titles[rand.Intn(len(titles))],
			Date:      dates[rand.Intn(len(dates))],
			Summary:   summary,
			Sentiment: sentiment,
		})
	}

	return insights
}

func summarize(platformData map[string]models.PlatformData, order []string) models.SummaryData {
	totalPosts := 0
	counts := map[string]int{"Positive": 0, "Neutral": 0, "Negative": 0}

	topPlatform := ""
	topCount := -1

	for _, platform := range order {
		insights := platformData[platform].Insights
		totalPosts += len(insights)

		if len(insights) > topCount {
			topPlatform = platform
			topCount = len(insights)
		}

		for _, insight := range insights {
			counts[composer.NormalizeSentiment(insight.Sentiment)]++
		}
	}

	dominant := "Neutral"
	dominantCount := -1
	for _, bucket := range []string{"Positive", "Neutral", "Negative"} {
		if counts[bucket] > dominantCount {
			dominant = bucket
			dominantCount = counts[bucket]
		}
	}

	return models.SummaryData{
		TotalPosts:        totalPosts,
		DominantSentiment: dominant,
		TopPlatform:       composer.DisplayName(topPlatform),
	}
}

func recentDates() []string {
	today := time.Now()
	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		dates[i] = today.AddDate(0, 0, -i).Format("2006-01-02")
	}
	return dates
}

func sentimentTrend() []models.SentimentPoint {
	points := make([]models.SentimentPoint, 0, 7)
	for _, date := range recentDates() {
		points = append(points, models.SentimentPoint{
			Date:     date,
			Positive: 30 + rand.Intn(41),
			Neutral:  20 + rand.Intn(21),
			Negative: 5 + rand.Intn(16),
		})
	}
	return points
}

func engagement() []models.EngagementPoint {
	points := make([]models.EngagementPoint, 0, 7)
	for _, date := range recentDates() {
		points = append(points, models.EngagementPoint{
			Date:  date,
			Value: 100 + rand.Intn(401),
		})
	}
	return points
}

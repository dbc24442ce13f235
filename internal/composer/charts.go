package composer

import (
	"math/rand"
	"time"

	"github.com/insightdash/insight-api/internal/models"
)

// Chart series are presentation filler for the dashboard, not measured
// analytics. The only guarantee is a well-formed shape: 7 daily points
// with values inside the documented ranges.

const chartDays = 7

// sentimentWeights are the per-day baselines for each overall sentiment
var sentimentWeights = map[string][3]int{
	"positive": {50, 30, 20},
	"neutral":  {33, 34, 33},
	"negative": {20, 30, 50},
}

// SentimentTrend generates 7 days of sentiment chart data whose values
// hover around a baseline weighted by the overall sentiment
func SentimentTrend(overall string) []models.SentimentPoint {
	weights, ok := sentimentWeights[overall]
	if !ok {
		weights = sentimentWeights["neutral"]
	}

	today := time.Now()
	points := make([]models.SentimentPoint, 0, chartDays)

	for i := 0; i < chartDays; i++ {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")

		points = append(points, models.SentimentPoint{
			Date:     date,
			Positive: clamp(weights[0]+jitter(15), 30, 70),
			Neutral:  clamp(weights[1]+jitter(10), 20, 40),
			Negative: clamp(weights[2]+jitter(10), 5, 50),
		})
	}

	return points
}

// Engagement generates 7 days of engagement chart data with values in
// [100, 500]
func Engagement() []models.EngagementPoint {
	today := time.Now()
	points := make([]models.EngagementPoint, 0, chartDays)

	for i := 0; i < chartDays; i++ {
		points = append(points, models.EngagementPoint{
			Date:  today.AddDate(0, 0, -i).Format("2006-01-02"),
			Value: 100 + rand.Intn(401),
		})
	}

	return points
}

// jitter returns a random offset in [-n, n]
func jitter(n int) int {
	return rand.Intn(2*n+1) - n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package sources

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/insightdash/insight-api/internal/models"
)

const tweetsPerKeyword = 5

// TwitterSource scrapes X/Twitter search results through a Nitter
// front-end, which serves plain HTML without authentication.
type TwitterSource struct {
	client  *resty.Client
	baseURL string
}

// NewTwitterSource creates a new X/Twitter source
func NewTwitterSource() *TwitterSource {
	return &TwitterSource{
		client: resty.New().
			SetTimeout(30 * time.Second).
			SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),
		baseURL: "https://nitter.net",
	}
}

func (t *TwitterSource) GetName() string {
	return "twitter"
}

func (t *TwitterSource) IsEnabled() bool {
	return true
}

func (t *TwitterSource) FetchContent(ctx context.Context, keywords []string, dateRange string) []models.ContentItem {
	var items []models.ContentItem

	for _, keyword := range keywords {
		tweets, err := t.searchKeyword(ctx, keyword)
		if err != nil {
			logrus.Errorf("Failed to search Twitter for keyword '%s': %v", keyword, err)
			continue
		}
		items = append(items, tweets...)
	}

	if len(items) == 0 {
		logrus.Warn("No Twitter content scraped, using fallback content")
		for _, keyword := range keywords {
			items = append(items, models.ContentItem{
				Platform:   "twitter",
				Author:     "user",
				Content:    fmt.Sprintf("Found discussions about %s on social media platforms.", keyword),
				Date:       "recent",
				Keyword:    keyword,
				IsFallback: true,
			})
		}
	}

	return items
}

func (t *TwitterSource) searchKeyword(ctx context.Context, keyword string) ([]models.ContentItem, error) {
	searchURL := fmt.Sprintf("%s/search?f=tweets&q=%s", t.baseURL, url.QueryEscape(keyword))

	resp, err := t.client.R().
		SetContext(ctx).
		Get(searchURL)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("nitter returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(resp.Body())))
	if err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}

	var items []models.ContentItem

	doc.Find(".timeline-item").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= tweetsPerKeyword {
			return false
		}

		content := strings.TrimSpace(sel.Find(".tweet-content").Text())
		username := strings.TrimSpace(sel.Find(".username").Text())
		date := strings.TrimSpace(sel.Find(".tweet-date").Text())

		if content == "" || username == "" {
			return true
		}
		if date == "" {
			date = "Unknown date"
		}

		items = append(items, models.ContentItem{
			Platform: "twitter",
			Author:   username,
			Content:  content,
			Date:     date,
			Keyword:  keyword,
		})

		return true
	})

	return items, nil
}

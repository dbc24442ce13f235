package sources

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sirupsen/logrus"

	"github.com/insightdash/insight-api/internal/models"
)

const (
	webContentLimit    = 1000
	articlesPerFeed    = 3
	webArticlePlatform = "web"
)

// WebSource collects recent articles from news site RSS feeds and keeps
// the ones matching the requested keywords.
type WebSource struct {
	parser *gofeed.Parser
	feeds  []string
}

// NewWebSource creates a new web articles source
func NewWebSource() *WebSource {
	parser := gofeed.NewParser()
	parser.UserAgent = "InsightDash/1.0"

	return &WebSource{
		parser: parser,
		feeds: []string{
			"https://techcrunch.com/feed/",
			"https://www.theverge.com/rss/index.xml",
			"https://www.wired.com/feed/rss",
		},
	}
}

func (w *WebSource) GetName() string {
	return webArticlePlatform
}

func (w *WebSource) IsEnabled() bool {
	return true
}

func (w *WebSource) FetchContent(ctx context.Context, keywords []string, dateRange string) []models.ContentItem {
	var items []models.ContentItem

	for _, feedURL := range w.feeds {
		articles, err := w.fetchFeed(ctx, feedURL, keywords)
		if err != nil {
			logrus.Errorf("Failed to fetch feed %s: %v", feedURL, err)
			continue
		}
		items = append(items, articles...)
	}

	if len(items) == 0 {
		logrus.Warn("No web articles scraped, using fallback content")
		for _, keyword := range keywords {
			items = append(items, models.ContentItem{
				Platform:   webArticlePlatform,
				Title:      fmt.Sprintf("Articles about %s", keyword),
				Content:    fmt.Sprintf("Various online publications discussing %s and related trends.", keyword),
				URL:        fmt.Sprintf("https://www.google.com/search?q=%s+news", url.QueryEscape(keyword)),
				Keyword:    keyword,
				IsFallback: true,
			})
		}
	}

	return items
}

func (w *WebSource) fetchFeed(ctx context.Context, feedURL string, keywords []string) ([]models.ContentItem, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	feed, err := w.parser.ParseURLWithContext(feedURL, fetchCtx)
	if err != nil {
		return nil, err
	}

	var items []models.ContentItem

	for _, entry := range feed.Items {
		if len(items) >= articlesPerFeed {
			break
		}

		keyword := matchKeyword(entry.Title+" "+entry.Description, keywords)
		if keyword == "" {
			continue
		}

		content := entry.Description
		if len(content) > webContentLimit {
			content = content[:webContentLimit]
		}

		date := ""
		if entry.PublishedParsed != nil {
			date = entry.PublishedParsed.Format("2006-01-02")
		}

		items = append(items, models.ContentItem{
			Platform: webArticlePlatform,
			Title:    entry.Title,
			Content:  content,
			URL:      entry.Link,
			Date:     date,
			Keyword:  keyword,
		})
	}

	return items, nil
}

// matchKeyword returns the first keyword contained in the text, or ""
func matchKeyword(text string, keywords []string) string {
	lowered := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			return keyword
		}
	}
	return ""
}

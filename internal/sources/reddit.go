package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/insightdash/insight-api/internal/models"
)

const redditContentLimit = 500

// RedditSource fetches posts through Reddit's public JSON search API
type RedditSource struct {
	client  *resty.Client
	baseURL string
}

type redditSearchResponse struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	Title     string `json:"title"`
	Selftext  string `json:"selftext"`
	Author    string `json:"author"`
	Subreddit string `json:"subreddit"`
	Permalink string `json:"permalink"`
	Score     int    `json:"score"`
}

// NewRedditSource creates a new Reddit source
func NewRedditSource() *RedditSource {
	return &RedditSource{
		client: resty.New().
			SetTimeout(30 * time.Second).
			SetHeader("User-Agent", "InsightDash/1.0"),
		baseURL: "https://www.reddit.com",
	}
}

func (r *RedditSource) GetName() string {
	return "reddit"
}

func (r *RedditSource) IsEnabled() bool {
	return true // public search endpoint, no credentials needed
}

func (r *RedditSource) FetchContent(ctx context.Context, keywords []string, dateRange string) []models.ContentItem {
	var items []models.ContentItem

	for _, keyword := range keywords {
		posts, err := r.searchKeyword(ctx, keyword)
		if err != nil {
			logrus.Errorf("Failed to search Reddit for keyword '%s': %v", keyword, err)
			continue
		}
		items = append(items, posts...)
	}

	if len(items) == 0 {
		logrus.Warn("No Reddit content scraped, using fallback content")
		for _, keyword := range keywords {
			items = append(items, models.ContentItem{
				Platform:   "reddit",
				Title:      fmt.Sprintf("Discussions about %s", keyword),
				Content:    fmt.Sprintf("Various threads discussing %s and related topics.", keyword),
				Author:     "redditor",
				URL:        fmt.Sprintf("https://www.reddit.com/search?q=%s", url.QueryEscape(keyword)),
				Score:      100,
				Keyword:    keyword,
				IsFallback: true,
			})
		}
	}

	return items
}

func (r *RedditSource) searchKeyword(ctx context.Context, keyword string) ([]models.ContentItem, error) {
	searchURL := fmt.Sprintf("%s/search.json?q=%s&sort=relevance&limit=5", r.baseURL, url.QueryEscape(keyword))

	resp, err := r.client.R().
		SetContext(ctx).
		Get(searchURL)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("reddit API returned status %d", resp.StatusCode())
	}

	var searchResp redditSearchResponse
	if err := json.Unmarshal(resp.Body(), &searchResp); err != nil {
		return nil, err
	}

	var items []models.ContentItem

	for _, child := range searchResp.Data.Children {
		post := child.Data

		content := post.Selftext
		if len(content) > redditContentLimit {
			content = content[:redditContentLimit]
		}

		items = append(items, models.ContentItem{
			Platform: "reddit",
			Title:    post.Title,
			Content:  content,
			Author:   post.Author,
			URL:      fmt.Sprintf("https://www.reddit.com%s", post.Permalink),
			Score:    post.Score,
			Keyword:  keyword,
		})
	}

	return items, nil
}

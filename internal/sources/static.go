package sources

import (
	"context"
	"fmt"

	"github.com/insightdash/insight-api/internal/models"
)

// StaticSource synthesizes placeholder content for platforms whose
// public surfaces cannot be scraped without restricted API access
// (LinkedIn, Instagram, YouTube). Its items are always fallback items.
type StaticSource struct {
	name       string
	author     string
	titleFmt   string
	contentFmt string
	urlFmt     string
}

// NewLinkedInSource creates a fallback-only LinkedIn source.
// LinkedIn's APIs only expose owned content, so live retrieval is not
// attempted.
func NewLinkedInSource() *StaticSource {
	return &StaticSource{
		name:       "linkedin",
		author:     "professional",
		titleFmt:   "Industry insights on %s",
		contentFmt: "Professional discussions around %s and its impact on the industry.",
	}
}

// NewInstagramSource creates a fallback-only Instagram source
func NewInstagramSource() *StaticSource {
	return &StaticSource{
		name:       "instagram",
		author:     "creator",
		titleFmt:   "Visual content about %s",
		contentFmt: "Popular visual posts related to %s trending on Instagram.",
	}
}

// NewYouTubeSource creates a fallback-only YouTube source
func NewYouTubeSource() *StaticSource {
	return &StaticSource{
		name:       "youtube",
		author:     "creator",
		titleFmt:   "Video content about %s",
		contentFmt: "Popular video discussions about %s on YouTube.",
		urlFmt:     "https://www.youtube.com/results?search_query=%s",
	}
}

func (s *StaticSource) GetName() string {
	return s.name
}

func (s *StaticSource) IsEnabled() bool {
	return true
}

func (s *StaticSource) FetchContent(ctx context.Context, keywords []string, dateRange string) []models.ContentItem {
	var items []models.ContentItem

	for _, keyword := range keywords {
		item := models.ContentItem{
			Platform:   s.name,
			Author:     s.author,
			Title:      fmt.Sprintf(s.titleFmt, keyword),
			Content:    fmt.Sprintf(s.contentFmt, keyword),
			Keyword:    keyword,
			IsFallback: true,
		}
		if s.urlFmt != "" {
			item.URL = fmt.Sprintf(s.urlFmt, keyword)
		}
		items = append(items, item)
	}

	return items
}

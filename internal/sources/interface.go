package sources

import (
	"context"

	"github.com/insightdash/insight-api/internal/models"
)

// Source interface defines the contract for all content sources.
// FetchContent never fails: when live retrieval errors out or yields
// nothing, the source substitutes synthetic fallback items (one per
// keyword) so downstream analysis always has material to work with.
type Source interface {
	GetName() string
	IsEnabled() bool
	FetchContent(ctx context.Context, keywords []string, dateRange string) []models.ContentItem
}

// Package store persists the app's small local state: the rolling list
// of recent searches and the popular routes shown on the home screen.
package store

import (
	"context"
	"encoding/json"

	"github.com/Shahrukh0396/GFlights/internal/models"
)

// Fixed keys. All clients of one deployment share the same two values.
const (
	recentSearchesKey = "gflights:recent_searches"
	popularRoutesKey  = "gflights:popular_routes"
)

// MaxRecentSearches caps the history list. Appending beyond the cap
// drops the oldest entries.
const MaxRecentSearches = 10

// Store holds recent searches and popular routes. Reads never return
// an error: missing or unreadable state degrades to an empty history
// or the seeded routes.
type Store interface {
	AppendRecentSearch(ctx context.Context, search models.RecentSearch) error
	RecentSearches(ctx context.Context) []models.RecentSearch
	ClearRecentSearches(ctx context.Context) error
	PopularRoutes(ctx context.Context) []models.PopularRoute
	Close() error
}

func decodeRecentSearches(data []byte) ([]models.RecentSearch, bool) {
	var searches []models.RecentSearch
	if err := json.Unmarshal(data, &searches); err != nil {
		return nil, false
	}
	return searches, true
}

func decodePopularRoutes(data []byte) ([]models.PopularRoute, bool) {
	var routes []models.PopularRoute
	if err := json.Unmarshal(data, &routes); err != nil {
		return nil, false
	}
	return routes, true
}

// prependAndTruncate puts the newest search first and enforces the cap.
func prependAndTruncate(searches []models.RecentSearch, search models.RecentSearch) []models.RecentSearch {
	updated := make([]models.RecentSearch, 0, len(searches)+1)
	updated = append(updated, search)
	updated = append(updated, searches...)

	if len(updated) > MaxRecentSearches {
		updated = updated[:MaxRecentSearches]
	}
	return updated
}

package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/Shahrukh0396/GFlights/internal/models"
)

// MemoryStore keeps the same keyed JSON blobs as the Redis store in a
// map. It backs local development and tests when Redis is disabled;
// state is lost on restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

func (s *MemoryStore) AppendRecentSearch(ctx context.Context, search models.RecentSearch) error {
	searches := s.RecentSearches(ctx)
	updated := prependAndTruncate(searches, search)

	data, err := json.Marshal(updated)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data[recentSearchesKey] = data
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) RecentSearches(ctx context.Context) []models.RecentSearch {
	s.mu.RLock()
	data, exists := s.data[recentSearchesKey]
	s.mu.RUnlock()

	if !exists {
		return []models.RecentSearch{}
	}

	searches, ok := decodeRecentSearches(data)
	if !ok {
		log.Printf("Stored recent searches are unreadable, serving empty history")
		return []models.RecentSearch{}
	}

	return searches
}

func (s *MemoryStore) ClearRecentSearches(ctx context.Context) error {
	s.mu.Lock()
	delete(s.data, recentSearchesKey)
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) PopularRoutes(ctx context.Context) []models.PopularRoute {
	s.mu.RLock()
	data, exists := s.data[popularRoutesKey]
	s.mu.RUnlock()

	if !exists {
		return s.seedPopularRoutes()
	}

	routes, ok := decodePopularRoutes(data)
	if !ok {
		log.Printf("Stored popular routes are unreadable, serving seed data")
		return SeedPopularRoutes()
	}

	return routes
}

func (s *MemoryStore) seedPopularRoutes() []models.PopularRoute {
	routes := SeedPopularRoutes()

	data, err := json.Marshal(routes)
	if err != nil {
		log.Printf("Encoding popular routes seed failed: %v", err)
		return routes
	}

	s.mu.Lock()
	s.data[popularRoutesKey] = data
	s.mu.Unlock()

	return routes
}

func (s *MemoryStore) Close() error {
	return nil
}

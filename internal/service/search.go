// Package service coordinates the flight provider and the local store
// behind the HTTP handlers.
package service

import (
	"context"
	"log"
	"time"

	"github.com/Shahrukh0396/GFlights/internal/models"
	"github.com/Shahrukh0396/GFlights/internal/provider"
	"github.com/Shahrukh0396/GFlights/internal/store"
)

type SearchService struct {
	provider provider.API
	store    store.Store
	now      func() time.Time
}

func NewSearchService(p provider.API, s store.Store) *SearchService {
	return &SearchService{
		provider: p,
		store:    s,
		now:      time.Now,
	}
}

// Search runs a flight search and records it in the history on
// success. A failing history write is logged and swallowed; the user
// still gets their results.
func (s *SearchService) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	resp, err := s.provider.SearchFlights(ctx, req)
	if err != nil {
		return nil, err
	}

	search := models.NewRecentSearch(req, s.now())
	if err := s.store.AppendRecentSearch(ctx, search); err != nil {
		log.Printf("Recording search %s-%s in history failed: %v", req.Origin, req.Destination, err)
	}

	return resp, nil
}

func (s *SearchService) SearchAirports(ctx context.Context, query, locale string) ([]models.Airport, error) {
	return s.provider.SearchAirports(ctx, query, locale)
}

func (s *SearchService) NearbyAirports(ctx context.Context, lat, lng float64, locale string) (*models.NearbyAirports, error) {
	return s.provider.NearbyAirports(ctx, lat, lng, locale)
}

func (s *SearchService) RecentSearches(ctx context.Context) []models.RecentSearch {
	return s.store.RecentSearches(ctx)
}

func (s *SearchService) ClearRecentSearches(ctx context.Context) error {
	return s.store.ClearRecentSearches(ctx)
}

func (s *SearchService) PopularRoutes(ctx context.Context) []models.PopularRoute {
	return s.store.PopularRoutes(ctx)
}

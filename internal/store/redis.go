package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Shahrukh0396/GFlights/internal/models"
)

type RedisStore struct {
	client *redis.Client
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) AppendRecentSearch(ctx context.Context, search models.RecentSearch) error {
	searches := s.RecentSearches(ctx)
	updated := prependAndTruncate(searches, search)

	data, err := json.Marshal(updated)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, recentSearchesKey, data, 0).Err()
}

func (s *RedisStore) RecentSearches(ctx context.Context) []models.RecentSearch {
	data, err := s.client.Get(ctx, recentSearchesKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Reading recent searches failed, serving empty history: %v", err)
		}
		return []models.RecentSearch{}
	}

	searches, ok := decodeRecentSearches(data)
	if !ok {
		log.Printf("Stored recent searches are unreadable, serving empty history")
		return []models.RecentSearch{}
	}

	return searches
}

func (s *RedisStore) ClearRecentSearches(ctx context.Context) error {
	return s.client.Del(ctx, recentSearchesKey).Err()
}

// PopularRoutes serves the stored route list, seeding it on first use.
// The seed is written only when the key is absent; any other read
// failure serves the seed without writing it.
func (s *RedisStore) PopularRoutes(ctx context.Context) []models.PopularRoute {
	data, err := s.client.Get(ctx, popularRoutesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return s.seedPopularRoutes(ctx)
		}
		log.Printf("Reading popular routes failed, serving seed data: %v", err)
		return SeedPopularRoutes()
	}

	routes, ok := decodePopularRoutes(data)
	if !ok {
		log.Printf("Stored popular routes are unreadable, serving seed data")
		return SeedPopularRoutes()
	}

	return routes
}

func (s *RedisStore) seedPopularRoutes(ctx context.Context) []models.PopularRoute {
	routes := SeedPopularRoutes()

	data, err := json.Marshal(routes)
	if err != nil {
		log.Printf("Encoding popular routes seed failed: %v", err)
		return routes
	}

	if err := s.client.Set(ctx, popularRoutesKey, data, 0).Err(); err != nil {
		log.Printf("Writing popular routes seed failed: %v", err)
	}

	return routes
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

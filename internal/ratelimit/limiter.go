package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// EndpointLimiter throttles outbound calls per upstream endpoint.
type EndpointLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewEndpointLimiter(config RateLimitConfig) *EndpointLimiter {
	return &EndpointLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewEndpointLimiterWithDefaults() *EndpointLimiter {
	return NewEndpointLimiter(DefaultConfig())
}

func (e *EndpointLimiter) GetLimiter(endpoint string) *rate.Limiter {
	e.mu.RLock()
	limiter, exists := e.limiters[endpoint]
	e.mu.RUnlock()

	if exists {
		return limiter
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if limiter, exists = e.limiters[endpoint]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(e.defaults.RequestsPerSecond), e.defaults.BurstSize)
	e.limiters[endpoint] = limiter
	return limiter
}

func (e *EndpointLimiter) SetEndpointLimit(endpoint string, rps float64, burst int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.limiters[endpoint] = rate.NewLimiter(rate.Limit(rps), burst)
}

func (e *EndpointLimiter) Wait(ctx context.Context, endpoint string) error {
	return e.GetLimiter(endpoint).Wait(ctx)
}

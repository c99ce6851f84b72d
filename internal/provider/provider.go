// Package provider implements the client for the upstream flight-data
// API: bearer-token transport, request normalization into the
// provider's shape, and shaping of the response envelopes back into the
// app's models.
package provider

import (
	"context"

	"github.com/Shahrukh0396/GFlights/internal/models"
)

// API is the part of the upstream client the rest of the service
// consumes. *Client implements it.
type API interface {
	SearchFlights(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error)
	SearchAirports(ctx context.Context, query, locale string) ([]models.Airport, error)
	NearbyAirports(ctx context.Context, lat, lng float64, locale string) (*models.NearbyAirports, error)
}

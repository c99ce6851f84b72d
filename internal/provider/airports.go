package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Shahrukh0396/GFlights/internal/models"
)

type airportsEnvelope struct {
	Success bool             `json:"success"`
	Data    []models.Airport `json:"data"`
}

type nearbyEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Current *models.Airport  `json:"current"`
		Nearby  []models.Airport `json:"nearby"`
	} `json:"data"`
}

// SearchAirports looks up airports matching a free-text query, for
// origin and destination autocomplete.
func (c *Client) SearchAirports(ctx context.Context, query, locale string) ([]models.Airport, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &models.MissingFieldError{Field: "query"}
	}
	if locale == "" {
		locale = DefaultLocale
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("locale", locale)

	body, err := c.doJSON(ctx, EndpointAirports, http.MethodGet, "/flights/search-airports", params, nil)
	if err != nil {
		return nil, err
	}

	return shapeAirports(body)
}

// NearbyAirports returns the airport closest to the given coordinates
// plus alternatives around it.
func (c *Client) NearbyAirports(ctx context.Context, lat, lng float64, locale string) (*models.NearbyAirports, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("locale", locale)

	body, err := c.doJSON(ctx, EndpointAirports, http.MethodGet, "/flights/nearby-airports", params, nil)
	if err != nil {
		return nil, err
	}

	return shapeNearbyAirports(body)
}

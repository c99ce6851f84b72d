package provider

import (
	"context"
	"net/http"

	"github.com/Shahrukh0396/GFlights/internal/models"
)

// SearchFlights validates and normalizes the request, sends it to the
// provider's flight search endpoint, and shapes the raw response for
// the app. Validation failures return before any network traffic.
func (c *Client) SearchFlights(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	payload, err := BuildSearchPayload(req)
	if err != nil {
		return nil, err
	}

	body, err := c.doJSON(ctx, EndpointFlightsSearch, http.MethodPost, "/flights/search", nil, payload)
	if err != nil {
		return nil, err
	}

	return ShapeSearchResponse(body)
}

package provider

import (
	"encoding/json"

	"github.com/Shahrukh0396/GFlights/internal/models"
)

// searchEnvelope is the upstream's success envelope for flight search.
// The envelope's own count field is decoded but never trusted; the
// response count is recomputed from the extracted slice.
type searchEnvelope struct {
	Success      bool                 `json:"success"`
	Count        int                  `json:"count"`
	Data         []models.FlightOffer `json:"data"`
	Dictionaries *models.Dictionaries `json:"dictionaries"`
}

// ShapeSearchResponse converts a raw upstream envelope into the
// app-facing response. A missing or null data field is an empty result
// set, not an error. Offer order is preserved as received; dictionaries
// pass through verbatim when present and default to empty maps when
// not.
func ShapeSearchResponse(body []byte) (*models.SearchResponse, error) {
	var env searchEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &SearchError{Message: "decode search response: " + err.Error(), Err: err}
	}

	offers := env.Data
	if offers == nil {
		offers = []models.FlightOffer{}
	}

	dictionaries := models.EmptyDictionaries()
	if env.Dictionaries != nil {
		dictionaries = *env.Dictionaries
	}

	return &models.SearchResponse{
		Count:        len(offers),
		Offers:       offers,
		Dictionaries: dictionaries,
	}, nil
}

func shapeAirports(body []byte) ([]models.Airport, error) {
	var env airportsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &SearchError{Message: "decode airports response: " + err.Error(), Err: err}
	}

	airports := env.Data
	if airports == nil {
		airports = []models.Airport{}
	}

	return airports, nil
}

func shapeNearbyAirports(body []byte) (*models.NearbyAirports, error) {
	var env nearbyEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &SearchError{Message: "decode nearby airports response: " + err.Error(), Err: err}
	}

	nearby := env.Data.Nearby
	if nearby == nil {
		nearby = []models.Airport{}
	}

	return &models.NearbyAirports{
		Current: env.Data.Current,
		Nearby:  nearby,
	}, nil
}

package models

// Airport carries both identifier schemes the upstream uses: the public
// IATA code for display and the provider-specific sky/entity
// identifiers the search endpoint actually resolves by. Both must
// survive the round trip through the app or searches cannot be issued.
type Airport struct {
	SkyID    string  `json:"skyId"`
	EntityID string  `json:"entityId"`
	IATA     string  `json:"iata,omitempty"`
	Name     string  `json:"name"`
	City     string  `json:"city,omitempty"`
	Country  string  `json:"country,omitempty"`
	Lat      float64 `json:"lat,omitempty"`
	Lng      float64 `json:"lng,omitempty"`
}

// NearbyAirports is the flattened result of the upstream's nested
// nearby-airports envelope: the airport closest to the queried
// coordinates plus the surrounding candidates.
type NearbyAirports struct {
	Current *Airport  `json:"current,omitempty"`
	Nearby  []Airport `json:"nearby"`
}

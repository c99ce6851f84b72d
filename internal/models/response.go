package models

// SearchResponse is what the service returns for a flight search.
// Count is always computed from the extracted offer slice, never taken
// from the upstream envelope. Offer ordering is the upstream's.
type SearchResponse struct {
	Count        int           `json:"count"`
	Offers       []FlightOffer `json:"offers"`
	Dictionaries Dictionaries  `json:"dictionaries"`
}

type AirportsResponse struct {
	Count    int       `json:"count"`
	Airports []Airport `json:"airports"`
}

type RecentSearchesResponse struct {
	Count    int            `json:"count"`
	Searches []RecentSearch `json:"searches"`
}

type PopularRoutesResponse struct {
	Count  int            `json:"count"`
	Routes []PopularRoute `json:"routes"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

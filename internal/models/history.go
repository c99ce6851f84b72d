package models

import (
	"strconv"
	"time"
)

// RecentSearch is the persisted record of one completed search,
// kept newest-first and capped by the store.
type RecentSearch struct {
	ID            string    `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departure_date"`
	ReturnDate    *string   `json:"return_date,omitempty"`
	Passengers    int       `json:"passengers"`
	SearchedAt    time.Time `json:"searched_at"`
}

// NewRecentSearch derives the record persisted after a successful
// search. The identifier is the creation timestamp in milliseconds,
// which also keeps records naturally ordered.
func NewRecentSearch(req SearchRequest, at time.Time) RecentSearch {
	adults := req.Adults
	if adults < 1 {
		adults = 1
	}
	children := req.Children
	if children < 0 {
		children = 0
	}
	infants := req.Infants
	if infants < 0 {
		infants = 0
	}

	return RecentSearch{
		ID:            strconv.FormatInt(at.UnixMilli(), 10),
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers:    adults + children + infants,
		SearchedAt:    at,
	}
}

// PopularRoute is a static suggestion record seeded into the store on
// first read. It is not derived from live traffic.
type PopularRoute struct {
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	OriginCity      string  `json:"origin_city"`
	DestinationCity string  `json:"destination_city"`
	AveragePrice    float64 `json:"average_price"`
	PriceDisplay    string  `json:"price_display,omitempty"`
	Popularity      int     `json:"popularity"`
}

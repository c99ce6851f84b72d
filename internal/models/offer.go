package models

// FlightOffer is one priced, bookable itinerary set as returned by the
// upstream search. Offers keep the upstream's camelCase field names and
// pass through to the app verbatim, in upstream order. A new search
// replaces the previous offer set wholesale.
type FlightOffer struct {
	ID               string            `json:"id"`
	Itineraries      []Itinerary       `json:"itineraries"`
	Price            OfferPrice        `json:"price"`
	TravelerPricings []TravelerPricing `json:"travelerPricings,omitempty"`
}

// Itinerary is one direction of travel (outbound or return) made up of
// one or more flight segments.
type Itinerary struct {
	Duration string    `json:"duration,omitempty"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	CarrierCode  string       `json:"carrierCode"`
	FlightNumber string       `json:"flightNumber"`
	Departure    SegmentPoint `json:"departure"`
	Arrival      SegmentPoint `json:"arrival"`
	Duration     string       `json:"duration,omitempty"`
	Stops        int          `json:"stops"`
}

// SegmentPoint carries the airport-local departure or arrival datetime
// exactly as the upstream sent it. No timezone conversion happens on
// this side.
type SegmentPoint struct {
	AirportCode string `json:"airportCode"`
	Terminal    string `json:"terminal,omitempty"`
	At          string `json:"at"`
}

type OfferPrice struct {
	Total    float64 `json:"total"`
	Base     float64 `json:"base,omitempty"`
	Currency string  `json:"currency"`
}

// TravelerPricing is the per-traveler fare breakdown attached to an
// offer.
type TravelerPricing struct {
	TravelerID   string     `json:"travelerId"`
	TravelerType string     `json:"travelerType"`
	Price        OfferPrice `json:"price"`
}

// Dictionaries are the auxiliary lookup tables shipped alongside the
// offer list: code-to-name maps for carriers, aircraft and currencies,
// and code-to-city/country for locations.
type Dictionaries struct {
	Carriers   map[string]string       `json:"carriers"`
	Aircraft   map[string]string       `json:"aircraft"`
	Currencies map[string]string       `json:"currencies"`
	Locations  map[string]LocationInfo `json:"locations"`
}

type LocationInfo struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// EmptyDictionaries returns a dictionary set with initialized maps so
// the JSON encoding is {} rather than null when the upstream sent none.
func EmptyDictionaries() Dictionaries {
	return Dictionaries{
		Carriers:   map[string]string{},
		Aircraft:   map[string]string{},
		Currencies: map[string]string{},
		Locations:  map[string]LocationInfo{},
	}
}

package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates on both the app side
// and the provider side (ISO 8601 date only).
const DateLayout = "2006-01-02"

// Cabin classes as the app submits them. The provider client lowers
// these to the upstream's snake_case form before the call goes out.
const (
	CabinEconomy        = "ECONOMY"
	CabinPremiumEconomy = "PREMIUM_ECONOMY"
	CabinBusiness       = "BUSINESS"
	CabinFirst          = "FIRST"
)

type SearchRequest struct {
	Origin              string  `json:"origin"`
	Destination         string  `json:"destination"`
	OriginEntityID      string  `json:"origin_entity_id"`
	DestinationEntityID string  `json:"destination_entity_id"`
	DepartureDate       string  `json:"departure_date"`
	ReturnDate          *string `json:"return_date,omitempty"`
	Adults              int     `json:"adults"`
	Children            int     `json:"children"`
	Infants             int     `json:"infants"`
	CabinClass          string  `json:"cabin_class"`
	Currency            string  `json:"currency,omitempty"`
}

// Validate checks everything the upstream provider cannot search
// without. The entity identifiers are required in addition to the
// display codes: the upstream resolves locations by entity id, not by
// IATA code. Validate runs before any network call; defaults for
// passenger counts, currency and cabin class are applied later when the
// provider payload is built.
func (r *SearchRequest) Validate() error {
	if r.Origin == "" {
		return &MissingFieldError{Field: "origin"}
	}
	if r.Destination == "" {
		return &MissingFieldError{Field: "destination"}
	}
	if r.OriginEntityID == "" {
		return &MissingFieldError{Field: "origin_entity_id"}
	}
	if r.DestinationEntityID == "" {
		return &MissingFieldError{Field: "destination_entity_id"}
	}
	if strings.EqualFold(r.Origin, r.Destination) {
		return ErrSameAirports
	}
	if r.DepartureDate == "" {
		return &MissingFieldError{Field: "departure_date"}
	}
	if _, err := time.Parse(DateLayout, r.DepartureDate); err != nil {
		return &InvalidDateError{Field: "departure_date", Value: r.DepartureDate}
	}
	return nil
}

// MissingFieldError reports a required search field that was absent.
// It is fatal to the request and raised before any network call.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return e.Field + " is required"
}

// InvalidDateError reports a date that does not parse as a real
// calendar date. For the departure date this is fatal; an invalid
// return date is instead dropped from the outgoing request.
type InvalidDateError struct {
	Field string
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s %q is not a valid calendar date", e.Field, e.Value)
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const ErrSameAirports ValidationError = "origin and destination must be different"

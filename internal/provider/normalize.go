package provider

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Shahrukh0396/GFlights/internal/models"
)

// Defaults attached to every outgoing search. The upstream rejects
// requests without a market/country pair, and expects passenger counts
// as strings.
const (
	defaultCurrency    = "USD"
	defaultSortBy      = "best"
	defaultMarket      = "en-US"
	defaultCountryCode = "US"
)

// DefaultLocale is used for airport lookups when the caller does not
// pass one.
const DefaultLocale = "en-US"

// SearchPayload is the upstream's expected request body for
// POST /flights/search. Field names match the wire contract exactly.
type SearchPayload struct {
	OriginSkyID         string `json:"originSkyId"`
	DestinationSkyID    string `json:"destinationSkyId"`
	OriginEntityID      string `json:"originEntityId"`
	DestinationEntityID string `json:"destinationEntityId"`
	DepartureDate       string `json:"departureDate"`
	ReturnDate          string `json:"returnDate,omitempty"`
	CabinClass          string `json:"cabinClass"`
	Adults              string `json:"adults"`
	Children            string `json:"children"`
	Infants             string `json:"infants"`
	SortBy              string `json:"sortBy"`
	Currency            string `json:"currency"`
	Market              string `json:"market"`
	CountryCode         string `json:"countryCode"`
}

// BuildSearchPayload validates req and converts it into the provider's
// shape. It never performs network I/O, so a validation failure here
// guarantees no upstream call was issued.
//
// The departure date is checked strictly, but an unparsable return date
// only drops the field from the payload: the one-way search still goes
// out.
func BuildSearchPayload(req models.SearchRequest) (*SearchPayload, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	payload := &SearchPayload{
		OriginSkyID:         req.Origin,
		DestinationSkyID:    req.Destination,
		OriginEntityID:      req.OriginEntityID,
		DestinationEntityID: req.DestinationEntityID,
		DepartureDate:       req.DepartureDate,
		CabinClass:          normalizeCabinClass(req.CabinClass),
		Adults:              stringifyCount(req.Adults, 1),
		Children:            stringifyCount(req.Children, 0),
		Infants:             stringifyCount(req.Infants, 0),
		SortBy:              defaultSortBy,
		Currency:            currency,
		Market:              defaultMarket,
		CountryCode:         defaultCountryCode,
	}

	if req.ReturnDate != nil && *req.ReturnDate != "" {
		if _, err := time.Parse(models.DateLayout, *req.ReturnDate); err != nil {
			log.Printf("Dropping unparsable return date %q from %s-%s search", *req.ReturnDate, req.Origin, req.Destination)
		} else {
			payload.ReturnDate = *req.ReturnDate
		}
	}

	return payload, nil
}

// normalizeCabinClass lowers the app's cabin enumeration to the
// upstream's snake_case form. Anything unrecognized books economy.
func normalizeCabinClass(class string) string {
	switch strings.ToUpper(strings.TrimSpace(class)) {
	case models.CabinEconomy:
		return "economy"
	case models.CabinPremiumEconomy:
		return "premium_economy"
	case models.CabinBusiness:
		return "business"
	case models.CabinFirst:
		return "first"
	default:
		return "economy"
	}
}

func stringifyCount(n, floor int) string {
	if n < floor {
		n = floor
	}
	return strconv.Itoa(n)
}

package store

import (
	"github.com/Shahrukh0396/GFlights/internal/models"
	"github.com/Shahrukh0396/GFlights/pkg/currency"
)

// SeedPopularRoutes returns the routes shown before any usage data
// exists, ordered by popularity. Prices are rough averages in USD.
func SeedPopularRoutes() []models.PopularRoute {
	routes := []models.PopularRoute{
		{Origin: "CGK", Destination: "DPS", OriginCity: "Jakarta", DestinationCity: "Denpasar", AveragePrice: 85, Popularity: 98},
		{Origin: "CGK", Destination: "SIN", OriginCity: "Jakarta", DestinationCity: "Singapore", AveragePrice: 120, Popularity: 95},
		{Origin: "CGK", Destination: "SUB", OriginCity: "Jakarta", DestinationCity: "Surabaya", AveragePrice: 62, Popularity: 91},
		{Origin: "DPS", Destination: "SIN", OriginCity: "Denpasar", DestinationCity: "Singapore", AveragePrice: 140, Popularity: 87},
		{Origin: "CGK", Destination: "KUL", OriginCity: "Jakarta", DestinationCity: "Kuala Lumpur", AveragePrice: 98, Popularity: 85},
		{Origin: "CGK", Destination: "KNO", OriginCity: "Jakarta", DestinationCity: "Medan", AveragePrice: 75, Popularity: 82},
		{Origin: "CGK", Destination: "UPG", OriginCity: "Jakarta", DestinationCity: "Makassar", AveragePrice: 95, Popularity: 78},
		{Origin: "DPS", Destination: "SYD", OriginCity: "Denpasar", DestinationCity: "Sydney", AveragePrice: 310, Popularity: 74},
	}

	for i := range routes {
		routes[i].PriceDisplay = currency.Format(routes[i].AveragePrice, "USD")
	}

	return routes
}

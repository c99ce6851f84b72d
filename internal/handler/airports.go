package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Shahrukh0396/GFlights/internal/models"
	"github.com/Shahrukh0396/GFlights/internal/service"
)

type AirportsHandler struct {
	service *service.SearchService
}

func NewAirportsHandler(svc *service.SearchService) *AirportsHandler {
	return &AirportsHandler{service: svc}
}

// Search handles GET /airports/search?query=&locale=.
func (h *AirportsHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	airports, err := h.service.SearchAirports(ctx, c.QueryParam("query"), c.QueryParam("locale"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, models.AirportsResponse{
		Count:    len(airports),
		Airports: airports,
	})
}

// Nearby handles GET /airports/nearby?lat=&lng=&locale=.
func (h *AirportsHandler) Nearby(c echo.Context) error {
	ctx := c.Request().Context()

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse lat: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse lng: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	nearby, err := h.service.NearbyAirports(ctx, lat, lng, c.QueryParam("locale"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, nearby)
}

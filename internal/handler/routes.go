package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Shahrukh0396/GFlights/internal/models"
	"github.com/Shahrukh0396/GFlights/internal/service"
)

type RoutesHandler struct {
	service *service.SearchService
}

func NewRoutesHandler(svc *service.SearchService) *RoutesHandler {
	return &RoutesHandler{service: svc}
}

// Popular handles GET /routes/popular.
func (h *RoutesHandler) Popular(c echo.Context) error {
	routes := h.service.PopularRoutes(c.Request().Context())

	return c.JSON(http.StatusOK, models.PopularRoutesResponse{
		Count:  len(routes),
		Routes: routes,
	})
}

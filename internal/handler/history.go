package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Shahrukh0396/GFlights/internal/models"
	"github.com/Shahrukh0396/GFlights/internal/service"
)

type HistoryHandler struct {
	service *service.SearchService
}

func NewHistoryHandler(svc *service.SearchService) *HistoryHandler {
	return &HistoryHandler{service: svc}
}

// List handles GET /searches/recent.
func (h *HistoryHandler) List(c echo.Context) error {
	searches := h.service.RecentSearches(c.Request().Context())

	return c.JSON(http.StatusOK, models.RecentSearchesResponse{
		Count:    len(searches),
		Searches: searches,
	})
}

// Clear handles DELETE /searches/recent.
func (h *HistoryHandler) Clear(c echo.Context) error {
	if err := h.service.ClearRecentSearches(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "storage_error",
			Message: "Failed to clear search history: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	return c.NoContent(http.StatusNoContent)
}

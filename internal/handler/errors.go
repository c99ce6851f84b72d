package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Shahrukh0396/GFlights/internal/models"
	"github.com/Shahrukh0396/GFlights/internal/provider"
)

// writeError maps domain errors onto HTTP responses. Validation
// failures are the caller's fault (400); rejected credentials are 401;
// any other upstream or transport failure is reported as 502.
func writeError(c echo.Context, err error) error {
	var missingField *models.MissingFieldError
	var invalidDate *models.InvalidDateError
	var validationErr models.ValidationError
	if errors.As(err, &missingField) || errors.As(err, &invalidDate) || errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	var authErr *provider.AuthError
	if errors.As(err, &authErr) {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "auth_required",
			Message: err.Error(),
			Code:    http.StatusUnauthorized,
		})
	}

	return c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:   "search_failed",
		Message: "Failed to search flights: " + err.Error(),
		Code:    http.StatusBadGateway,
	})
}

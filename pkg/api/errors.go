package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/redditart/commissioner/pkg/payment"
	"github.com/redditart/commissioner/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, services.ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if errors.Is(err, services.ErrUpstreamUnavailable) {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream service unavailable")
	}
	if errors.Is(err, payment.ErrInvalidSignature) || errors.Is(err, payment.ErrMalformedEvent) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid webhook payload")
	}
	if errors.Is(err, payment.ErrGateway) {
		return echo.NewHTTPError(http.StatusBadGateway, "payment gateway unavailable")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

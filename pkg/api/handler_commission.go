package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/redditart/commissioner/pkg/services"
)

// validateCommissionHandler handles POST /api/commissions/validate. Policy
// rejections come back as 200 with valid=false; only malformed requests and
// upstream outages are error statuses.
func (s *Server) validateCommissionHandler(c *echo.Context) error {
	var body ValidateCommissionBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if body.CommissionType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "commission_type is required")
	}

	result, err := s.validator.Validate(c.Request().Context(), services.ValidateCommissionRequest{
		CommissionType: body.CommissionType,
		Subreddit:      body.Subreddit,
		PostIDOrURL:    body.PostIDOrURL,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

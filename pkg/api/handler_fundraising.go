package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// fundraisingProgressHandler handles GET /api/fundraising/progress. With a
// ?subreddit= filter it returns that community's goal; otherwise the overall
// rollup plus every tracked goal.
func (s *Server) fundraisingProgressHandler(c *echo.Context) error {
	ctx := c.Request().Context()

	if sub := c.QueryParam("subreddit"); sub != "" {
		progress, err := s.ledger.GetProgress(ctx, sub)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(http.StatusOK, progress)
	}

	overall, err := s.ledger.GetOverall(ctx)
	if err != nil {
		return mapServiceError(err)
	}
	goals, err := s.ledger.ListProgress(ctx)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &FundraisingResponse{
		Overall:    overall,
		Subreddits: goals,
	})
}

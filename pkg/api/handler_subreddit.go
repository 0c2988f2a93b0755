package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/redditart/commissioner/pkg/models"
	"github.com/redditart/commissioner/pkg/services"
)

// listSubredditsHandler handles GET /api/subreddits.
func (s *Server) listSubredditsHandler(c *echo.Context) error {
	subs, err := s.subreddits.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]SubredditSummary, 0, len(subs))
	for _, sub := range subs {
		out = append(out, SubredditSummary{
			Name:        sub.Name,
			DisplayName: sub.DisplayName,
			Over18:      sub.Over18,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// validateSubredditHandler handles POST /api/subreddits/validate. Confirms
// the subreddit exists upstream and registers it locally.
func (s *Server) validateSubredditHandler(c *echo.Context) error {
	var body ValidateSubredditBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if body.Subreddit == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "subreddit is required")
	}

	result, err := s.validator.Validate(c.Request().Context(), services.ValidateCommissionRequest{
		CommissionType: models.CommissionRandomSubreddit,
		Subreddit:      body.Subreddit,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

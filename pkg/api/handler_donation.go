package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/redditart/commissioner/pkg/models"
	"github.com/redditart/commissioner/pkg/payment"
	"github.com/redditart/commissioner/pkg/reddit"
	"github.com/redditart/commissioner/pkg/services"
)

// minDonationCents is the smallest accepted donation.
const minDonationCents = 100

// Column limits on the donation row. Enforced here so a bad request fails at
// the edge instead of surfacing as a storage error during webhook admission.
const (
	maxMessageLen        = 100
	maxRedditUsernameLen = 20
)

// parseAmountUSD converts a dollar string like "25" or "25.50" to cents.
// Decimal string arithmetic only; no floats near money.
func parseAmountUSD(raw string) (int64, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "$"))
	if raw == "" {
		return 0, fmt.Errorf("amount is required")
	}

	dollarPart, centPart, _ := strings.Cut(raw, ".")
	dollars, err := strconv.ParseInt(dollarPart, 10, 64)
	if err != nil || dollars < 0 {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}

	var cents int64
	if centPart != "" {
		if len(centPart) > 2 {
			return 0, fmt.Errorf("invalid amount %q", raw)
		}
		cents, err = strconv.ParseInt(centPart, 10, 64)
		if err != nil || cents < 0 {
			return 0, fmt.Errorf("invalid amount %q", raw)
		}
		if len(centPart) == 1 {
			cents *= 10
		}
	}
	return dollars*100 + cents, nil
}

// intentMetadata flattens the donation fields into gateway metadata. The
// metadata round-trips through the gateway and drives webhook admission.
func intentMetadata(body *PaymentIntentBody) (map[string]string, error) {
	md := map[string]string{
		"donation_type": body.DonationType,
		"is_anonymous":  strconv.FormatBool(body.IsAnonymous),
	}
	if body.CommissionType != "" {
		md["commission_type"] = body.CommissionType
	}
	if body.Subreddit != "" {
		md["subreddit"] = services.NormalizeName(body.Subreddit)
	}
	if body.PostIDOrURL != "" {
		ref, err := reddit.ParsePostURL(body.PostIDOrURL)
		if err != nil {
			return nil, fmt.Errorf("unrecognized post reference %q", body.PostIDOrURL)
		}
		md["post_id"] = ref.PostID
		if ref.Subreddit != "" {
			md["subreddit"] = services.NormalizeName(ref.Subreddit)
		}
	}
	if body.Message != "" {
		md["message"] = body.Message
	}
	if body.RedditUsername != "" {
		md["reddit_username"] = body.RedditUsername
	}
	return md, nil
}

func bindIntentBody(c *echo.Context) (*PaymentIntentBody, int64, error) {
	var body PaymentIntentBody
	if err := c.Bind(&body); err != nil {
		return nil, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	amount, err := parseAmountUSD(body.AmountUSD)
	if err != nil {
		return nil, 0, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if amount < minDonationCents {
		return nil, 0, echo.NewHTTPError(http.StatusBadRequest, "minimum donation is $1")
	}

	switch body.DonationType {
	case models.DonationTypeCommission, models.DonationTypeSupport:
	default:
		return nil, 0, echo.NewHTTPError(http.StatusBadRequest, "donation_type must be commission or support")
	}

	if len(body.Message) > maxMessageLen {
		return nil, 0, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("message must be at most %d characters", maxMessageLen))
	}
	if len(body.RedditUsername) > maxRedditUsernameLen {
		return nil, 0, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("reddit_username must be at most %d characters", maxRedditUsernameLen))
	}
	return &body, amount, nil
}

// resolveTier stamps the tier for this amount into the intent metadata. The
// tier is never taken from the client; it is a pure function of what was paid.
func (s *Server) resolveTier(c *echo.Context, amount int64, md map[string]string) error {
	tier, err := s.tiers.ForAmount(c.Request().Context(), amount)
	if err != nil {
		return mapServiceError(err)
	}
	if tier != nil {
		md["tier"] = tier.Name
	}
	return nil
}

// createPaymentIntentHandler handles POST /api/donations/create-payment-intent.
func (s *Server) createPaymentIntentHandler(c *echo.Context) error {
	body, amount, err := bindIntentBody(c)
	if err != nil {
		return err
	}

	md, err := intentMetadata(body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := s.resolveTier(c, amount, md); err != nil {
		return err
	}

	intent, err := s.gateway.CreateIntent(c.Request().Context(), payment.IntentParams{
		Amount:   amount,
		Currency: "usd",
		Metadata: md,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &IntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
	})
}

// updatePaymentIntentHandler handles PUT /api/donations/payment-intent/:id/update.
// The form re-submits while the user edits; the gateway treats identical
// values as no-ops.
func (s *Server) updatePaymentIntentHandler(c *echo.Context) error {
	intentID := c.Param("id")
	if intentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "payment intent id is required")
	}

	body, amount, err := bindIntentBody(c)
	if err != nil {
		return err
	}

	md, err := intentMetadata(body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := s.resolveTier(c, amount, md); err != nil {
		return err
	}

	intent, err := s.gateway.UpdateIntent(c.Request().Context(), intentID, payment.IntentParams{
		Amount:   amount,
		Metadata: md,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &IntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
	})
}

// getDonationHandler handles GET /api/donations/:intent_id.
func (s *Server) getDonationHandler(c *echo.Context) error {
	intentID := c.Param("intent_id")
	if intentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "intent id is required")
	}

	d, err := s.donations.GetByIntentID(c.Request().Context(), intentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, services.Summary(d))
}

// listDonationsHandler handles GET /api/donations. Succeeded donations only,
// newest first. Optional query params: limit, offset.
func (s *Server) listDonationsHandler(c *echo.Context) error {
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	offset := 0
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	ds, total, err := s.donations.List(c.Request().Context(), limit, offset)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &DonationListResponse{Donations: make([]models.DonationSummary, 0, len(ds)), Total: total}
	for _, d := range ds {
		resp.Donations = append(resp.Donations, services.Summary(d))
	}
	return c.JSON(http.StatusOK, resp)
}

// donationsBySubredditHandler handles GET /api/donations/by-subreddit.
func (s *Server) donationsBySubredditHandler(c *echo.Context) error {
	groups, err := s.ledger.GetBySubreddit(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, groups)
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/redditart/commissioner/pkg/config"
	"github.com/redditart/commissioner/pkg/events"
	"github.com/redditart/commissioner/pkg/payment"
	"github.com/redditart/commissioner/pkg/reddit"
	"github.com/redditart/commissioner/pkg/services"
	testdb "github.com/redditart/commissioner/test/database"
)

// fakeSocial is the reddit surface the validator needs in handler tests.
type fakeSocial struct {
	subreddits map[string]*reddit.Subreddit
	posts      map[string]*reddit.Post
	hot        map[string][]reddit.Post
}

func (f *fakeSocial) AboutSubreddit(_ context.Context, name string) (*reddit.Subreddit, error) {
	if sub, ok := f.subreddits[name]; ok {
		return sub, nil
	}
	return nil, reddit.ErrNotFound
}

func (f *fakeSocial) GetPost(_ context.Context, postID string) (*reddit.Post, error) {
	if p, ok := f.posts[postID]; ok {
		return p, nil
	}
	return nil, reddit.ErrNotFound
}

func (f *fakeSocial) Hot(_ context.Context, subreddit string, _ int) ([]reddit.Post, error) {
	return f.hot[subreddit], nil
}

type serverFixture struct {
	server    *Server
	gateway   *payment.FakeGateway
	donations *services.DonationService
	tasks     *services.TaskService
	products  *services.ProductService
	ledger    *services.LedgerService
	social    *fakeSocial
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	db := testdb.NewTestClient(t)

	cfg := &config.Config{DefaultGoalCents: 10000}
	cfg.Queue = config.DefaultQueueConfig()

	// Tier bands as the migration seeds them: $5 reaches bronze, $25 the
	// hd-quality sapphire.
	for _, band := range []struct {
		name string
		min  int64
		hd   bool
	}{
		{name: "bronze", min: 500},
		{name: "sapphire", min: 2500, hd: true},
	} {
		_, err := db.Client.Tier.Create().
			SetName(band.name).
			SetDisplayName(band.name).
			SetMinAmount(band.min).
			SetHd(band.hd).
			Save(context.Background())
		require.NoError(t, err)
	}

	social := &fakeSocial{
		subreddits: map[string]*reddit.Subreddit{
			"golf": {Name: "golf", Title: "Golf", Over18: false},
		},
		posts: map[string]*reddit.Post{
			"abc123": {ID: "abc123", Subreddit: "hiking", Title: "Trail views", Author: "walker"},
		},
		hot: map[string][]reddit.Post{},
	}

	subreddits := services.NewSubredditService(db.Client)
	donations := services.NewDonationService(db.Client)
	tasks := services.NewTaskService(db.Client, cfg.Queue)
	ledger := services.NewLedgerService(db.Client, cfg.DefaultGoalCents)
	products := services.NewProductService(db.Client)
	publisher := events.NewEventPublisher(db.DB())
	broker := events.NewProgressBroker(db.Client, publisher)
	gateway := payment.NewFakeGateway()

	server := NewServer(ServerDeps{
		Config:     cfg,
		DB:         db,
		Gateway:    gateway,
		Validator:  services.NewCommissionValidator(social, subreddits, nil),
		Donations:  donations,
		Tasks:      tasks,
		Ledger:     ledger,
		Subreddits: subreddits,
		Products:   products,
		Tiers:      services.NewTierService(db.Client),
		Broker:     broker,
		Publisher:  publisher,
	})

	return &serverFixture{
		server:    server,
		gateway:   gateway,
		donations: donations,
		tasks:     tasks,
		products:  products,
		ledger:    ledger,
		social:    social,
	}
}

// do performs a request against the server's router.
func (f *serverFixture) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.server.Echo().ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

// webhook builds a signed fake-gateway webhook request body.
func succeededWebhook(intentID string, amount int64, md map[string]string) payment.WebhookEvent {
	return payment.WebhookEvent{
		Kind:     payment.WebhookPaymentSucceeded,
		IntentID: intentID,
		Amount:   amount,
		Currency: "usd",
		Metadata: md,
	}
}

func commissionMetadata() map[string]string {
	return map[string]string{
		"donation_type":   "commission",
		"commission_type": "random_subreddit",
		"subreddit":       "golf",
		"reddit_username": "testhiker",
		"is_anonymous":    "false",
	}
}

func TestHealthEndpoint(t *testing.T) {
	f := newServerFixture(t)
	rec := f.do(t, http.MethodGet, "/api/v1/health", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[HealthResponse](t, rec)
	require.Equal(t, "healthy", resp.Status)
	require.Equal(t, "healthy", resp.Checks["database"].Status)
}

func TestValidateCommission(t *testing.T) {
	f := newServerFixture(t)

	t.Run("random subreddit", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/commissions/validate",
			ValidateCommissionBody{CommissionType: "random_subreddit", Subreddit: "golf"}, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		result := decodeJSON[map[string]any](t, rec)
		require.Equal(t, true, result["valid"])
		require.Equal(t, "golf", result["subreddit"])
	})

	t.Run("unknown subreddit is a policy rejection", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/commissions/validate",
			ValidateCommissionBody{CommissionType: "random_subreddit", Subreddit: "nope"}, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		result := decodeJSON[map[string]any](t, rec)
		require.Equal(t, false, result["valid"])
		require.Equal(t, "subreddit_not_found", result["reason"])
	})

	t.Run("specific post resolves subreddit", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/commissions/validate",
			ValidateCommissionBody{
				CommissionType: "specific_post",
				PostIDOrURL:    "https://reddit.com/r/hiking/comments/abc123/trail_views/",
			}, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		result := decodeJSON[map[string]any](t, rec)
		require.Equal(t, true, result["valid"])
		require.Equal(t, "hiking", result["subreddit"])
		require.Equal(t, "abc123", result["post_id"])
	})

	t.Run("missing commission type", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/commissions/validate", map[string]string{}, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreatePaymentIntent(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodPost, "/api/donations/create-payment-intent", PaymentIntentBody{
		AmountUSD:      "25",
		DonationType:   "commission",
		CommissionType: "random_subreddit",
		Subreddit:      "golf",
		RedditUsername: "testhiker",
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[IntentResponse](t, rec)
	require.NotEmpty(t, resp.PaymentIntentID)
	require.NotEmpty(t, resp.ClientSecret)
	require.Equal(t, int64(2500), resp.Amount)

	t.Run("below minimum", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/donations/create-payment-intent", PaymentIntentBody{
			AmountUSD: "0.50", DonationType: "support",
		}, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad donation type", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/donations/create-payment-intent", PaymentIntentBody{
			AmountUSD: "25", DonationType: "tip",
		}, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("over-length message", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/donations/create-payment-intent", PaymentIntentBody{
			AmountUSD: "25", DonationType: "support", Message: strings.Repeat("x", 101),
		}, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("over-length reddit_username", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/donations/create-payment-intent", PaymentIntentBody{
			AmountUSD: "25", DonationType: "support", RedditUsername: strings.Repeat("x", 21),
		}, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("gateway outage is 502", func(t *testing.T) {
		f.gateway.FailNext = true
		rec := f.do(t, http.MethodPost, "/api/donations/create-payment-intent", PaymentIntentBody{
			AmountUSD: "25", DonationType: "support",
		}, nil)
		require.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestCreatePaymentIntent_TierFromAmount(t *testing.T) {
	f := newServerFixture(t)
	ctx := context.Background()

	t.Run("amount reaching a band is stamped", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/donations/create-payment-intent", PaymentIntentBody{
			AmountUSD: "25", DonationType: "support",
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeJSON[IntentResponse](t, rec)

		intent, err := f.gateway.GetIntent(ctx, resp.PaymentIntentID)
		require.NoError(t, err)
		require.Equal(t, "sapphire", intent.Metadata["tier"])
	})

	t.Run("client-claimed tier is ignored", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/donations/create-payment-intent", map[string]any{
			"amount_usd":    "1",
			"donation_type": "support",
			"tier":          "sapphire",
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeJSON[IntentResponse](t, rec)

		intent, err := f.gateway.GetIntent(ctx, resp.PaymentIntentID)
		require.NoError(t, err)
		require.NotContains(t, intent.Metadata, "tier")
	})

	t.Run("update re-resolves after an amount change", func(t *testing.T) {
		create := f.do(t, http.MethodPost, "/api/donations/create-payment-intent", PaymentIntentBody{
			AmountUSD: "25", DonationType: "support",
		}, nil)
		require.Equal(t, http.StatusOK, create.Code)
		created := decodeJSON[IntentResponse](t, create)

		rec := f.do(t, http.MethodPut, "/api/donations/payment-intent/"+created.PaymentIntentID+"/update",
			PaymentIntentBody{AmountUSD: "5", DonationType: "support"}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		intent, err := f.gateway.GetIntent(ctx, created.PaymentIntentID)
		require.NoError(t, err)
		require.Equal(t, "bronze", intent.Metadata["tier"])
	})
}

func TestUpdatePaymentIntent(t *testing.T) {
	f := newServerFixture(t)

	create := f.do(t, http.MethodPost, "/api/donations/create-payment-intent", PaymentIntentBody{
		AmountUSD: "10", DonationType: "support",
	}, nil)
	require.Equal(t, http.StatusOK, create.Code)
	created := decodeJSON[IntentResponse](t, create)

	rec := f.do(t, http.MethodPut, "/api/donations/payment-intent/"+created.PaymentIntentID+"/update",
		PaymentIntentBody{AmountUSD: "40", DonationType: "support"}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeJSON[IntentResponse](t, rec)
	require.Equal(t, int64(4000), updated.Amount)
}

func TestParseAmountUSD(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "25", want: 2500},
		{in: "25.50", want: 2550},
		{in: "25.5", want: 2550},
		{in: "$10", want: 1000},
		{in: "0.99", want: 99},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "10.999", wantErr: true},
		{in: "-5", wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseAmountUSD(tc.in)
		if tc.wantErr {
			require.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

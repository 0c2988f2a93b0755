package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test_secret"

// signBody produces a valid Stripe-Signature header for the given body.
func signBody(t *testing.T, body []byte) string {
	t.Helper()
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	_, err := fmt.Fprintf(mac, "%d.%s", ts, body)
	require.NoError(t, err)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func eventBody(t *testing.T, eventType string, object map[string]any) []byte {
	t.Helper()
	raw, err := json.Marshal(object)
	require.NoError(t, err)
	body, err := json.Marshal(map[string]any{
		"id":         "evt_test",
		"object":     "event",
		"api_version": "2025-03-31",
		"type":       eventType,
		"data":       map[string]any{"object": json.RawMessage(raw)},
	})
	require.NoError(t, err)
	return body
}

func newTestStripeGateway() *StripeGateway {
	return &StripeGateway{webhookSecret: testWebhookSecret}
}

func TestHandleWebhook_PaymentSucceeded(t *testing.T) {
	g := newTestStripeGateway()
	body := eventBody(t, "payment_intent.succeeded", map[string]any{
		"id":       "pi_123",
		"amount":   2500,
		"currency": "usd",
		"metadata": map[string]string{"donation_type": "commission", "subreddit": "golf"},
	})

	event, err := g.HandleWebhook(body, signBody(t, body))
	require.NoError(t, err)
	assert.Equal(t, WebhookPaymentSucceeded, event.Kind)
	assert.Equal(t, "pi_123", event.IntentID)
	assert.Equal(t, int64(2500), event.Amount)
	assert.Equal(t, "usd", event.Currency)
	assert.Equal(t, "golf", event.Metadata["subreddit"])
}

func TestHandleWebhook_PaymentFailed(t *testing.T) {
	g := newTestStripeGateway()
	body := eventBody(t, "payment_intent.payment_failed", map[string]any{
		"id": "pi_456", "amount": 1000, "currency": "usd",
	})

	event, err := g.HandleWebhook(body, signBody(t, body))
	require.NoError(t, err)
	assert.Equal(t, WebhookPaymentFailed, event.Kind)
	assert.Equal(t, "pi_456", event.IntentID)
}

func TestHandleWebhook_CheckoutCompleted(t *testing.T) {
	g := newTestStripeGateway()
	body := eventBody(t, "checkout.session.completed", map[string]any{
		"id":             "cs_test",
		"payment_intent": "pi_789",
		"amount_total":   5000,
		"currency":       "usd",
	})

	event, err := g.HandleWebhook(body, signBody(t, body))
	require.NoError(t, err)
	assert.Equal(t, WebhookPaymentSucceeded, event.Kind)
	assert.Equal(t, "pi_789", event.IntentID)
	assert.Equal(t, int64(5000), event.Amount)
}

func TestHandleWebhook_UnknownTypeIgnored(t *testing.T) {
	g := newTestStripeGateway()
	body := eventBody(t, "customer.created", map[string]any{"id": "cus_1"})

	event, err := g.HandleWebhook(body, signBody(t, body))
	require.NoError(t, err)
	assert.Equal(t, WebhookIgnored, event.Kind)
}

func TestHandleWebhook_BadSignature(t *testing.T) {
	g := newTestStripeGateway()
	body := eventBody(t, "payment_intent.succeeded", map[string]any{"id": "pi_123"})

	_, err := g.HandleWebhook(body, "t=1,v1=deadbeef")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = g.HandleWebhook(body, "")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestHandleWebhook_TamperedBody(t *testing.T) {
	g := newTestStripeGateway()
	body := eventBody(t, "payment_intent.succeeded", map[string]any{"id": "pi_123"})
	sig := signBody(t, body)

	tampered := eventBody(t, "payment_intent.succeeded", map[string]any{"id": "pi_999"})
	_, err := g.HandleWebhook(tampered, sig)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestFakeGateway(t *testing.T) {
	g := NewFakeGateway()

	intent, err := g.CreateIntent(t.Context(), IntentParams{Amount: 2500, Currency: "usd"})
	require.NoError(t, err)
	assert.NotEmpty(t, intent.ID)
	assert.NotEmpty(t, intent.ClientSecret)

	updated, err := g.UpdateIntent(t.Context(), intent.ID, IntentParams{Amount: 5000})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), updated.Amount)

	got, err := g.GetIntent(t.Context(), intent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), got.Amount)

	body, _ := json.Marshal(WebhookEvent{Kind: WebhookPaymentSucceeded, IntentID: intent.ID, Amount: 5000, Currency: "usd"})
	event, err := g.HandleWebhook(body, FakeSignature)
	require.NoError(t, err)
	assert.Equal(t, intent.ID, event.IntentID)

	_, err = g.HandleWebhook(body, "wrong")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

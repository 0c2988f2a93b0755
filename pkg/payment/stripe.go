package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/redditart/commissioner/pkg/config"
)

// StripeGateway implements Gateway against the Stripe API.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

// NewStripeGateway builds a gateway from payment config.
func NewStripeGateway(cfg config.PaymentConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &StripeGateway{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
	}
}

// CreateIntent creates a payment intent with the donation fields attached as
// metadata. The metadata travels through Stripe and comes back on the
// webhook, so webhook admission needs no session state.
func (g *StripeGateway) CreateIntent(ctx context.Context, params IntentParams) (*Intent, error) {
	p := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(params.Amount),
		Currency: stripe.String(params.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	p.Context = ctx
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(p)
	if err != nil {
		return nil, fmt.Errorf("%w: create intent: %v", ErrGateway, err)
	}
	return intentFromStripe(pi), nil
}

// UpdateIntent changes amount and/or metadata on an existing intent. Stripe
// updates are idempotent for identical values, so the form can re-submit
// freely while the user edits.
func (g *StripeGateway) UpdateIntent(ctx context.Context, intentID string, params IntentParams) (*Intent, error) {
	p := &stripe.PaymentIntentParams{}
	p.Context = ctx
	if params.Amount > 0 {
		p.Amount = stripe.Int64(params.Amount)
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.Update(intentID, p)
	if err != nil {
		return nil, fmt.Errorf("%w: update intent %s: %v", ErrGateway, intentID, err)
	}
	return intentFromStripe(pi), nil
}

// GetIntent fetches an intent's current state.
func (g *StripeGateway) GetIntent(ctx context.Context, intentID string) (*Intent, error) {
	p := &stripe.PaymentIntentParams{}
	p.Context = ctx
	pi, err := g.api.PaymentIntents.Get(intentID, p)
	if err != nil {
		return nil, fmt.Errorf("%w: get intent %s: %v", ErrGateway, intentID, err)
	}
	return intentFromStripe(pi), nil
}

// HandleWebhook verifies the signature and returns the typed event. All
// verification failures map to ErrInvalidSignature; a verified but
// unparseable body maps to ErrMalformedEvent.
func (g *StripeGateway) HandleWebhook(rawBody []byte, signatureHeader string) (*WebhookEvent, error) {
	// Webhook payloads keep the API version the endpoint was created with,
	// which drifts from the SDK's pinned version. Signature verification is
	// what matters here.
	event, err := webhook.ConstructEventWithOptions(rawBody, signatureHeader, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return parseEvent(event)
}

// parseEvent maps a verified Stripe event onto the WebhookEvent union.
func parseEvent(event stripe.Event) (*WebhookEvent, error) {
	switch event.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
		}
		if pi.ID == "" {
			return nil, fmt.Errorf("%w: payment intent without id", ErrMalformedEvent)
		}
		kind := WebhookPaymentSucceeded
		if event.Type == "payment_intent.payment_failed" {
			kind = WebhookPaymentFailed
		}
		return &WebhookEvent{
			Kind:     kind,
			IntentID: pi.ID,
			Amount:   pi.Amount,
			Currency: string(pi.Currency),
			Metadata: pi.Metadata,
		}, nil

	case "checkout.session.completed":
		// Treated the same as payment_intent.succeeded once the session
		// carries a completed intent.
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
		}
		if session.PaymentIntent == nil || session.PaymentIntent.ID == "" {
			return &WebhookEvent{Kind: WebhookIgnored}, nil
		}
		return &WebhookEvent{
			Kind:     WebhookPaymentSucceeded,
			IntentID: session.PaymentIntent.ID,
			Amount:   session.AmountTotal,
			Currency: string(session.Currency),
			Metadata: session.Metadata,
		}, nil

	default:
		return &WebhookEvent{Kind: WebhookIgnored}, nil
	}
}

func intentFromStripe(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Metadata:     pi.Metadata,
	}
}

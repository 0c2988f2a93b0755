// Package payment is the payment gateway adapter. The Gateway interface
// exposes exactly the three calls the rest of the system makes; StripeGateway
// is the production implementation and FakeGateway backs tests.
package payment

import (
	"context"
	"errors"
)

var (
	// ErrInvalidSignature means webhook signature verification failed.
	// Returned as 400 so the gateway will not retry.
	ErrInvalidSignature = errors.New("payment: invalid webhook signature")

	// ErrMalformedEvent means the signed body did not deserialize into a
	// known event shape. Also 400.
	ErrMalformedEvent = errors.New("payment: malformed webhook event")

	// ErrGateway wraps transient upstream failures. Returned as 5xx so the
	// gateway retries.
	ErrGateway = errors.New("payment: gateway unavailable")
)

// WebhookKind is the variant tag of a parsed webhook event.
type WebhookKind string

const (
	// WebhookPaymentSucceeded admits the donation and enqueues its task.
	WebhookPaymentSucceeded WebhookKind = "payment_succeeded"

	// WebhookPaymentFailed marks the donation failed.
	WebhookPaymentFailed WebhookKind = "payment_failed"

	// WebhookIgnored is any event type the system does not act on.
	WebhookIgnored WebhookKind = "ignored"
)

// WebhookEvent is the typed result of verifying and parsing a webhook call.
type WebhookEvent struct {
	Kind     WebhookKind
	IntentID string
	Amount   int64 // minor currency units
	Currency string
	Metadata map[string]string
}

// Intent is a created or updated payment intent.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Metadata     map[string]string
}

// IntentParams are the caller-supplied intent fields. On update, zero Amount
// and nil Metadata leave the existing values untouched.
type IntentParams struct {
	Amount   int64
	Currency string
	Metadata map[string]string
}

// Gateway is the payment processor surface the service depends on.
type Gateway interface {
	CreateIntent(ctx context.Context, params IntentParams) (*Intent, error)
	UpdateIntent(ctx context.Context, intentID string, params IntentParams) (*Intent, error)
	GetIntent(ctx context.Context, intentID string) (*Intent, error)
	HandleWebhook(rawBody []byte, signatureHeader string) (*WebhookEvent, error)
}

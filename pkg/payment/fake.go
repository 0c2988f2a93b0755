package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// FakeGateway is an in-memory Gateway for tests and local development. Its
// webhook "signature" is a shared literal, and its webhook body is the
// WebhookEvent JSON itself.
type FakeGateway struct {
	mu      sync.Mutex
	intents map[string]*Intent
	nextID  int

	// FailNext makes the next API call return ErrGateway.
	FailNext bool
}

// FakeSignature is the signature header FakeGateway accepts.
const FakeSignature = "fake-valid-signature"

// NewFakeGateway creates an empty fake gateway.
func NewFakeGateway() *FakeGateway {
	return &FakeGateway{intents: make(map[string]*Intent)}
}

func (g *FakeGateway) CreateIntent(_ context.Context, params IntentParams) (*Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailNext {
		g.FailNext = false
		return nil, ErrGateway
	}
	g.nextID++
	intent := &Intent{
		ID:           fmt.Sprintf("pi_fake_%06d", g.nextID),
		ClientSecret: fmt.Sprintf("pi_fake_%06d_secret", g.nextID),
		Amount:       params.Amount,
		Currency:     params.Currency,
		Metadata:     make(map[string]string, len(params.Metadata)),
	}
	for k, v := range params.Metadata {
		intent.Metadata[k] = v
	}
	g.intents[intent.ID] = intent
	return intent, nil
}

func (g *FakeGateway) UpdateIntent(_ context.Context, intentID string, params IntentParams) (*Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailNext {
		g.FailNext = false
		return nil, ErrGateway
	}
	intent, ok := g.intents[intentID]
	if !ok {
		return nil, fmt.Errorf("%w: no such intent %s", ErrGateway, intentID)
	}
	if params.Amount > 0 {
		intent.Amount = params.Amount
	}
	if params.Metadata != nil {
		if intent.Metadata == nil {
			intent.Metadata = make(map[string]string, len(params.Metadata))
		}
		for k, v := range params.Metadata {
			intent.Metadata[k] = v
		}
	}
	return intent, nil
}

func (g *FakeGateway) GetIntent(_ context.Context, intentID string) (*Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	intent, ok := g.intents[intentID]
	if !ok {
		return nil, fmt.Errorf("%w: no such intent %s", ErrGateway, intentID)
	}
	return intent, nil
}

func (g *FakeGateway) HandleWebhook(rawBody []byte, signatureHeader string) (*WebhookEvent, error) {
	if signatureHeader != FakeSignature {
		return nil, ErrInvalidSignature
	}
	var event WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if event.Kind == "" || event.IntentID == "" {
		return nil, ErrMalformedEvent
	}
	return &event, nil
}

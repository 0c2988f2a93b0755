package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/redditart/commissioner/pkg/config"
)

// Rating is the LLM's judgment of one post for an agent.
type Rating struct {
	Score          float64 `json:"score"`          // 0..10
	Classification string  `json:"classification"` // e.g. "artistic", "welcome", "skip"
	Text           string  `json:"text"`           // generated comment text, empty when skipping
	Reason         string  `json:"reason"`
}

// Scorer performs LLM-assisted decisioning for the Reddit agents: classify a
// post, score it, and draft the comment the agent would leave.
type Scorer struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

// NewScorer builds a Scorer from upstream config.
func NewScorer(cfg config.UpstreamConfig) *Scorer {
	clientCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	return &Scorer{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.LLMModel,
		timeout: cfg.LLMTimeout,
		limiter: apiLimiter(cfg.LLMRatePerMinute),
	}
}

// newScorerWithClient is used by tests to point at a stub server.
func newScorerWithClient(client *openai.Client, model string) *Scorer {
	return &Scorer{client: client, model: model, limiter: apiLimiter(0)}
}

// Rate asks the LLM to judge a post against the agent's instruction prompt.
// The instruction defines the classification labels and what the generated
// text should be; Rate enforces only the JSON contract.
func (s *Scorer) Rate(ctx context.Context, instruction, postTitle, postBody string) (*Rating, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	ctx, cancel := callContext(ctx, s.timeout)
	defer cancel()

	user := fmt.Sprintf("Post title: %s\nPost body: %s", postTitle, truncate(postBody, 2000))

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", ErrUpstream)
	}

	content := resp.Choices[0].Message.Content
	if isRefusal(content) {
		// A refusal is a "skip", not an error; agents simply move on.
		return &Rating{Score: 0, Classification: "skip", Reason: "refused"}, nil
	}

	var rating Rating
	if err := json.Unmarshal([]byte(content), &rating); err != nil {
		return nil, fmt.Errorf("%w: malformed rating JSON: %v", ErrUpstream, err)
	}
	if rating.Score < 0 {
		rating.Score = 0
	}
	if rating.Score > 10 {
		rating.Score = 10
	}
	return &rating, nil
}

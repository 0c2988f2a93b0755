package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/redditart/commissioner/pkg/config"
)

// PostContext is what the designer knows about the source post.
type PostContext struct {
	Subreddit      string
	Title          string
	Body           string
	CommentSummary string
}

// Design is the LLM's product concept for one commission.
type Design struct {
	Theme            string `json:"theme"`
	ImageTitle       string `json:"image_title"`
	ImageDescription string `json:"image_description"`
}

// Designer turns a Reddit post into an artwork concept via chat completion.
type Designer struct {
	client        *openai.Client
	model         string
	promptVersion string
	timeout       time.Duration
	limiter       *rate.Limiter
}

// NewDesigner builds a Designer from upstream config.
func NewDesigner(cfg config.UpstreamConfig) *Designer {
	clientCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	return &Designer{
		client:        openai.NewClientWithConfig(clientCfg),
		model:         cfg.LLMModel,
		promptVersion: cfg.PromptVersion,
		timeout:       cfg.LLMTimeout,
		limiter:       apiLimiter(cfg.LLMRatePerMinute),
	}
}

// newDesignerWithClient is used by tests to point at a stub server.
func newDesignerWithClient(client *openai.Client, model, promptVersion string) *Designer {
	return &Designer{
		client:        client,
		model:         model,
		promptVersion: promptVersion,
		limiter:       apiLimiter(0),
	}
}

// PromptVersion returns the template version recorded on ProductInfo rows.
func (d *Designer) PromptVersion() string {
	return d.promptVersion
}

// DesignProduct asks the LLM for {theme, image_title, image_description}.
// Returns ErrContentPolicy on refusals (permanent) and ErrUpstream on
// transport failures (retryable).
func (d *Designer) DesignProduct(ctx context.Context, post PostContext) (*Design, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	ctx, cancel := callContext(ctx, d.timeout)
	defer cancel()

	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: d.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: designerSystemPrompt(d.promptVersion)},
			{Role: openai.ChatMessageRoleUser, Content: designerUserPrompt(post)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", ErrUpstream)
	}

	content := resp.Choices[0].Message.Content
	if resp.Choices[0].FinishReason == openai.FinishReasonContentFilter || isRefusal(content) {
		return nil, ErrContentPolicy
	}

	var design Design
	if err := json.Unmarshal([]byte(content), &design); err != nil {
		return nil, fmt.Errorf("%w: malformed design JSON: %v", ErrUpstream, err)
	}
	if design.Theme == "" || design.ImageTitle == "" || design.ImageDescription == "" {
		return nil, fmt.Errorf("%w: incomplete design", ErrUpstream)
	}
	return &design, nil
}

// designerSystemPrompt returns the system prompt for the given template
// version. Unknown versions fall back to the latest.
func designerSystemPrompt(version string) string {
	switch version {
	case "v2":
		return `You are an art director for a print-on-demand poster shop. Given a Reddit post, respond with JSON {"theme", "image_title", "image_description"}. The image_description is a prompt for an image generation model: vivid, concrete, one scene, no text in the image.`
	default: // v3
		return `You are an art director for a print-on-demand poster shop. A community member commissioned artwork inspired by a Reddit post. Respond with JSON containing exactly these keys:
- "theme": a 2-4 word artistic theme
- "image_title": an evocative title, at most 8 words
- "image_description": a prompt for an image generation model. One vivid scene, concrete subjects, lighting and mood, a named art style. No text, watermarks, or logos in the image. Never depict real identifiable people.`
	}
}

func designerUserPrompt(post PostContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subreddit: r/%s\n", post.Subreddit)
	fmt.Fprintf(&b, "Post title: %s\n", post.Title)
	if post.Body != "" {
		fmt.Fprintf(&b, "Post body: %s\n", truncate(post.Body, 2000))
	}
	if post.CommentSummary != "" {
		fmt.Fprintf(&b, "Top comments: %s\n", truncate(post.CommentSummary, 1000))
	}
	return b.String()
}

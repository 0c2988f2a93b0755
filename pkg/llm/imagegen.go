package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/redditart/commissioner/pkg/config"
)

// Quality selects the image model rendering tier. HD is reserved for the top
// donation tiers.
type Quality string

const (
	QualityStandard Quality = "standard"
	QualityHD       Quality = "hd"
)

// ImageGenerator synthesizes artwork from a design's image description.
type ImageGenerator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

// NewImageGenerator builds an ImageGenerator from upstream config.
func NewImageGenerator(cfg config.UpstreamConfig) *ImageGenerator {
	clientCfg := openai.DefaultConfig(cfg.ImageAPIKey)
	return &ImageGenerator{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.ImageModel,
		timeout: cfg.ImageTimeout,
		limiter: apiLimiter(cfg.LLMRatePerMinute),
	}
}

// newImageGeneratorWithClient is used by tests to point at a stub server.
func newImageGeneratorWithClient(client *openai.Client, model string) *ImageGenerator {
	return &ImageGenerator{client: client, model: model, limiter: apiLimiter(0)}
}

// Model returns the configured image model name, recorded on ProductInfo.
func (g *ImageGenerator) Model() string {
	return g.model
}

// Generate renders one image and returns the raw PNG bytes. The bytes are
// held in memory only until the stamping stage uploads them.
func (g *ImageGenerator) Generate(ctx context.Context, description string, quality Quality) ([]byte, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	ctx, cancel := callContext(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Model:          g.model,
		Prompt:         description,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		Quality:        string(quality),
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		if isContentPolicyError(err) {
			return nil, ErrContentPolicy
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("%w: empty image response", ErrUpstream)
	}

	raw, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid image encoding: %v", ErrUpstream, err)
	}
	return raw, nil
}

// isContentPolicyError detects the image API's safety rejection, which
// arrives as a 400 with a content_policy_violation code.
func isContentPolicyError(err error) bool {
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if code, ok := apiErr.Code.(string); ok && code == "content_policy_violation" {
		return true
	}
	return false
}

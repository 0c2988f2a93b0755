// Package imagehost uploads finished artwork to a public image host. Imgur's
// anonymous client-id API is the only implementation; the pipeline depends on
// the Uploader interface so tests substitute a fake.
package imagehost

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redditart/commissioner/pkg/config"
)

// ErrUploadFailed wraps any upload failure. Retryable.
var ErrUploadFailed = errors.New("imagehost: upload failed")

// Uploader stores an image publicly and returns its URL.
type Uploader interface {
	Upload(ctx context.Context, image []byte, title, description string) (string, error)
}

const imgurUploadURL = "https://api.imgur.com/3/image"

// ImgurClient uploads via the Imgur anonymous API.
type ImgurClient struct {
	httpClient *http.Client
	uploadURL  string
	clientID   string
}

// NewImgurClient builds an uploader from upstream config.
func NewImgurClient(cfg config.UpstreamConfig) *ImgurClient {
	return &ImgurClient{
		httpClient: &http.Client{Timeout: cfg.WebTimeout},
		uploadURL:  imgurUploadURL,
		clientID:   cfg.ImageHostClientID,
	}
}

type imgurResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		Link       string `json:"link"`
		DeleteHash string `json:"deletehash"`
		Error      any    `json:"error"`
	} `json:"data"`
}

// Upload posts the image and returns its public https link.
func (c *ImgurClient) Upload(ctx context.Context, image []byte, title, description string) (string, error) {
	form := url.Values{
		"image":       {base64.StdEncoding.EncodeToString(image)},
		"type":        {"base64"},
		"title":       {title},
		"description": {description},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.clientID)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", ErrUploadFailed, resp.StatusCode, string(body))
	}

	var parsed imgurResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if !parsed.Success || parsed.Data.Link == "" {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, parsed.Data.Error)
	}

	// Imgur occasionally returns http links.
	link := strings.Replace(parsed.Data.Link, "http://", "https://", 1)
	return link, nil
}

// retryDelay is how long callers should wait before retrying a failed
// upload inline (distinct from the queue-level backoff which applies when
// the whole stage fails).
const retryDelay = 2 * time.Second

// UploadWithRetry attempts the upload up to attempts times with a short
// fixed delay. Imgur 5xx blips are common enough that one inline retry
// avoids burning a queue attempt.
func UploadWithRetry(ctx context.Context, u Uploader, image []byte, title, description string, attempts int) (string, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(retryDelay):
			}
		}
		link, err := u.Upload(ctx, image, title, description)
		if err == nil {
			return link, nil
		}
		lastErr = err
	}
	return "", lastErr
}

package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// stubOpenAI returns an openai client pointed at a local stub handler.
func stubOpenAI(t *testing.T, handler http.HandlerFunc) *openai.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return openai.NewClientWithConfig(cfg)
}

func chatResponse(content string) string {
	resp := map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"model":   "gpt-4o",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestDesignProduct(t *testing.T) {
	client := stubOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[1].Content, "r/hiking")
		assert.Contains(t, req.Messages[1].Content, "Sunrise over the ridge")

		_, _ = w.Write([]byte(chatResponse(`{"theme":"alpine dawn","image_title":"First Light on the Ridge","image_description":"A watercolor alpine ridge at sunrise, mist in the valley"}`)))
	})

	d := newDesignerWithClient(client, "gpt-4o", "v3")
	design, err := d.DesignProduct(context.Background(), PostContext{
		Subreddit: "hiking",
		Title:     "Sunrise over the ridge",
		Body:      "Caught this on the summit push.",
	})
	require.NoError(t, err)
	assert.Equal(t, "alpine dawn", design.Theme)
	assert.Equal(t, "First Light on the Ridge", design.ImageTitle)
	assert.NotEmpty(t, design.ImageDescription)
}

func TestDesignProduct_RefusalIsContentPolicy(t *testing.T) {
	client := stubOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse("I'm sorry, but I can't assist with that request.")))
	})

	d := newDesignerWithClient(client, "gpt-4o", "v3")
	_, err := d.DesignProduct(context.Background(), PostContext{Subreddit: "x", Title: "y"})
	assert.ErrorIs(t, err, ErrContentPolicy)
}

func TestDesignProduct_IncompleteJSONIsUpstreamError(t *testing.T) {
	client := stubOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse(`{"theme":"only a theme"}`)))
	})

	d := newDesignerWithClient(client, "gpt-4o", "v3")
	_, err := d.DesignProduct(context.Background(), PostContext{Subreddit: "x", Title: "y"})
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestDesignProduct_TimeoutIsUpstreamError(t *testing.T) {
	client := stubOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(chatResponse(`{"theme":"late","image_title":"t","image_description":"d"}`)))
	})

	d := newDesignerWithClient(client, "gpt-4o", "v3")
	d.timeout = 20 * time.Millisecond
	_, err := d.DesignProduct(context.Background(), PostContext{Subreddit: "x", Title: "y"})
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestDesignProduct_TransportFailureIsUpstreamError(t *testing.T) {
	client := stubOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	d := newDesignerWithClient(client, "gpt-4o", "v3")
	_, err := d.DesignProduct(context.Background(), PostContext{Subreddit: "x", Title: "y"})
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGenerate(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	client := stubOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images/generations", r.URL.Path)
		var req openai.ImageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hd", req.Quality)
		assert.Equal(t, "dall-e-3", req.Model)

		resp := map[string]any{
			"created": 1700000000,
			"data":    []map[string]any{{"b64_json": base64.StdEncoding.EncodeToString(png)}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	g := newImageGeneratorWithClient(client, "dall-e-3")
	raw, err := g.Generate(context.Background(), "a watercolor ridge at dawn", QualityHD)
	require.NoError(t, err)
	assert.Equal(t, png, raw)
}

func TestGenerate_ContentPolicyViolation(t *testing.T) {
	client := stubOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"content_policy_violation","message":"Your request was rejected.","type":"invalid_request_error"}}`))
	})

	g := newImageGeneratorWithClient(client, "dall-e-3")
	_, err := g.Generate(context.Background(), "something disallowed", QualityStandard)
	assert.ErrorIs(t, err, ErrContentPolicy)
}

func TestRate(t *testing.T) {
	client := stubOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse(`{"score":8.5,"classification":"artistic","text":"This would make a stunning print!","reason":"strong composition"}`)))
	})

	s := newScorerWithClient(client, "gpt-4o")
	rating, err := s.Rate(context.Background(), "Score posts for artistic potential.", "Misty forest", "")
	require.NoError(t, err)
	assert.Equal(t, 8.5, rating.Score)
	assert.Equal(t, "artistic", rating.Classification)
	assert.NotEmpty(t, rating.Text)
}

func TestRate_ClampsScore(t *testing.T) {
	client := stubOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse(`{"score":42,"classification":"artistic"}`)))
	})

	s := newScorerWithClient(client, "gpt-4o")
	rating, err := s.Rate(context.Background(), "instr", "t", "")
	require.NoError(t, err)
	assert.Equal(t, 10.0, rating.Score)
}

func TestRate_HonorsRateBudget(t *testing.T) {
	client := stubOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse(`{"score":5,"classification":"welcome"}`)))
	})

	s := newScorerWithClient(client, "gpt-4o")
	s.limiter = rate.NewLimiter(rate.Every(time.Hour), 1)

	_, err := s.Rate(context.Background(), "instr", "t", "")
	require.NoError(t, err)

	// The bucket is drained; a bounded caller fails fast instead of queueing.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = s.Rate(ctx, "instr", "t", "")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestRate_RefusalBecomesSkip(t *testing.T) {
	client := stubOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse("I cannot assist with rating this content.")))
	})

	s := newScorerWithClient(client, "gpt-4o")
	rating, err := s.Rate(context.Background(), "instr", "t", "")
	require.NoError(t, err)
	assert.Equal(t, "skip", rating.Classification)
	assert.Zero(t, rating.Score)
}

func TestIsRefusal(t *testing.T) {
	assert.True(t, isRefusal("I'm sorry but I can't assist with that"))
	assert.True(t, isRefusal("This goes against my guidelines."))
	assert.False(t, isRefusal(`{"theme":"ok"}`))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := strings.Repeat("a", 20)
	assert.Equal(t, strings.Repeat("a", 10)+"...", truncate(long, 10))

	t.Run("never splits a rune", func(t *testing.T) {
		got := truncate(strings.Repeat("é", 20), 15)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, strings.Repeat("é", 7)+"...", got)
	})
}

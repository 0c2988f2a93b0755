// Package llm wraps the OpenAI API behind the two capabilities the system
// uses: chat-based product design and scoring, and image synthesis. Prompts
// are versioned so a product row records exactly which template produced it.
package llm

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/time/rate"
)

var (
	// ErrContentPolicy means the upstream refused the request on content
	// grounds. Not retryable; the task fails permanently.
	ErrContentPolicy = errors.New("llm: content policy refusal")

	// ErrUpstream wraps transient upstream failures. Retryable.
	ErrUpstream = errors.New("llm: upstream unavailable")
)

// refusalMarkers are phrases that signal a content-policy refusal inside an
// otherwise successful chat completion.
var refusalMarkers = []string{
	"i can't assist",
	"i cannot assist",
	"i can't help with",
	"i cannot help with",
	"against my guidelines",
	"content policy",
	"i'm unable to create",
	"i am unable to create",
}

// isRefusal reports whether a completion body reads as a refusal rather than
// the requested JSON.
func isRefusal(content string) bool {
	lower := strings.ToLower(content)
	for _, marker := range refusalMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// apiLimiter converts a requests-per-minute budget into a token bucket.
// Non-positive budgets disable limiting.
func apiLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), 1)
}

// callContext bounds one upstream call. A zero timeout passes the caller's
// context through unchanged.
func callContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// truncate bounds s to roughly n bytes, cutting on a rune boundary so prompt
// text never carries a split UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

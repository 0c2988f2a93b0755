package reddit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePostURL(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		subreddit string
		postID    string
		wantErr   bool
	}{
		{
			name:      "full URL with slug",
			input:     "https://www.reddit.com/r/hiking/comments/abc123/my_favorite_trail/",
			subreddit: "hiking",
			postID:    "abc123",
		},
		{
			name:      "full URL without slug",
			input:     "https://reddit.com/r/hiking/comments/abc123",
			subreddit: "hiking",
			postID:    "abc123",
		},
		{
			name:      "old reddit",
			input:     "https://old.reddit.com/r/golf/comments/xy9z8k/title",
			subreddit: "golf",
			postID:    "xy9z8k",
		},
		{
			name:   "short link",
			input:  "https://redd.it/abc123",
			postID: "abc123",
		},
		{
			name:   "bare id",
			input:  "abc123",
			postID: "abc123",
		},
		{
			name:      "scheme omitted",
			input:     "reddit.com/r/hiking/comments/abc123/slug",
			subreddit: "hiking",
			postID:    "abc123",
		},
		{
			name:      "uppercase id normalized",
			input:     "https://reddit.com/r/hiking/comments/ABC123/slug",
			subreddit: "hiking",
			postID:    "abc123",
		},
		{name: "empty", input: "", wantErr: true},
		{name: "not reddit", input: "https://example.com/r/hiking/comments/abc123", wantErr: true},
		{name: "no post segment", input: "https://reddit.com/r/hiking", wantErr: true},
		{name: "bad id", input: "https://reddit.com/r/hiking/comments/!!!/slug", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParsePostURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.subreddit, ref.Subreddit)
			assert.Equal(t, tt.postID, ref.PostID)
		})
	}
}

// A parsed URL reassembled from the stored pair must parse back to the same
// pair.
func TestCanonicalPostURLRoundTrip(t *testing.T) {
	inputs := []string{
		"https://www.reddit.com/r/hiking/comments/abc123/my_favorite_trail/",
		"https://old.reddit.com/r/golf/comments/xy9z8k",
		"reddit.com/r/pics/comments/q1w2e3/something",
	}
	for _, in := range inputs {
		ref, err := ParsePostURL(in)
		require.NoError(t, err)

		canonical := CanonicalPostURL(ref.Subreddit, ref.PostID)
		ref2, err := ParsePostURL(canonical)
		require.NoError(t, err)
		assert.Equal(t, ref, ref2)
		assert.Equal(t, canonical, CanonicalPostURL(ref2.Subreddit, ref2.PostID))
	}
}

func TestPostFullname(t *testing.T) {
	assert.Equal(t, "t3_abc123", PostFullname("abc123"))
}

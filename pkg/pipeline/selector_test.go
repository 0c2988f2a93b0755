package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/redditart/commissioner/pkg/reddit"
)

func TestFilterPosts(t *testing.T) {
	now := float64(time.Now().Unix())
	posts := []reddit.Post{
		{ID: "fresh", Score: 50, CreatedUTC: now - 3600},
		{ID: "nsfw", Score: 900, Over18: true, CreatedUTC: now},
		{ID: "sticky", Score: 900, Stickied: true, CreatedUTC: now},
		{ID: "gone", Score: 900, Author: "[deleted]", CreatedUTC: now},
		{ID: "used", Score: 900, CreatedUTC: now},
		{ID: "stale", Score: 900, CreatedUTC: now - 7*24*3600},
		{ID: "weak", Score: 2, CreatedUTC: now},
	}
	used := map[string]bool{"used": true}

	t.Run("strict applies age and score gates", func(t *testing.T) {
		got := filterPosts(posts, used, defaultSelection, true)
		ids := make([]string, 0, len(got))
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"fresh"}, ids)
	})

	t.Run("relaxed keeps stale and weak posts", func(t *testing.T) {
		got := filterPosts(posts, used, defaultSelection, false)
		ids := make([]string, 0, len(got))
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"fresh", "stale", "weak"}, ids)
	})
}

func TestRankPost(t *testing.T) {
	quiet := &reddit.Post{Score: 100, NumComments: 0}
	discussed := &reddit.Post{Score: 60, NumComments: 30}

	assert.Equal(t, 100, rankPost(quiet, defaultSelection))
	assert.Equal(t, 120, rankPost(discussed, defaultSelection))
	assert.Greater(t, rankPost(discussed, defaultSelection), rankPost(quiet, defaultSelection))
}

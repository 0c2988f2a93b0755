package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/redditart/commissioner/pkg/reddit"
)

// selectionPolicy bounds what stage 1 will pick from a feed.
type selectionPolicy struct {
	feedLimit     int
	minScore      int
	maxAge        time.Duration
	reuseWindow   time.Duration
	commentWeight int
}

var defaultSelection = selectionPolicy{
	feedLimit:     50,
	minScore:      10,
	maxAge:        48 * time.Hour,
	reuseWindow:   14 * 24 * time.Hour,
	commentWeight: 2,
}

// selectPost picks the best eligible post from a subreddit's hot feed
// (r/popular when subreddit is empty). Eligible posts are ranked by score
// plus a comment-count weight; posts this system used recently are excluded
// so successive tasks produce fresh artwork.
func (e *Engine) selectPost(ctx context.Context, subreddit string) (*reddit.Post, error) {
	policy := defaultSelection

	posts, err := e.deps.Platform.Hot(ctx, subreddit, policy.feedLimit)
	if err != nil {
		return nil, fmt.Errorf("fetching hot feed: %w", err)
	}

	used, err := e.deps.Subreddits.RecentlyUsedPostIDs(ctx, policy.reuseWindow)
	if err != nil {
		return nil, fmt.Errorf("loading recently used posts: %w", err)
	}

	eligible := filterPosts(posts, used, policy, true)
	if len(eligible) == 0 {
		// A quiet subreddit may have nothing fresh enough; relax the age and
		// score constraints before giving up.
		eligible = filterPosts(posts, used, policy, false)
	}
	if len(eligible) == 0 {
		return nil, fmt.Errorf("no eligible post in feed %q (%d candidates)", subreddit, len(posts))
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return rankPost(&eligible[i], policy) > rankPost(&eligible[j], policy)
	})
	return &eligible[0], nil
}

// filterPosts applies the hard exclusions (over-18, stickied, deleted,
// recently used) and, when strict, the age and score gates.
func filterPosts(posts []reddit.Post, used map[string]bool, policy selectionPolicy, strict bool) []reddit.Post {
	out := make([]reddit.Post, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		if p.Over18 || p.Stickied || p.Deleted() || used[p.ID] {
			continue
		}
		if strict && (p.Score < policy.minScore || p.Age() > policy.maxAge) {
			continue
		}
		out = append(out, *p)
	}
	return out
}

// rankPost scores a candidate: upvotes plus weighted comment count, so a
// heavily discussed post beats a quietly upvoted one.
func rankPost(p *reddit.Post, policy selectionPolicy) int {
	return p.Score + policy.commentWeight*p.NumComments
}

package reddit

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// base36ID matches a Reddit base36 post id.
var base36ID = regexp.MustCompile(`^[a-z0-9]{4,10}$`)

// PostRef is a parsed reference to a single post.
type PostRef struct {
	Subreddit string // empty for short links that omit the subreddit
	PostID    string
}

// ParsePostURL extracts (subreddit, post id) from the post reference forms
// users paste in:
//
//	https://www.reddit.com/r/hiking/comments/abc123/some_slug/
//	https://old.reddit.com/r/hiking/comments/abc123
//	https://redd.it/abc123
//	abc123
//
// A bare base36 id yields an empty subreddit; the caller resolves it via the
// API.
func ParsePostURL(raw string) (PostRef, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PostRef{}, fmt.Errorf("empty post reference")
	}

	// Bare id.
	if base36ID.MatchString(strings.ToLower(raw)) && !strings.Contains(raw, "/") {
		return PostRef{PostID: strings.ToLower(raw)}, nil
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return PostRef{}, fmt.Errorf("invalid post URL: %w", err)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "old.")
	host = strings.TrimPrefix(host, "new.")

	segs := splitPath(u.Path)

	switch host {
	case "redd.it":
		if len(segs) == 1 && base36ID.MatchString(strings.ToLower(segs[0])) {
			return PostRef{PostID: strings.ToLower(segs[0])}, nil
		}
		return PostRef{}, fmt.Errorf("unrecognized short link: %s", raw)

	case "reddit.com":
		// /r/{subreddit}/comments/{id}[/slug]
		if len(segs) >= 4 && segs[0] == "r" && segs[2] == "comments" {
			id := strings.ToLower(segs[3])
			if !base36ID.MatchString(id) {
				return PostRef{}, fmt.Errorf("invalid post id in URL: %s", segs[3])
			}
			return PostRef{Subreddit: segs[1], PostID: id}, nil
		}
		// /comments/{id}
		if len(segs) >= 2 && segs[0] == "comments" {
			id := strings.ToLower(segs[1])
			if base36ID.MatchString(id) {
				return PostRef{PostID: id}, nil
			}
		}
		return PostRef{}, fmt.Errorf("unrecognized reddit URL: %s", raw)

	default:
		return PostRef{}, fmt.Errorf("not a reddit URL: %s", raw)
	}
}

// CanonicalPostURL reassembles the canonical URL for a stored (subreddit,
// post id) pair. Parsing this URL again yields the same pair.
func CanonicalPostURL(subreddit, postID string) string {
	return fmt.Sprintf("https://reddit.com/r/%s/comments/%s", subreddit, postID)
}

func splitPath(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

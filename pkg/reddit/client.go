package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/redditart/commissioner/pkg/config"
)

const (
	apiBaseURL   = "https://oauth.reddit.com"
	tokenURL     = "https://www.reddit.com/api/v1/access_token"
	cacheTTL     = 2 * time.Minute
	cachePurge   = 5 * time.Minute
	maxListLimit = 100
)

// Client talks to the Reddit OAuth API. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	cache      *gocache.Cache
}

// NewClient authenticates via the script-app password grant and returns a
// ready client. Tokens are refreshed transparently by re-running the grant
// when they expire.
func NewClient(cfg config.RedditConfig, upstream config.UpstreamConfig) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("reddit client id and secret are required")
	}

	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}

	src := &passwordTokenSource{
		conf:     conf,
		username: cfg.Username,
		password: cfg.Password,
	}
	httpClient := oauth2.NewClient(context.Background(), oauth2.ReuseTokenSource(nil, src))
	httpClient.Timeout = upstream.WebTimeout

	return &Client{
		httpClient: httpClient,
		baseURL:    apiBaseURL,
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(rate.Limit(float64(upstream.RedditRatePerMinute)/60.0), 5),
		cache:      gocache.New(cacheTTL, cachePurge),
	}, nil
}

// passwordTokenSource re-runs the password grant whenever the cached token
// expires. Reddit script-app tokens are not refreshable, so a fresh grant is
// the refresh.
type passwordTokenSource struct {
	conf     *oauth2.Config
	username string
	password string
}

func (s *passwordTokenSource) Token() (*oauth2.Token, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.conf.PasswordCredentialsToken(ctx, s.username, s.password)
}

// AboutSubreddit fetches a community's summary. Results are cached.
func (c *Client) AboutSubreddit(ctx context.Context, name string) (*Subreddit, error) {
	cacheKey := "about:" + strings.ToLower(name)
	if v, found := c.cache.Get(cacheKey); found {
		return v.(*Subreddit), nil
	}

	var t thing
	if err := c.get(ctx, "/r/"+url.PathEscape(name)+"/about", nil, &t); err != nil {
		return nil, err
	}
	var sub Subreddit
	if err := json.Unmarshal(t.Data, &sub); err != nil {
		return nil, fmt.Errorf("failed to decode subreddit: %w", err)
	}
	if sub.Name == "" {
		return nil, ErrNotFound
	}

	c.cache.Set(cacheKey, &sub, gocache.DefaultExpiration)
	return &sub, nil
}

// Hot fetches the hot listing for a subreddit. An empty subreddit fetches
// r/popular (the public front page). Results are cached.
func (c *Client) Hot(ctx context.Context, subreddit string, limit int) ([]Post, error) {
	if subreddit == "" {
		subreddit = "popular"
	}
	if limit <= 0 || limit > maxListLimit {
		limit = 50
	}

	cacheKey := fmt.Sprintf("hot:%s:%d", strings.ToLower(subreddit), limit)
	if v, found := c.cache.Get(cacheKey); found {
		return v.([]Post), nil
	}

	posts, err := c.fetchListing(ctx, "/r/"+url.PathEscape(subreddit)+"/hot", limit)
	if err != nil {
		return nil, err
	}
	c.cache.Set(cacheKey, posts, gocache.DefaultExpiration)
	return posts, nil
}

// New fetches the newest submissions for a subreddit. Not cached; the
// community agent polls this for fresh posts.
func (c *Client) New(ctx context.Context, subreddit string, limit int) ([]Post, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = 25
	}
	return c.fetchListing(ctx, "/r/"+url.PathEscape(subreddit)+"/new", limit)
}

// GetPost fetches a single post by its base36 id. Returns ErrNotFound when
// the id resolves to nothing or the post has been deleted.
func (c *Client) GetPost(ctx context.Context, postID string) (*Post, error) {
	var t thing
	params := url.Values{"id": {PostFullname(postID)}}
	if err := c.get(ctx, "/api/info", params, &t); err != nil {
		return nil, err
	}
	var l listing
	if err := json.Unmarshal(t.Data, &l); err != nil {
		return nil, fmt.Errorf("failed to decode listing: %w", err)
	}
	if len(l.Children) == 0 {
		return nil, ErrNotFound
	}
	var post Post
	if err := json.Unmarshal(l.Children[0].Data, &post); err != nil {
		return nil, fmt.Errorf("failed to decode post: %w", err)
	}
	if post.Deleted() {
		return nil, ErrNotFound
	}
	return &post, nil
}

// TopComments fetches up to limit top-level comments on a post, skipping
// deleted and "more" stubs. Used to build the comment summary the designer
// prompt includes.
func (c *Client) TopComments(ctx context.Context, subreddit, postID string, limit int) ([]Comment, error) {
	if limit <= 0 {
		limit = 10
	}
	params := url.Values{
		"limit": {strconv.Itoa(limit)},
		"sort":  {"top"},
		"depth": {"1"},
	}

	// The comments endpoint returns a two-element array: [post listing,
	// comment listing].
	var pages []thing
	path := fmt.Sprintf("/r/%s/comments/%s", url.PathEscape(subreddit), postID)
	if err := c.get(ctx, path, params, &pages); err != nil {
		return nil, err
	}
	if len(pages) < 2 {
		return nil, nil
	}

	var l listing
	if err := json.Unmarshal(pages[1].Data, &l); err != nil {
		return nil, fmt.Errorf("failed to decode comment listing: %w", err)
	}

	comments := make([]Comment, 0, len(l.Children))
	for _, child := range l.Children {
		if child.Kind != "t1" {
			continue
		}
		var cm Comment
		if err := json.Unmarshal(child.Data, &cm); err != nil {
			continue
		}
		if cm.Body == "" || cm.Body == "[deleted]" || cm.Body == "[removed]" {
			continue
		}
		comments = append(comments, cm)
		if len(comments) >= limit {
			break
		}
	}
	return comments, nil
}

// Comment posts a reply under the given fullname (t3_ for posts, t1_ for
// comments).
func (c *Client) Comment(ctx context.Context, parentFullname, text string) error {
	form := url.Values{
		"api_type": {"json"},
		"thing_id": {parentFullname},
		"text":     {text},
	}
	return c.post(ctx, "/api/comment", form)
}

// Vote casts a vote on the given fullname. dir is 1 (up), 0 (rescind),
// or -1 (down).
func (c *Client) Vote(ctx context.Context, fullname string, dir int) error {
	form := url.Values{
		"id":  {fullname},
		"dir": {strconv.Itoa(dir)},
	}
	return c.post(ctx, "/api/vote", form)
}

func (c *Client) fetchListing(ctx context.Context, path string, limit int) ([]Post, error) {
	var t thing
	params := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.get(ctx, path, params, &t); err != nil {
		return nil, err
	}
	var l listing
	if err := json.Unmarshal(t.Data, &l); err != nil {
		return nil, fmt.Errorf("failed to decode listing: %w", err)
	}
	posts := make([]Post, 0, len(l.Children))
	for _, child := range l.Children {
		if child.Kind != "t3" {
			continue
		}
		var p Post
		if err := json.Unmarshal(child.Data, &p); err != nil {
			continue
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reddit request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode reddit response: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, form url.Values) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reddit request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return checkStatus(resp)
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("reddit API error %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

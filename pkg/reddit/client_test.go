package reddit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
		userAgent:  "commissioner-test/1.0",
		limiter:    rate.NewLimiter(rate.Inf, 1),
		cache:      gocache.New(time.Minute, time.Minute),
	}
}

func TestAboutSubreddit(t *testing.T) {
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/r/hiking/about", r.URL.Path)
		assert.Equal(t, "commissioner-test/1.0", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"kind":"t5","data":{"display_name":"hiking","title":"Hiking","over18":false,"subscribers":120000,"subreddit_type":"public"}}`))
	}))

	sub, err := c.AboutSubreddit(context.Background(), "hiking")
	require.NoError(t, err)
	assert.Equal(t, "hiking", sub.Name)
	assert.False(t, sub.Over18)

	// Second call is served from cache.
	_, err = c.AboutSubreddit(context.Background(), "hiking")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestAboutSubreddit_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.AboutSubreddit(context.Background(), "doesnotexist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHot(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/golf/hot", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"kind":"Listing","data":{"children":[
			{"kind":"t3","data":{"id":"p1","name":"t3_p1","title":"First","subreddit":"golf","score":500,"num_comments":40,"created_utc":1700000000}},
			{"kind":"t3","data":{"id":"p2","name":"t3_p2","title":"Second","subreddit":"golf","score":100,"num_comments":5,"created_utc":1700000100}}
		]}}`))
	}))

	posts, err := c.Hot(context.Background(), "golf", 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p1", posts[0].ID)
	assert.Equal(t, 500, posts[0].Score)
	assert.Equal(t, "t3_p2", posts[1].Fullname)
}

func TestHot_FrontPageDefaultsToPopular(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/popular/hot", r.URL.Path)
		_, _ = w.Write([]byte(`{"kind":"Listing","data":{"children":[]}}`))
	}))

	posts, err := c.Hot(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestGetPost(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/info", r.URL.Path)
		assert.Equal(t, "t3_abc123", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(`{"kind":"Listing","data":{"children":[
			{"kind":"t3","data":{"id":"abc123","title":"Sunrise over the ridge","subreddit":"hiking","author":"alpine_fan","score":2400}}
		]}}`))
	}))

	post, err := c.GetPost(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", post.ID)
	assert.Equal(t, "hiking", post.Subreddit)
}

func TestGetPost_DeletedTreatedAsNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"kind":"Listing","data":{"children":[
			{"kind":"t3","data":{"id":"abc123","title":"gone","author":"[deleted]"}}
		]}}`))
	}))

	_, err := c.GetPost(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPost_Empty(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"kind":"Listing","data":{"children":[]}}`))
	}))

	_, err := c.GetPost(context.Background(), "zzzzzz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTopComments(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/hiking/comments/abc123", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"kind":"Listing","data":{"children":[{"kind":"t3","data":{"id":"abc123"}}]}},
			{"kind":"Listing","data":{"children":[
				{"kind":"t1","data":{"id":"c1","author":"u1","body":"Beautiful shot","score":50}},
				{"kind":"t1","data":{"id":"c2","author":"u2","body":"[deleted]","score":3}},
				{"kind":"more","data":{}}
			]}}
		]`))
	}))

	comments, err := c.TopComments(context.Background(), "hiking", "abc123", 10)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Beautiful shot", comments[0].Body)
}

func TestCommentAndVote(t *testing.T) {
	var gotComment, gotVote bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		switch r.URL.Path {
		case "/api/comment":
			gotComment = true
			assert.Equal(t, "t3_abc123", r.PostForm.Get("thing_id"))
			assert.Equal(t, "Nice work!", r.PostForm.Get("text"))
		case "/api/vote":
			gotVote = true
			assert.Equal(t, "t3_abc123", r.PostForm.Get("id"))
			assert.Equal(t, "1", r.PostForm.Get("dir"))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{}`))
	}))

	require.NoError(t, c.Comment(context.Background(), "t3_abc123", "Nice work!"))
	require.NoError(t, c.Vote(context.Background(), "t3_abc123", 1))
	assert.True(t, gotComment)
	assert.True(t, gotVote)
}

func TestPostDeletedHelpers(t *testing.T) {
	p := Post{Author: "someone", Title: "hello", CreatedUTC: float64(time.Now().Add(-2 * time.Hour).Unix())}
	assert.False(t, p.Deleted())
	assert.InDelta(t, (2 * time.Hour).Seconds(), p.Age().Seconds(), 60)

	assert.True(t, (&Post{Author: "[deleted]"}).Deleted())
	assert.True(t, (&Post{RemovedByCategory: "moderator"}).Deleted())
}

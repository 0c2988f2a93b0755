package imagehost

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImgur(t *testing.T, handler http.HandlerFunc) *ImgurClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &ImgurClient{
		httpClient: srv.Client(),
		uploadURL:  srv.URL + "/3/image",
		clientID:   "test-client-id",
	}
}

func TestUpload(t *testing.T) {
	image := []byte{0x89, 'P', 'N', 'G'}
	c := newTestImgur(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Client-ID test-client-id", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, base64.StdEncoding.EncodeToString(image), r.PostForm.Get("image"))
		assert.Equal(t, "base64", r.PostForm.Get("type"))
		assert.Equal(t, "First Light", r.PostForm.Get("title"))

		_, _ = w.Write([]byte(`{"success":true,"status":200,"data":{"link":"https://i.imgur.com/abc123.png","deletehash":"xyz"}}`))
	})

	link, err := c.Upload(context.Background(), image, "First Light", "desc")
	require.NoError(t, err)
	assert.Equal(t, "https://i.imgur.com/abc123.png", link)
}

func TestUpload_RewritesPlainHTTPLink(t *testing.T) {
	c := newTestImgur(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"status":200,"data":{"link":"http://i.imgur.com/abc123.png"}}`))
	})

	link, err := c.Upload(context.Background(), []byte{1}, "t", "d")
	require.NoError(t, err)
	assert.Equal(t, "https://i.imgur.com/abc123.png", link)
}

func TestUpload_APIFailure(t *testing.T) {
	c := newTestImgur(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"success":false,"status":503}`))
	})

	_, err := c.Upload(context.Background(), []byte{1}, "t", "d")
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestUpload_SuccessFalse(t *testing.T) {
	c := newTestImgur(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"status":200,"data":{"error":"over capacity"}}`))
	})

	_, err := c.Upload(context.Background(), []byte{1}, "t", "d")
	assert.ErrorIs(t, err, ErrUploadFailed)
}

type flakyUploader struct {
	failures int
	calls    int
}

func (f *flakyUploader) Upload(ctx context.Context, image []byte, title, description string) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", ErrUploadFailed
	}
	return "https://i.imgur.com/ok.png", nil
}

func TestUploadWithRetry(t *testing.T) {
	f := &flakyUploader{failures: 1}
	link, err := UploadWithRetry(context.Background(), f, []byte{1}, "t", "d", 2)
	require.NoError(t, err)
	assert.Equal(t, "https://i.imgur.com/ok.png", link)
	assert.Equal(t, 2, f.calls)
}

func TestUploadWithRetry_Exhausted(t *testing.T) {
	f := &flakyUploader{failures: 5}
	_, err := UploadWithRetry(context.Background(), f, []byte{1}, "t", "d", 2)
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.Equal(t, 2, f.calls)
}

package pipeline

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{200, 200, 200, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestStampImage(t *testing.T) {
	src := encodeTestPNG(t, 256, 256)

	stamped, err := StampImage(src, "r/redditart")
	require.NoError(t, err)
	assert.NotEqual(t, src, stamped)

	decoded, _, err := image.Decode(bytes.NewReader(stamped))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 256, 256), decoded.Bounds())

	// The bottom-right corner carries the plate; a pixel there is darker
	// than the uniform background.
	r, g, b, _ := decoded.At(240, 242).RGBA()
	assert.Less(t, r+g+b, uint32(3*200*257))
}

func TestStampImage_EmptyMarkIsPassthrough(t *testing.T) {
	src := encodeTestPNG(t, 32, 32)
	out, err := StampImage(src, "")
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestStampImage_TinyImageLeftUnmarked(t *testing.T) {
	src := encodeTestPNG(t, 8, 8)
	out, err := StampImage(src, "a very long creator mark")
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestStampImage_RejectsGarbage(t *testing.T) {
	_, err := StampImage([]byte("not a png"), "mark")
	assert.Error(t, err)
}

package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Stamp layout constants, in pixels.
const (
	stampPadding = 8
	stampMargin  = 12
)

// StampImage overlays the creator mark on the bottom-right corner of a PNG:
// a translucent plate with the mark text on it. The input image is not
// modified; the stamped copy is re-encoded as PNG.
func StampImage(src []byte, mark string) ([]byte, error) {
	if mark == "" {
		return src, nil
	}

	decoded, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := decoded.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, decoded, bounds.Min, draw.Src)

	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, mark).Ceil()
	textHeight := face.Metrics().Height.Ceil()

	plate := image.Rect(
		bounds.Max.X-textWidth-2*stampPadding-stampMargin,
		bounds.Max.Y-textHeight-2*stampPadding-stampMargin,
		bounds.Max.X-stampMargin,
		bounds.Max.Y-stampMargin,
	).Intersect(bounds)
	if plate.Empty() {
		// Image smaller than the stamp; leave it unmarked.
		return src, nil
	}
	draw.Draw(canvas, plate, &image.Uniform{color.RGBA{0, 0, 0, 160}}, image.Point{}, draw.Over)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.RGBA{255, 255, 255, 255}),
		Face: face,
		Dot: fixed.P(
			plate.Min.X+stampPadding,
			plate.Min.Y+stampPadding+face.Metrics().Ascent.Ceil(),
		),
	}
	drawer.DrawString(mark)

	var out bytes.Buffer
	if err := png.Encode(&out, canvas); err != nil {
		return nil, fmt.Errorf("encoding stamped image: %w", err)
	}
	return out.Bytes(), nil
}

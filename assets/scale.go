package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// Rescale decodes a PNG and re-encodes it at size x size pixels using
// Catmull-Rom resampling. Data already at that size is returned as is.
func Rescale(data []byte, size int) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode png: %w", err)
	}
	b := src.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return data, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("assets: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

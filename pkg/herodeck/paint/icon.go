package paint

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/arrow.svg
var backArrowSVG []byte

// BackArrow rasterizes the back affordance at size x size pixels.
func BackArrow(size int) (*image.RGBA, error) {
	return RasterizeSVG(backArrowSVG, size, size)
}

// RasterizeSVG renders an SVG document into a w x h RGBA image, stretching
// its viewBox to fill the target.
func RasterizeSVG(svg []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("rasterize svg: invalid size %dx%d", w, h)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("rasterize svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return dst, nil
}

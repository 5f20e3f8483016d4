// Package paint holds the pure-Go image work done before pixels reach the
// GPU: scaling remote artwork into its box, drawing the background gradient,
// and rasterizing vector icons.
package paint

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Fit selects how an image is scaled into a box.
type Fit int

const (
	// FitCover fills the box and crops the overflow, centred.
	FitCover Fit = iota
	// FitContain scales the whole image inside the box, preserving aspect.
	FitContain
)

func (f Fit) String() string {
	if f == FitContain {
		return "contain"
	}
	return "cover"
}

// Scale resizes src into a w x h RGBA image using fit. Contain leaves the
// uncovered area transparent.
func Scale(src image.Image, w, h int, fit Fit) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(1, w), max(1, h)))
	sb := src.Bounds()
	if sb.Empty() || w <= 0 || h <= 0 {
		return dst
	}

	switch fit {
	case FitContain:
		xdraw.CatmullRom.Scale(dst, containRect(sb.Size(), dst.Bounds().Size()), src, sb, xdraw.Src, nil)
	default:
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, coverSource(sb, dst.Bounds().Size()), xdraw.Src, nil)
	}
	return dst
}

// coverSource returns the centred region of src with the aspect of box.
func coverSource(src image.Rectangle, box image.Point) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	// compare sw/sh with box.X/box.Y without floats
	if sw*box.Y > sh*box.X {
		cw := sh * box.X / box.Y
		x := src.Min.X + (sw-cw)/2
		return image.Rect(x, src.Min.Y, x+cw, src.Max.Y)
	}
	ch := sw * box.Y / box.X
	y := src.Min.Y + (sh-ch)/2
	return image.Rect(src.Min.X, y, src.Max.X, y+ch)
}

// containRect returns where an image of size src lands inside box.
func containRect(src, box image.Point) image.Rectangle {
	w, h := box.X, src.Y*box.X/src.X
	if h > box.Y {
		w, h = src.X*box.Y/src.Y, box.Y
	}
	x := (box.X - w) / 2
	y := (box.Y - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

// VerticalGradient paints evenly spaced colour stops from top to bottom.
func VerticalGradient(w, h int, stops []color.RGBA) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(1, w), max(1, h)))
	switch len(stops) {
	case 0:
		return dst
	case 1:
		draw.Draw(dst, dst.Bounds(), image.NewUniform(stops[0]), image.Point{}, draw.Src)
		return dst
	}

	rows := dst.Bounds().Dy()
	for y := 0; y < rows; y++ {
		t := 0.0
		if rows > 1 {
			t = float64(y) / float64(rows-1)
		}
		c := sampleStops(stops, t)
		row := dst.Pix[y*dst.Stride : y*dst.Stride+dst.Bounds().Dx()*4]
		for x := 0; x < len(row); x += 4 {
			row[x], row[x+1], row[x+2], row[x+3] = c.R, c.G, c.B, c.A
		}
	}
	return dst
}

func sampleStops(stops []color.RGBA, t float64) color.RGBA {
	segments := len(stops) - 1
	pos := t * float64(segments)
	i := min(int(pos), segments-1)
	f := pos - float64(i)
	a, b := stops[i], stops[i+1]
	return color.RGBA{
		R: lerp(a.R, b.R, f),
		G: lerp(a.G, b.G, f),
		B: lerp(a.B, b.B, f),
		A: lerp(a.A, b.A, f),
	}
}

func lerp(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*f + 0.5)
}

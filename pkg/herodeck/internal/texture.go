package internal

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/constants"
)

var errEmptyImage = errors.New("empty image")

// TextureFromRGBA uploads img. The texture blends so alpha mod can fade it.
func TextureFromRGBA(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return nil, errEmptyImage
	}

	pix := unsafe.Pointer(&img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y)])
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(pix, int32(w), int32(h), 32, int32(img.Stride), uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// TextTexture is rendered text and its size.
type TextTexture struct {
	Texture *sdl.Texture
	W, H    int32
}

func (t *TextTexture) Destroy() {
	if t != nil && t.Texture != nil {
		t.Texture.Destroy()
	}
}

// RenderText renders text in one line. It returns nil for empty text or on
// failure, which is logged.
func RenderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) *TextTexture {
	if text == "" || font == nil {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		GetInternalLogger().Error("Failed to render text", "text", text, "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Error("Failed to create text texture", "text", text, "error", err)
		return nil
	}

	return &TextTexture{Texture: texture, W: surface.W, H: surface.H}
}

// RenderWrappedText renders text wrapped to wrapWidth pixels.
func RenderWrappedText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color, wrapWidth int32) *TextTexture {
	if text == "" || font == nil {
		return nil
	}

	surface, err := font.RenderUTF8BlendedWrapped(text, color, int(max(1, wrapWidth)))
	if err != nil {
		GetInternalLogger().Error("Failed to render wrapped text", "text", text, "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Error("Failed to create text texture", "text", text, "error", err)
		return nil
	}

	return &TextTexture{Texture: texture, W: surface.W, H: surface.H}
}

// DrawText copies t so that its top edge is at y and it is aligned within
// [left, right).
func DrawText(renderer *sdl.Renderer, t *TextTexture, left, right, y int32, align constants.TextAlign) {
	if t == nil {
		return
	}

	x := left
	switch align {
	case constants.TextAlignCenter:
		x = left + (right-left-t.W)/2
	case constants.TextAlignRight:
		x = right - t.W
	}

	renderer.Copy(t.Texture, nil, &sdl.Rect{X: x, Y: y, W: t.W, H: t.H})
}

// ToSDLRect converts an image rectangle.
func ToSDLRect(r image.Rectangle) sdl.Rect {
	return sdl.Rect{X: int32(r.Min.X), Y: int32(r.Min.Y), W: int32(r.Dx()), H: int32(r.Dy())}
}

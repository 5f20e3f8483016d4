package herodeck

import (
	"image"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/imageloader"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/internal"
)

// remoteImages turns loader results into textures for one screen. It owns a
// mount scope, so closing it drops any load still in flight.
type remoteImages struct {
	loader   *imageloader.Loader
	scope    *imageloader.Scope
	textures *internal.TextureCache
	failed   map[string]bool
	names    map[string]string
	renderer *sdl.Renderer
	fade     time.Duration
}

func newRemoteImages(loader *imageloader.Loader, renderer *sdl.Renderer, fade time.Duration) *remoteImages {
	return &remoteImages{
		loader:   loader,
		scope:    loader.Mount(),
		textures: internal.NewTextureCache(),
		failed:   make(map[string]bool),
		names:    make(map[string]string),
		renderer: renderer,
		fade:     fade,
	}
}

// want asks for req unless the view is closing or req is already shown,
// pending or failed. name describes the image in logs. Images already
// decoded in the loader's cache are uploaded at once and skip the crossfade.
func (r *remoteImages) want(req imageloader.Request, name string) {
	if !r.scope.Mounted() {
		return
	}
	key := req.Key()
	if r.failed[key] {
		return
	}
	if _, ok := r.textures.Get(key); ok {
		return
	}
	r.names[key] = name

	if img, ok := r.loader.Cached(req); ok {
		r.upload(req, img, time.Time{})
		return
	}
	r.scope.Request(req)
}

// update uploads everything that finished loading since the last frame.
func (r *remoteImages) update(now time.Time) {
	for _, res := range r.scope.Poll() {
		key := res.Request.Key()
		if res.Err != nil {
			r.failed[key] = true
			internal.GetInternalLogger().Debug("Showing placeholder", "image", r.names[key], "url", res.Request.URL, "error", res.Err)
			continue
		}
		r.upload(res.Request, res.Image, now)
	}
}

func (r *remoteImages) upload(req imageloader.Request, img *image.RGBA, arrived time.Time) {
	key := req.Key()
	texture, err := internal.TextureFromRGBA(r.renderer, img)
	if err != nil {
		r.failed[key] = true
		internal.GetInternalLogger().Error("Failed to upload image", "image", r.names[key], "url", req.URL, "error", err)
		return
	}

	r.textures.Set(key, internal.ImageTexture{
		Texture: texture,
		W:       int32(img.Rect.Dx()),
		H:       int32(img.Rect.Dy()),
		Arrived: arrived,
	})
}

// draw renders req centred in dst, or fills dst with placeholder while the
// image is missing or still fading in.
func (r *remoteImages) draw(req imageloader.Request, dst sdl.Rect, placeholder sdl.Color, now time.Time) {
	t, ok := r.textures.Get(req.Key())

	alpha := uint8(0)
	if ok {
		alpha = imageloader.FadeAlpha(now.Sub(t.Arrived), r.fade)
	}

	if alpha < 255 && placeholder.A > 0 {
		r.renderer.SetDrawColor(placeholder.R, placeholder.G, placeholder.B, placeholder.A)
		r.renderer.FillRect(&dst)
	}
	if !ok {
		return
	}

	t.Texture.SetAlphaMod(alpha)
	r.renderer.Copy(t.Texture, nil, &sdl.Rect{
		X: dst.X + (dst.W-t.W)/2,
		Y: dst.Y + (dst.H-t.H)/2,
		W: t.W,
		H: t.H,
	})
}

// close unmounts the scope and frees every texture.
func (r *remoteImages) close() {
	r.scope.Unmount()
	r.textures.Destroy()
}

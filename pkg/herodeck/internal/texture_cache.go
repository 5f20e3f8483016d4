package internal

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 8

// ImageTexture is an uploaded remote image and when it arrived, for the
// crossfade.
type ImageTexture struct {
	Texture *sdl.Texture
	W, H    int32
	Arrived time.Time
}

// TextureCache keeps GPU textures for loaded images keyed by load request.
// Evicted and replaced textures are destroyed. Use from the UI goroutine only.
type TextureCache struct {
	textures map[string]ImageTexture
	order    []string // least recently used first
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &TextureCache{
		textures: make(map[string]ImageTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) (ImageTexture, bool) {
	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture, true
	}
	return ImageTexture{}, false
}

func (c *TextureCache) Set(key string, texture ImageTexture) {
	if old, exists := c.textures[key]; exists {
		if old.Texture != texture.Texture {
			old.Texture.Destroy()
		}
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		texture.Texture.Destroy()
	}
	c.textures = make(map[string]ImageTexture)
	c.order = c.order[:0]
}

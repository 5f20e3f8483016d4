package imageloader

import (
	"image"
	"sync"
)

const defaultCacheSize = 8

// Cache is a small LRU of decoded, already scaled images. It is shared by
// every scope of a Loader, so it is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	images  map[string]*image.RGBA
	order   []string // least recently used first
	maxSize int
}

// NewCache creates a cache holding at most maxSize images.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = defaultCacheSize
	}
	return &Cache{
		images:  make(map[string]*image.RGBA),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

// Get returns the image stored under key and marks it most recently used.
func (c *Cache) Get(key string) (*image.RGBA, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	img, ok := c.images[key]
	if ok {
		c.touch(key)
	}
	return img, ok
}

// Set stores img under key, evicting the least recently used entry when full.
func (c *Cache) Set(key string, img *image.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.images[key]; exists {
		c.images[key] = img
		c.touch(key)
		return
	}

	if len(c.order) >= c.maxSize {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.images, oldest)
	}

	c.images[key] = img
	c.order = append(c.order, key)
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

func (c *Cache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

// Package imageloader fetches, decodes and scales remote artwork off the UI
// goroutine. Views mount a Scope per appearance; anything that finishes after
// the view unmounts is dropped instead of being drawn into a screen that no
// longer exists.
package imageloader

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"

	"go.uber.org/atomic"
	_ "golang.org/x/image/webp"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/paint"
)

const (
	defaultMaxBytes  = 16 << 20
	defaultMaxPixels = 4096 * 4096
)

// Request identifies an image at a target size.
type Request struct {
	URL    string
	Width  int
	Height int
	Fit    paint.Fit
}

// Key is the cache key for the request.
func (r Request) Key() string {
	return fmt.Sprintf("%s@%dx%d/%s", r.URL, r.Width, r.Height, r.Fit)
}

// Result is a finished load. Exactly one of Image and Err is set.
type Result struct {
	Request Request
	Image   *image.RGBA
	Err     error
}

// Stats are loader counters, mostly for logs and tests.
type Stats struct {
	Fetched   uint64
	Discarded uint64
	InFlight  int64
	Cached    int
}

// Loader is shared by every screen. It is safe for concurrent use.
type Loader struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
	maxPixels int
	logger    *slog.Logger
	cache     *Cache

	fetched   *atomic.Uint64
	discarded *atomic.Uint64
	inFlight  *atomic.Int64
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) { l.client = c }
}

// WithUserAgent sets the User-Agent header on image requests.
func WithUserAgent(ua string) Option {
	return func(l *Loader) { l.userAgent = ua }
}

// WithLogger sets the logger used for load failures.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// WithCacheSize sets how many decoded images are kept.
func WithCacheSize(n int) Option {
	return func(l *Loader) { l.cache = NewCache(n) }
}

// WithMaxBytes caps the size of a downloaded image body.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) { l.maxBytes = n }
}

// WithMaxPixels caps the decoded width times height of an image. Small
// compressed bodies can still declare huge dimensions.
func WithMaxPixels(n int) Option {
	return func(l *Loader) { l.maxPixels = n }
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		client:    http.DefaultClient,
		maxBytes:  defaultMaxBytes,
		maxPixels: defaultMaxPixels,
		logger:    slog.Default(),
		cache:     NewCache(defaultCacheSize),
		fetched:   atomic.NewUint64(0),
		discarded: atomic.NewUint64(0),
		inFlight:  atomic.NewInt64(0),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Stats returns a snapshot of the loader counters.
func (l *Loader) Stats() Stats {
	return Stats{
		Fetched:   l.fetched.Load(),
		Discarded: l.discarded.Load(),
		InFlight:  l.inFlight.Load(),
		Cached:    l.cache.Len(),
	}
}

// Cached returns an already decoded image without fetching.
func (l *Loader) Cached(req Request) (*image.RGBA, bool) {
	return l.cache.Get(req.Key())
}

// Load fetches, decodes and scales req, consulting the cache first.
func (l *Loader) Load(ctx context.Context, req Request) (*image.RGBA, error) {
	if img, ok := l.cache.Get(req.Key()); ok {
		return img, nil
	}

	l.inFlight.Inc()
	defer l.inFlight.Dec()

	src, err := l.fetch(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	img := paint.Scale(src, req.Width, req.Height, req.Fit)
	l.cache.Set(req.Key(), img)
	return img, nil
}

func (l *Loader) fetch(ctx context.Context, url string) (image.Image, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &LoadError{URL: url, Err: err}
	}
	if l.userAgent != "" {
		httpReq.Header.Set("User-Agent", l.userAgent)
	}

	resp, err := l.client.Do(httpReq)
	if err != nil {
		return nil, &LoadError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &LoadError{URL: url, Status: resp.StatusCode, Err: ErrBadStatus}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, l.maxBytes+1))
	if err != nil {
		return nil, &LoadError{URL: url, Status: resp.StatusCode, Err: err}
	}
	if int64(len(body)) > l.maxBytes {
		return nil, &LoadError{URL: url, Status: resp.StatusCode, Err: ErrTooLarge}
	}
	l.fetched.Inc()

	cfg, _, err := image.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		return nil, &LoadError{URL: url, Status: resp.StatusCode, Err: fmt.Errorf("decode: %w", err)}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > l.maxPixels/cfg.Height {
		return nil, &LoadError{URL: url, Status: resp.StatusCode, Err: fmt.Errorf("%w: %dx%d", ErrTooManyPixels, cfg.Width, cfg.Height)}
	}

	img, format, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, &LoadError{URL: url, Status: resp.StatusCode, Err: fmt.Errorf("decode: %w", err)}
	}

	l.logger.Debug("Image fetched", "url", url, "format", format, "bytes", len(body))
	return img, nil
}

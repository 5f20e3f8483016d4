package imageloader

import (
	"context"
	"sync"

	"go.uber.org/atomic"
)

// Scope ties image requests to one appearance of a view. Request and Poll
// are called from the UI goroutine; loads run on their own goroutines.
// After Unmount nothing more is delivered.
type Scope struct {
	loader  *Loader
	ctx     context.Context
	cancel  context.CancelFunc
	mounted *atomic.Bool
	results chan Result
	ready   []Result
	pending map[string]bool
	wg      sync.WaitGroup
}

// Mount opens a scope for a view that is about to appear.
func (l *Loader) Mount() *Scope {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scope{
		loader:  l,
		ctx:     ctx,
		cancel:  cancel,
		mounted: atomic.NewBool(true),
		results: make(chan Result, 16),
		pending: make(map[string]bool),
	}
}

// Mounted reports whether the scope still delivers results.
func (s *Scope) Mounted() bool {
	return s.mounted.Load()
}

// Request starts loading req. Cached images are delivered on the next Poll
// without touching the network. It returns false if the same request is
// already pending or the scope is unmounted.
func (s *Scope) Request(req Request) bool {
	if !s.mounted.Load() {
		return false
	}
	key := req.Key()
	if s.pending[key] {
		return false
	}
	s.pending[key] = true

	if img, ok := s.loader.Cached(req); ok {
		s.ready = append(s.ready, Result{Request: req, Image: img})
		return true
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		img, err := s.loader.Load(s.ctx, req)
		s.deliver(Result{Request: req, Image: img, Err: err})
	}()
	return true
}

func (s *Scope) deliver(r Result) {
	if !s.mounted.Load() {
		s.loader.discarded.Inc()
		return
	}
	if r.Err != nil {
		s.loader.logger.Debug("Image load failed", "url", r.Request.URL, "error", r.Err)
	}
	select {
	case s.results <- r:
		// Unmount may have drained between the check above and the send.
		if !s.mounted.Load() {
			s.drainOne()
		}
	case <-s.ctx.Done():
		s.loader.discarded.Inc()
	}
}

func (s *Scope) drainOne() {
	select {
	case <-s.results:
		s.loader.discarded.Inc()
	default:
	}
}

// Poll returns every result that finished since the last call. It never
// blocks.
func (s *Scope) Poll() []Result {
	if !s.mounted.Load() {
		return nil
	}

	out := s.ready
	s.ready = nil
	for {
		select {
		case r := <-s.results:
			out = append(out, r)
		default:
			for _, r := range out {
				delete(s.pending, r.Request.Key())
			}
			return out
		}
	}
}

// Unmount cancels in-flight loads and drops anything they produce later.
// It does not wait for them.
func (s *Scope) Unmount() {
	if !s.mounted.CompareAndSwap(true, false) {
		return
	}
	s.cancel()
	s.ready = nil
	s.drain()
}

func (s *Scope) drain() {
	for len(s.results) > 0 {
		s.drainOne()
	}
}

// Wait blocks until every load started by this scope has returned. On an
// unmounted scope anything still buffered is counted as discarded.
func (s *Scope) Wait() {
	s.wg.Wait()
	if !s.mounted.Load() {
		s.drain()
	}
}

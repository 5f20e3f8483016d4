// Package layout computes screen geometry and the snapping carousel used on
// the browse screen. Nothing here touches SDL; the screens feed it window
// sizes and pointer positions and read rectangles back.
package layout

import (
	"math"
	"time"
)

const (
	// snapRate controls how fast the strip eases toward its target, per second.
	snapRate = 12.0
	// flingWindow is how far release velocity projects the offset.
	flingWindow = 0.2
	// settleEpsilon is the distance in pixels treated as "arrived".
	settleEpsilon = 0.5
	// flingIdle is how long the pointer may rest before release and still fling.
	flingIdle = 100 * time.Millisecond
)

// Geometry describes the card strip in pixels.
type Geometry struct {
	CardWidth float64
	Spacing   float64
	Viewport  float64
}

// Stride is the distance between the left edges of adjacent cards.
func (g Geometry) Stride() float64 {
	s := g.CardWidth + g.Spacing
	if s <= 0 {
		return 1
	}
	return s
}

// Resume is carousel state worth keeping across a detail round trip.
type Resume struct {
	Offset float64
}

// Carousel is a horizontally scrolling strip of count cards that always comes
// to rest with one card centred. Offset 0 centres card 0; offset i*Stride
// centres card i.
type Carousel struct {
	count  int
	geom   Geometry
	offset float64
	target float64
	drag   dragState
}

type dragState struct {
	active      bool
	startX      float64
	startOffset float64
	startFocus  int
	lastX       float64
	lastAt      time.Time
	velocity    float64
}

// NewCarousel creates a carousel at card 0.
func NewCarousel(count int, geom Geometry) *Carousel {
	if count < 0 {
		count = 0
	}
	return &Carousel{count: count, geom: geom}
}

// Geometry returns the strip geometry.
func (c *Carousel) Geometry() Geometry {
	return c.geom
}

// Offset returns the current scroll offset in pixels.
func (c *Carousel) Offset() float64 {
	return c.offset
}

func (c *Carousel) maxOffset() float64 {
	if c.count <= 1 {
		return 0
	}
	return float64(c.count-1) * c.geom.Stride()
}

func (c *Carousel) clampOffset(o float64) float64 {
	return math.Max(0, math.Min(o, c.maxOffset()))
}

func (c *Carousel) clampIndex(i int) int {
	if c.count == 0 {
		return -1
	}
	return max(0, min(i, c.count-1))
}

func (c *Carousel) indexAt(offset float64) int {
	return c.clampIndex(int(math.Round(offset / c.geom.Stride())))
}

// Focus returns the card nearest the centre, or -1 when there are no cards.
func (c *Carousel) Focus() int {
	return c.indexAt(c.offset)
}

// TargetFocus returns the card the strip will come to rest on.
func (c *Carousel) TargetFocus() int {
	return c.indexAt(c.target)
}

// SetFocus starts snapping toward card i, clamped to the strip.
func (c *Carousel) SetFocus(i int) {
	i = c.clampIndex(i)
	if i < 0 {
		return
	}
	c.target = float64(i) * c.geom.Stride()
}

// Next snaps one card to the right.
func (c *Carousel) Next() {
	c.SetFocus(c.TargetFocus() + 1)
}

// Prev snaps one card to the left.
func (c *Carousel) Prev() {
	c.SetFocus(c.TargetFocus() - 1)
}

// Dragging reports whether a pointer drag is in progress.
func (c *Carousel) Dragging() bool {
	return c.drag.active
}

// BeginDrag starts following the pointer at x.
func (c *Carousel) BeginDrag(x float64, now time.Time) {
	c.drag = dragState{
		active:      true,
		startX:      x,
		startOffset: c.offset,
		startFocus:  c.Focus(),
		lastX:       x,
		lastAt:      now,
	}
}

// DragTo moves the strip with the pointer. Dragging past either end is
// resisted rather than clamped hard.
func (c *Carousel) DragTo(x float64, now time.Time) {
	if !c.drag.active {
		return
	}

	if dt := now.Sub(c.drag.lastAt).Seconds(); dt > 0 {
		c.drag.velocity = (x - c.drag.lastX) / dt
	}
	c.drag.lastX = x
	c.drag.lastAt = now

	o := c.drag.startOffset - (x - c.drag.startX)
	if o < 0 {
		o /= 3
	} else if m := c.maxOffset(); o > m {
		o = m + (o-m)/3
	}
	c.offset = o
	c.target = o
}

// EndDrag releases the pointer and snaps to a card. The velocity of the
// last move projects the offset so a quick flick moves one card, never more.
// A release after the pointer rested for flingIdle does not fling.
func (c *Carousel) EndDrag(x float64, now time.Time) {
	if !c.drag.active {
		return
	}
	// Releases usually repeat the last motion position; that must not
	// reset the velocity to zero.
	if x != c.drag.lastX {
		c.DragTo(x, now)
	} else if now.Sub(c.drag.lastAt) > flingIdle {
		c.drag.velocity = 0
	}

	projected := c.offset - c.drag.velocity*flingWindow
	i := c.indexAt(projected)
	i = max(c.drag.startFocus-1, min(i, c.drag.startFocus+1))

	c.drag = dragState{}
	c.SetFocus(i)
}

// DragDistance returns how far the pointer has moved since BeginDrag.
func (c *Carousel) DragDistance() float64 {
	if !c.drag.active {
		return 0
	}
	return math.Abs(c.drag.lastX - c.drag.startX)
}

// CancelDrag abandons a drag and snaps back to the nearest card.
func (c *Carousel) CancelDrag() {
	if !c.drag.active {
		return
	}
	c.drag = dragState{}
	c.SetFocus(c.Focus())
}

// Update eases the offset toward the target.
func (c *Carousel) Update(dt time.Duration) {
	if c.drag.active {
		return
	}

	diff := c.target - c.offset
	if math.Abs(diff) < settleEpsilon {
		c.offset = c.target
		return
	}

	step := 1 - math.Exp(-dt.Seconds()*snapRate)
	c.offset += diff * step
}

// Settled reports whether the strip is at rest.
func (c *Carousel) Settled() bool {
	return !c.drag.active && c.offset == c.target
}

// CardLeft returns the x of card i's left edge relative to the viewport.
func (c *Carousel) CardLeft(i int) float64 {
	return c.geom.Viewport/2 - c.geom.CardWidth/2 + float64(i)*c.geom.Stride() - c.offset
}

// Visible reports whether any part of card i is inside the viewport.
func (c *Carousel) Visible(i int) bool {
	if i < 0 || i >= c.count {
		return false
	}
	left := c.CardLeft(i)
	return left+c.geom.CardWidth > 0 && left < c.geom.Viewport
}

// HitTest returns the card under viewport x. The result is the card's
// position in the strip, which is the catalog index it was built from.
func (c *Carousel) HitTest(x float64) (int, bool) {
	for i := 0; i < c.count; i++ {
		left := c.CardLeft(i)
		if x >= left && x < left+c.geom.CardWidth {
			return i, true
		}
	}
	return -1, false
}

// Resume captures the resting position.
func (c *Carousel) Resume() *Resume {
	return &Resume{Offset: c.target}
}

// Restore jumps straight to a saved position. A nil resume is ignored.
func (c *Carousel) Restore(r *Resume) {
	if r == nil {
		return
	}
	o := c.clampOffset(r.Offset)
	if i := c.indexAt(o); i >= 0 {
		o = float64(i) * c.geom.Stride()
	}
	c.offset = o
	c.target = o
}

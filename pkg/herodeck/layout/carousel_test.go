package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testGeom = Geometry{CardWidth: 300, Spacing: 20, Viewport: 400}

func settle(c *Carousel) {
	for i := 0; i < 500 && !c.Settled(); i++ {
		c.Update(16 * time.Millisecond)
	}
}

func TestCarouselStartsOnFirstCard(t *testing.T) {
	c := NewCarousel(3, testGeom)
	require.Equal(t, 0, c.Focus())
	require.True(t, c.Settled())
	require.InDelta(t, 50, c.CardLeft(0), 0.001)
	require.InDelta(t, 370, c.CardLeft(1), 0.001)
}

func TestNextPrevClampAtEnds(t *testing.T) {
	c := NewCarousel(3, testGeom)

	c.Prev()
	settle(c)
	require.Equal(t, 0, c.Focus())

	c.Next()
	c.Next()
	c.Next()
	settle(c)
	require.Equal(t, 2, c.Focus())
	require.InDelta(t, 640, c.Offset(), 0.001)
}

func TestUpdateEasesTowardTarget(t *testing.T) {
	c := NewCarousel(3, testGeom)
	c.SetFocus(1)

	c.Update(16 * time.Millisecond)
	require.Greater(t, c.Offset(), 0.0)
	require.Less(t, c.Offset(), 320.0)
	require.False(t, c.Settled())

	settle(c)
	require.Equal(t, 320.0, c.Offset())
	require.Equal(t, 1, c.Focus())
}

func TestDragSnapsToNearestCard(t *testing.T) {
	c := NewCarousel(3, testGeom)
	now := time.Unix(0, 0)

	c.BeginDrag(300, now)
	// slow drag left by 200px: past half a stride
	for i := 1; i <= 20; i++ {
		now = now.Add(50 * time.Millisecond)
		c.DragTo(300-float64(i*10), now)
	}
	require.True(t, c.Dragging())
	require.InDelta(t, 200, c.Offset(), 0.001)

	now = now.Add(time.Second)
	c.EndDrag(100, now)
	settle(c)
	require.Equal(t, 1, c.Focus())
}

func TestShortSlowDragSnapsBack(t *testing.T) {
	c := NewCarousel(3, testGeom)
	now := time.Unix(0, 0)

	c.BeginDrag(300, now)
	now = now.Add(time.Second)
	c.DragTo(260, now)
	now = now.Add(time.Second)
	c.EndDrag(260, now)
	settle(c)

	require.Equal(t, 0, c.Focus())
}

func TestFlingMovesAtMostOneCard(t *testing.T) {
	c := NewCarousel(5, testGeom)
	now := time.Unix(0, 0)

	c.BeginDrag(390, now)
	now = now.Add(10 * time.Millisecond)
	c.DragTo(330, now)
	now = now.Add(10 * time.Millisecond)
	c.EndDrag(270, now) // very fast flick left

	settle(c)
	require.Equal(t, 1, c.Focus())
}

func TestFlingWhenReleasedAtLastMotion(t *testing.T) {
	c := NewCarousel(5, testGeom)
	now := time.Unix(0, 0)

	c.BeginDrag(390, now)
	now = now.Add(10 * time.Millisecond)
	c.DragTo(330, now) // 6000 px/s
	now = now.Add(2 * time.Millisecond)
	c.EndDrag(330, now)

	settle(c)
	require.Equal(t, 1, c.Focus())
}

func TestNoFlingAfterPointerRests(t *testing.T) {
	c := NewCarousel(5, testGeom)
	now := time.Unix(0, 0)

	c.BeginDrag(390, now)
	now = now.Add(10 * time.Millisecond)
	c.DragTo(330, now)
	now = now.Add(500 * time.Millisecond)
	c.EndDrag(330, now)

	settle(c)
	require.Equal(t, 0, c.Focus())
}

func TestDragPastEndsIsResisted(t *testing.T) {
	c := NewCarousel(2, testGeom)
	now := time.Unix(0, 0)

	c.BeginDrag(100, now)
	c.DragTo(400, now.Add(time.Second))
	require.InDelta(t, -100, c.Offset(), 0.001)

	c.CancelDrag()
	settle(c)
	require.Equal(t, 0.0, c.Offset())
}

func TestHitTestReturnsEnumeratedIndex(t *testing.T) {
	c := NewCarousel(3, testGeom)

	i, ok := c.HitTest(200)
	require.True(t, ok)
	require.Equal(t, 0, i)

	i, ok = c.HitTest(380)
	require.True(t, ok)
	require.Equal(t, 1, i)

	_, ok = c.HitTest(360) // gap between cards
	require.False(t, ok)

	_, ok = c.HitTest(10)
	require.False(t, ok)
}

func TestVisible(t *testing.T) {
	c := NewCarousel(3, testGeom)
	require.True(t, c.Visible(0))
	require.True(t, c.Visible(1))
	require.False(t, c.Visible(2))
	require.False(t, c.Visible(-1))
	require.False(t, c.Visible(3))
}

func TestEmptyCarouselHasNoSelection(t *testing.T) {
	c := NewCarousel(0, testGeom)
	require.Equal(t, -1, c.Focus())

	c.Next()
	c.SetFocus(4)
	now := time.Unix(0, 0)
	c.BeginDrag(10, now)
	c.EndDrag(300, now.Add(time.Millisecond))
	settle(c)

	require.Equal(t, -1, c.Focus())
	_, ok := c.HitTest(200)
	require.False(t, ok)
}

func TestResumeRoundTrip(t *testing.T) {
	c := NewCarousel(3, testGeom)
	c.SetFocus(2)
	r := c.Resume()

	restored := NewCarousel(3, testGeom)
	restored.Restore(r)
	require.True(t, restored.Settled())
	require.Equal(t, 2, restored.Focus())

	restored.Restore(nil)
	require.Equal(t, 2, restored.Focus())
}

func TestRestoreClampsAndSnaps(t *testing.T) {
	c := NewCarousel(3, testGeom)
	c.Restore(&Resume{Offset: 10_000})
	require.Equal(t, 2, c.Focus())
	require.Equal(t, 640.0, c.Offset())

	c.Restore(&Resume{Offset: 300})
	require.Equal(t, 320.0, c.Offset())
}

func TestZeroGeometryDoesNotDivideByZero(t *testing.T) {
	c := NewCarousel(3, Geometry{})
	c.Next()
	settle(c)
	require.Equal(t, 1, c.Focus())
}

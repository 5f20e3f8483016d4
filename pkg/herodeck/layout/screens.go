package layout

import (
	"image"
	"math"
)

// The artwork was designed against a 412x915 portrait canvas; every length
// below is in those units and multiplied by Scale.
const (
	designWidth  = 412
	designHeight = 915
)

// Scale returns the factor mapping design units to window pixels.
func Scale(w, h int) float64 {
	if w <= 0 || h <= 0 {
		return 1
	}
	return math.Min(float64(w)/designWidth, float64(h)/designHeight)
}

func px(v, s float64) int {
	return int(math.Round(v * s))
}

// FontSizes are the point sizes used by the screens, already scaled.
type FontSizes struct {
	Title      int
	CardName   int
	DetailName int
	DetailBody int
}

// FontSizesFor returns scaled font sizes for a window.
func FontSizesFor(w, h int) FontSizes {
	s := Scale(w, h)
	return FontSizes{
		Title:      max(8, px(35, s)),
		CardName:   max(8, px(40, s)),
		DetailName: max(8, px(45, s)),
		DetailBody: max(8, px(35, s)),
	}
}

// Browse is the geometry of the browse screen.
type Browse struct {
	Scale float64
	Logo  image.Rectangle
	Title image.Rectangle
	// Strip is the band the carousel scrolls in; card rectangles come from
	// the Carousel relative to Strip.Min.X.
	Strip image.Rectangle
	// Card is the size of one card.
	Card image.Point
	// NameInset positions the name overlay relative to a card's top-left.
	NameInset image.Point
	Spacing   int
}

// BrowseFor lays out the browse screen for a w x h window.
func BrowseFor(w, h int) Browse {
	s := Scale(w, h)

	logo := image.Rect(0, px(70, s), w, px(70+110, s))
	title := image.Rect(0, logo.Max.Y+px(20, s), w, logo.Max.Y+px(20+45, s))

	stripTop := title.Max.Y + px(30, s)
	cardW, cardH := px(300, s), px(550, s)
	if room := h - px(20, s) - stripTop; room < cardH && room > 0 {
		cardW = cardW * room / cardH
		cardH = room
	}

	nameY := cardH - px(50, s)*cardH/max(1, px(550, s))

	return Browse{
		Scale:     s,
		Logo:      logo,
		Title:     title,
		Strip:     image.Rect(0, stripTop, w, stripTop+cardH),
		Card:      image.Pt(cardW, cardH),
		NameInset: image.Pt(px(3, s), nameY),
		Spacing:   px(24, s),
	}
}

// CarouselGeometry converts the browse layout into carousel geometry.
func (b Browse) CarouselGeometry() Geometry {
	return Geometry{
		CardWidth: float64(b.Card.X),
		Spacing:   float64(b.Spacing),
		Viewport:  float64(b.Strip.Dx()),
	}
}

// CardRect returns card i's rectangle on screen.
func (b Browse) CardRect(c *Carousel, i int) image.Rectangle {
	x := b.Strip.Min.X + int(math.Round(c.CardLeft(i)))
	return image.Rect(x, b.Strip.Min.Y, x+b.Card.X, b.Strip.Min.Y+b.Card.Y)
}

// Detail is the geometry of the detail screen.
type Detail struct {
	Scale   float64
	Image   image.Rectangle
	Name    image.Point
	Message image.Point
	Back    image.Rectangle
}

// DetailFor lays out the detail screen for a w x h window.
func DetailFor(w, h int) Detail {
	s := Scale(w, h)
	backX, backY, backSize := px(12, s), px(43, s), max(16, px(43, s))

	return Detail{
		Scale:   s,
		Image:   image.Rect(0, 0, w, h),
		Name:    image.Pt(px(32, s), h-px(165, s)),
		Message: image.Pt(px(32, s), h-px(105, s)),
		Back:    image.Rect(backX, backY, backX+backSize, backY+backSize),
	}
}

// BackHit reports whether p lands on the back affordance. The touch target
// is padded so small screens stay usable.
func (d Detail) BackHit(p image.Point) bool {
	pad := max(8, px(12, d.Scale))
	return p.In(d.Back.Inset(-pad))
}

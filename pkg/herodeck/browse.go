package herodeck

import (
	"context"
	"image"
	"math"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/catalog"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/constants"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/flow"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/imageloader"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/internal"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/labels"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/layout"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/paint"
)

// ScreenOptions are shared by both screens.
type ScreenOptions struct {
	Loader *imageloader.Loader
	Labels *labels.Labels
	Fade   time.Duration // Crossfade for freshly loaded images, 0 for none
}

type browseState struct {
	window      *internal.Window
	renderer    *sdl.Renderer
	theme       internal.Theme
	labels      *labels.Labels
	heroes      catalog.Catalog
	layout      layout.Browse
	carousel    *layout.Carousel
	directional internal.DirectionalInput
	images      *remoteImages

	background *sdl.Texture
	title      *internal.TextTexture
	hint       *internal.TextTexture
	names      []*internal.TextTexture

	logoRequest  imageloader.Request
	cardRequests []imageloader.Request

	lastFrame     time.Time
	lastInputTime time.Time
	inputDelay    time.Duration

	finished bool
	result   flow.BrowseResult
}

// BrowseScreen shows the hero carousel until the user picks a hero or
// leaves. Left/Right and drags move between cards, A or a tap on a card
// selects it, B or closing the window exits. The carousel position is
// returned as resume state and restored from input.
func BrowseScreen(ctx context.Context, heroes catalog.Catalog, input flow.BrowseInput, options ScreenOptions) (flow.BrowseResult, error) {
	state, err := initializeBrowseState(heroes, input, options)
	if err != nil {
		return flow.BrowseResult{}, err
	}
	defer state.cleanup()

	for !state.finished {
		if ctx.Err() != nil {
			state.exit()
			break
		}
		state.handleEvents()
		state.update()
		state.render()
	}

	return state.result, nil
}

func initializeBrowseState(heroes catalog.Catalog, input flow.BrowseInput, options ScreenOptions) (*browseState, error) {
	window := internal.GetWindow()
	w, h := int(window.GetWidth()), int(window.GetHeight())
	geometry := layout.BrowseFor(w, h)

	state := &browseState{
		window:        window,
		renderer:      window.Renderer,
		theme:         internal.GetTheme(),
		labels:        options.Labels,
		heroes:        heroes,
		layout:        geometry,
		carousel:      layout.NewCarousel(heroes.Len(), geometry.CarouselGeometry()),
		directional:   internal.NewDirectionalInput(),
		images:        newRemoteImages(options.Loader, window.Renderer, options.Fade),
		lastFrame:     time.Now(),
		lastInputTime: time.Now(),
		inputDelay:    constants.DefaultInputDelay,
	}
	state.carousel.Restore(input.Resume)

	if err := state.loadTextures(w, h); err != nil {
		state.cleanup()
		return nil, err
	}

	state.logoRequest = imageloader.Request{
		URL:    catalog.LogoURL,
		Width:  geometry.Logo.Dx(),
		Height: geometry.Logo.Dy(),
		Fit:    paint.FitContain,
	}
	state.images.want(state.logoRequest, state.labels.Get(labels.LogoDescription))

	for _, hero := range heroes.All() {
		state.cardRequests = append(state.cardRequests, imageloader.Request{
			URL:    hero.ImageURL,
			Width:  geometry.Card.X,
			Height: geometry.Card.Y,
			Fit:    paint.FitCover,
		})
	}

	return state, nil
}

func (s *browseState) loadTextures(w, h int) error {
	background, err := internal.TextureFromRGBA(s.renderer, paint.VerticalGradient(w, h, s.theme.BackgroundStops))
	if err != nil {
		return NewInfrastructureError("browse_background", err)
	}
	s.background = background

	s.title = internal.RenderText(s.renderer, s.labels.Get(labels.ChooseHero), internal.Fonts.Title, s.theme.TextColor)
	s.hint = internal.RenderText(s.renderer, s.labels.Get(labels.BrowseHelp), internal.Fonts.Hint, s.theme.HintColor)

	s.names = make([]*internal.TextTexture, s.heroes.Len())
	for i, hero := range s.heroes.All() {
		s.names[i] = internal.RenderText(s.renderer, hero.Name, internal.Fonts.CardName, s.theme.TextColor)
	}
	return nil
}

func (s *browseState) handleEvents() {
	processor := internal.GetInputProcessor()

	for event := sdl.WaitEventTimeout(int(constants.FrameInterval / time.Millisecond)); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			s.exit()
			return
		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerDeviceEvent:
			if inputEvent := processor.ProcessSDLEvent(event); inputEvent != nil {
				s.handleInputEvent(*inputEvent)
			}
		case *sdl.MouseButtonEvent, *sdl.MouseMotionEvent:
			if pointer, ok := processor.ProcessPointerEvent(event); ok {
				s.handlePointer(pointer)
			}
		}
		if s.finished {
			return
		}
	}

	for _, inputEvent := range processor.DrainHardware() {
		s.handleInputEvent(inputEvent)
		if s.finished {
			return
		}
	}
}

func (s *browseState) handleInputEvent(inputEvent internal.Event) {
	now := time.Now()

	if inputEvent.Repeat {
		return
	}

	if s.directional.SetHeld(inputEvent.Button, inputEvent.Pressed, now) {
		if inputEvent.Pressed {
			s.step(s.directional.HeldDirection())
		}
		return
	}

	if !inputEvent.Pressed || !s.isInputAllowed(now) {
		return
	}
	s.lastInputTime = now

	switch inputEvent.Button {
	case constants.VirtualButtonA:
		if i := s.carousel.TargetFocus(); i >= 0 {
			s.selectCard(i)
		}
	case constants.VirtualButtonB:
		s.exit()
	}
}

func (s *browseState) isInputAllowed(now time.Time) bool {
	return now.Sub(s.lastInputTime) >= s.inputDelay
}

func (s *browseState) step(direction internal.Direction) {
	switch direction {
	case internal.DirectionLeft:
		s.carousel.Prev()
	case internal.DirectionRight:
		s.carousel.Next()
	}
}

func (s *browseState) handlePointer(pointer internal.PointerEvent) {
	now := time.Now()
	x := float64(pointer.X - int32(s.layout.Strip.Min.X))

	switch pointer.Phase {
	case internal.PointerDown:
		if image.Pt(int(pointer.X), int(pointer.Y)).In(s.layout.Strip) {
			s.carousel.BeginDrag(x, now)
		}

	case internal.PointerMove:
		s.carousel.DragTo(x, now)

	case internal.PointerUp:
		if !s.carousel.Dragging() {
			return
		}
		if s.carousel.DragDistance() > constants.TapSlop {
			s.carousel.EndDrag(x, now)
			return
		}

		s.carousel.CancelDrag()
		if i, ok := s.carousel.HitTest(x); ok {
			s.selectCard(i)
		}
	}
}

// selectCard finishes with the card at position i of the strip, which is
// the index the card was enumerated with.
func (s *browseState) selectCard(i int) {
	s.result = flow.BrowseResult{
		Action: flow.BrowseActionSelected,
		Index:  i,
		Resume: s.carousel.Resume(),
	}
	s.finished = true
}

func (s *browseState) exit() {
	s.result = flow.BrowseResult{
		Action: flow.BrowseActionExit,
		Resume: s.carousel.Resume(),
	}
	s.finished = true
}

func (s *browseState) update() {
	now := time.Now()
	dt := now.Sub(s.lastFrame)
	s.lastFrame = now

	s.step(s.directional.Update(now))
	s.carousel.Update(dt)

	s.images.update(now)
	for i, hero := range s.heroes.All() {
		if s.carousel.Visible(i) {
			s.images.want(s.cardRequests[i], hero.Name+" "+s.labels.Get(labels.CardImageDescription))
		}
	}
}

func (s *browseState) render() {
	now := time.Now()

	s.window.Clear(sdl.Color{A: 255})
	s.renderer.Copy(s.background, nil, nil)

	s.images.draw(s.logoRequest, internal.ToSDLRect(s.layout.Logo), sdl.Color{}, now)

	if s.title != nil {
		titleY := int32(s.layout.Title.Min.Y) + (int32(s.layout.Title.Dy())-s.title.H)/2
		internal.DrawText(s.renderer, s.title, 0, s.window.GetWidth(), titleY, constants.TextAlignCenter)
	}

	s.renderCards(now)

	if s.hint != nil && s.window.GetHeight()-int32(s.layout.Strip.Max.Y) >= s.hint.H+4 {
		internal.DrawText(s.renderer, s.hint, 0, s.window.GetWidth(), s.window.GetHeight()-s.hint.H-4, constants.TextAlignCenter)
	}

	s.window.Present()
}

func (s *browseState) renderCards(now time.Time) {
	strip := internal.ToSDLRect(s.layout.Strip)
	s.renderer.SetClipRect(&strip)
	defer s.renderer.SetClipRect(nil)

	focus := s.carousel.TargetFocus()

	for i := range s.heroes.All() {
		if !s.carousel.Visible(i) {
			continue
		}
		card := internal.ToSDLRect(s.layout.CardRect(s.carousel, i))

		s.images.draw(s.cardRequests[i], card, s.theme.PlaceholderColor, now)

		if name := s.names[i]; name != nil {
			nameX := card.X + int32(s.layout.NameInset.X)
			nameY := card.Y + int32(s.layout.NameInset.Y) - name.H/2
			internal.DrawText(s.renderer, name, nameX, card.X+card.W, nameY, constants.TextAlignLeft)
		}

		if i == focus && s.carousel.Settled() {
			s.drawFocus(card)
		}
	}
}

func (s *browseState) drawFocus(card sdl.Rect) {
	c := s.theme.FocusColor
	s.renderer.SetDrawColor(c.R, c.G, c.B, c.A)

	thickness := int32(max(2, math.Round(3*s.layout.Scale)))
	for t := int32(0); t < thickness; t++ {
		s.renderer.DrawRect(&sdl.Rect{X: card.X + t, Y: card.Y + t, W: card.W - 2*t, H: card.H - 2*t})
	}
}

func (s *browseState) cleanup() {
	s.images.close()

	if s.background != nil {
		s.background.Destroy()
	}
	s.title.Destroy()
	s.hint.Destroy()
	for _, name := range s.names {
		name.Destroy()
	}
}

package herodeck

import (
	"context"
	"image"
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

type detailScreenState struct {
	window   *internal.Window
	renderer *sdl.Renderer
	theme    internal.Theme
	hero     catalog.Hero
	layout   layout.Detail
	images   *remoteImages

	imageRequest imageloader.Request
	backArrow    *sdl.Texture
	name         *internal.TextTexture
	message      *internal.TextTexture

	backPressed   bool
	lastInputTime time.Time
	inputDelay    time.Duration

	finished bool
	result   flow.DetailResult
}

// DetailScreen shows one hero full screen: the image cropped to the window
// with the name and message over it, and a back arrow in the corner. The
// arrow, B, Escape or Backspace go back; closing the window exits.
func DetailScreen(ctx context.Context, hero catalog.Hero, _ flow.DetailInput, options ScreenOptions) (flow.DetailResult, error) {
	state, err := initializeDetailScreenState(hero, options)
	if err != nil {
		return flow.DetailResult{}, err
	}
	defer state.cleanup()

	for !state.finished {
		if ctx.Err() != nil {
			state.finish(flow.DetailActionExit)
			break
		}
		state.handleEvents()
		state.update()
		state.render()
	}

	return state.result, nil
}

func initializeDetailScreenState(hero catalog.Hero, options ScreenOptions) (*detailScreenState, error) {
	window := internal.GetWindow()
	w, h := int(window.GetWidth()), int(window.GetHeight())
	geometry := layout.DetailFor(w, h)

	state := &detailScreenState{
		window:        window,
		renderer:      window.Renderer,
		theme:         internal.GetTheme(),
		hero:          hero,
		layout:        geometry,
		images:        newRemoteImages(options.Loader, window.Renderer, options.Fade),
		lastInputTime: time.Now(),
		inputDelay:    constants.DefaultInputDelay,
		imageRequest: imageloader.Request{
			URL:    hero.ImageURL,
			Width:  geometry.Image.Dx(),
			Height: geometry.Image.Dy(),
			Fit:    paint.FitCover,
		},
	}

	if err := state.loadTextures(options.Labels); err != nil {
		state.cleanup()
		return nil, err
	}

	state.images.want(state.imageRequest, hero.Name+" "+options.Labels.Get(labels.CardImageDescription))
	return state, nil
}

func (s *detailScreenState) loadTextures(l *labels.Labels) error {
	arrow, err := paint.BackArrow(s.layout.Back.Dx())
	if err != nil {
		return NewInfrastructureError("detail_back_arrow", err)
	}
	s.backArrow, err = internal.TextureFromRGBA(s.renderer, arrow)
	if err != nil {
		return NewInfrastructureError("detail_back_arrow", err)
	}
	internal.GetInternalLogger().Debug("Back affordance ready", "label", l.Get(labels.BackDescription), "size", s.layout.Back.Dx())

	wrap := s.window.GetWidth() - 2*int32(s.layout.Message.X)
	s.name = internal.RenderText(s.renderer, s.hero.Name, internal.Fonts.DetailName, s.theme.TextColor)
	s.message = internal.RenderWrappedText(s.renderer, s.hero.Message, internal.Fonts.DetailBody, s.theme.TextColor, wrap)
	return nil
}

func (s *detailScreenState) handleEvents() {
	processor := internal.GetInputProcessor()

	for event := sdl.WaitEventTimeout(int(constants.FrameInterval / time.Millisecond)); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			s.finish(flow.DetailActionExit)
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

func (s *detailScreenState) handleInputEvent(inputEvent internal.Event) {
	now := time.Now()
	if !inputEvent.Pressed || inputEvent.Repeat || now.Sub(s.lastInputTime) < s.inputDelay {
		return
	}
	s.lastInputTime = now

	if inputEvent.Button == constants.VirtualButtonB {
		s.finish(flow.DetailActionBack)
	}
}

// handlePointer goes back when a press both starts and ends on the arrow.
func (s *detailScreenState) handlePointer(pointer internal.PointerEvent) {
	hit := s.layout.BackHit(image.Pt(int(pointer.X), int(pointer.Y)))

	switch pointer.Phase {
	case internal.PointerDown:
		s.backPressed = hit
	case internal.PointerUp:
		if s.backPressed && hit {
			s.finish(flow.DetailActionBack)
		}
		s.backPressed = false
	}
}

func (s *detailScreenState) finish(action flow.DetailAction) {
	s.result = flow.DetailResult{Action: action}
	s.finished = true
}

func (s *detailScreenState) update() {
	s.images.update(time.Now())
}

func (s *detailScreenState) render() {
	now := time.Now()

	s.window.Clear(sdl.Color{A: 255})

	s.images.draw(s.imageRequest, internal.ToSDLRect(s.layout.Image), s.theme.PlaceholderColor, now)

	right := s.window.GetWidth()
	internal.DrawText(s.renderer, s.name, int32(s.layout.Name.X), right, int32(s.layout.Name.Y), constants.TextAlignLeft)
	internal.DrawText(s.renderer, s.message, int32(s.layout.Message.X), right, int32(s.layout.Message.Y), constants.TextAlignLeft)

	back := internal.ToSDLRect(s.layout.Back)
	if s.backPressed {
		s.backArrow.SetAlphaMod(160)
	} else {
		s.backArrow.SetAlphaMod(255)
	}
	s.renderer.Copy(s.backArrow, nil, &back)

	s.window.Present()
}

func (s *detailScreenState) cleanup() {
	s.images.close()

	if s.backArrow != nil {
		s.backArrow.Destroy()
	}
	s.name.Destroy()
	s.message.Destroy()
}

package internal

import (
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/herodeck/pkg/herodeck/constants"
	"github.com/BrandonKowalski/herodeck/pkg/herodeck/internal/hwinput"
)

// Event is a virtual button press or release.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

// PointerPhase is the stage of a mouse or touch gesture.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

// PointerEvent is a primary-button mouse or touch event in logical
// window coordinates.
type PointerEvent struct {
	Phase PointerPhase
	X, Y  int32
}

// InputProcessor maps keyboard, controller and evdev input to virtual buttons.
type InputProcessor struct {
	flipFaceButtons bool
	controllers     map[sdl.JoystickID]*sdl.GameController
	hardware        <-chan hwinput.Event
	logger          *slog.Logger
}

var inputProcessor *InputProcessor

func InitInputProcessor(flipFaceButtons bool) {
	inputProcessor = &InputProcessor{
		flipFaceButtons: flipFaceButtons,
		controllers:     make(map[sdl.JoystickID]*sdl.GameController),
		logger:          GetInternalLogger(),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		inputProcessor.openController(i)
	}
}

func (p *InputProcessor) log() *slog.Logger {
	if p.logger == nil {
		return GetInternalLogger()
	}
	return p.logger
}

func (p *InputProcessor) mapped(source string, ev Event) Event {
	p.log().Debug("Button", "source", source, "button", ev.Button.GetName(), "pressed", ev.Pressed, "repeat", ev.Repeat)
	return ev
}

func GetInputProcessor() *InputProcessor {
	if inputProcessor == nil {
		InitInputProcessor(false)
	}
	return inputProcessor
}

func (p *InputProcessor) openController(deviceIndex int) {
	if !sdl.IsGameController(deviceIndex) {
		return
	}
	controller := sdl.GameControllerOpen(deviceIndex)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open controller", "index", deviceIndex, "error", sdl.GetError())
		return
	}
	id := controller.Joystick().InstanceID()
	p.controllers[id] = controller
	p.log().Debug("Controller opened", "index", deviceIndex, "name", controller.Name())
}

// AttachHardware feeds evdev events into DrainHardware.
func (p *InputProcessor) AttachHardware(events <-chan hwinput.Event) {
	p.hardware = events
}

// DrainHardware returns every evdev event queued since the last call
// without blocking.
func (p *InputProcessor) DrainHardware() []Event {
	if p.hardware == nil {
		return nil
	}

	var out []Event
	for {
		select {
		case ev, ok := <-p.hardware:
			if !ok {
				p.hardware = nil
				return out
			}
			out = append(out, p.mapped("evdev", Event{Button: ev.Button, Pressed: ev.Pressed}))
		default:
			return out
		}
	}
}

// ProcessSDLEvent maps a button-ish SDL event. It returns nil for events
// that do not map to a virtual button.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button := keyboardButton(e.Keysym.Sym)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		ev := p.mapped("keyboard", Event{Button: button, Pressed: e.State == sdl.PRESSED, Repeat: e.Repeat != 0})
		return &ev

	case *sdl.ControllerButtonEvent:
		button := controllerButton(e.Button, p.flipFaceButtons)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		ev := p.mapped("controller", Event{Button: button, Pressed: e.State == sdl.PRESSED})
		return &ev

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			if c, ok := p.controllers[e.Which]; ok {
				c.Close()
				delete(p.controllers, e.Which)
			}
		}
	}
	return nil
}

// ProcessPointerEvent maps left-button mouse events. SDL synthesizes mouse
// events from touches, so touch screens arrive here too.
func (p *InputProcessor) ProcessPointerEvent(event sdl.Event) (PointerEvent, bool) {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return PointerEvent{}, false
		}
		phase := PointerUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			phase = PointerDown
		}
		return PointerEvent{Phase: phase, X: e.X, Y: e.Y}, true

	case *sdl.MouseMotionEvent:
		if e.State&sdl.ButtonLMask() == 0 {
			return PointerEvent{}, false
		}
		return PointerEvent{Phase: PointerMove, X: e.X, Y: e.Y}, true
	}
	return PointerEvent{}, false
}

func keyboardButton(key sdl.Keycode) constants.VirtualButton {
	switch int(key) {
	case int(sdl.K_LEFT), int(sdl.K_a):
		return constants.VirtualButtonLeft
	case int(sdl.K_RIGHT), int(sdl.K_d):
		return constants.VirtualButtonRight
	case int(sdl.K_UP), int(sdl.K_w):
		return constants.VirtualButtonUp
	case int(sdl.K_DOWN), int(sdl.K_s):
		return constants.VirtualButtonDown
	case int(sdl.K_RETURN), int(sdl.K_KP_ENTER), int(sdl.K_SPACE):
		return constants.VirtualButtonA
	case int(sdl.K_ESCAPE), int(sdl.K_BACKSPACE), int(sdl.K_AC_BACK):
		return constants.VirtualButtonB
	case int(sdl.K_TAB):
		return constants.VirtualButtonSelect
	case int(sdl.K_F1):
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}

func controllerButton(button uint8, flip bool) constants.VirtualButton {
	switch int(button) {
	case int(sdl.CONTROLLER_BUTTON_DPAD_LEFT):
		return constants.VirtualButtonLeft
	case int(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):
		return constants.VirtualButtonRight
	case int(sdl.CONTROLLER_BUTTON_DPAD_UP):
		return constants.VirtualButtonUp
	case int(sdl.CONTROLLER_BUTTON_DPAD_DOWN):
		return constants.VirtualButtonDown
	case int(sdl.CONTROLLER_BUTTON_START):
		return constants.VirtualButtonStart
	case int(sdl.CONTROLLER_BUTTON_BACK):
		return constants.VirtualButtonSelect
	case int(sdl.CONTROLLER_BUTTON_GUIDE):
		return constants.VirtualButtonMenu
	case int(sdl.CONTROLLER_BUTTON_A):
		// SDL names buttons by position (A is south); handhelds print
		// Nintendo labels, so south is B unless flipped.
		if flip {
			return constants.VirtualButtonA
		}
		return constants.VirtualButtonB
	case int(sdl.CONTROLLER_BUTTON_B):
		if flip {
			return constants.VirtualButtonB
		}
		return constants.VirtualButtonA
	}
	return constants.VirtualButtonUnassigned
}

func CloseAllControllers() {
	if inputProcessor == nil {
		return
	}
	for id, c := range inputProcessor.controllers {
		c.Close()
		delete(inputProcessor.controllers, id)
	}
}

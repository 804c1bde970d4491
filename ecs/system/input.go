package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
)

// InputSource produces one frame of input. dt is the frame length, which
// scripted sources use as their clock.
type InputSource interface {
	Poll(dt float64) component.Input
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.source == nil {
		return
	}

	in := i.source.Poll(w.DeltaTime())
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = in
	})
}

// EbitenInput reads the keyboard, mouse and first gamepad.
type EbitenInput struct {
	lastX, lastY int
	primed       bool
}

func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

func (s *EbitenInput) Poll(float64) component.Input {
	const stickDeadzone = 0.2

	var in component.Input
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveZ += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveZ -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX -= 1
	}
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	in.Run = shift

	_, in.Scroll = ebiten.Wheel()

	x, y := ebiten.CursorPosition()
	if s.primed {
		in.DragX = float64(x - s.lastX)
		in.DragY = float64(y - s.lastY)
	}
	s.lastX, s.lastY, s.primed = x, y, true

	in.Rotate = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) ||
		(shift && ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))

	in.CopyCameraPose = inpututil.IsKeyJustPressed(ebiten.KeyF2)
	in.ToggleHUD = inpututil.IsKeyJustPressed(ebiten.KeyH)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			in.MoveX = lx
			in.MoveZ = -ly
		}
		in.Run = in.Run || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			// Scale the stick to roughly a mouse drag per frame.
			in.DragX = rx * 10
			in.DragY = ry * 10
			in.Rotate = true
		}
	}

	return in
}

package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
)

// PlayerControlSystem turns camera-relative input into a world-space
// MoveIntent for the player.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (p *PlayerControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	fwd, right := mgl64.Vec3{0, 0, -1}, mgl64.Vec3{1, 0, 0}
	if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok {
			if f, r, ok := cam.View.FlatAxes(); ok {
				fwd, right = f, r
			}
		}
	}

	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), component.MoveIntentComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, input *component.Input, intent *component.MoveIntent) {
		dir := fwd.Mul(input.MoveZ).Add(right.Mul(input.MoveX))
		if dir.Len() < 1e-9 {
			dir = mgl64.Vec3{}
		} else {
			dir = dir.Normalize()
		}
		intent.Direction = dir
		intent.Run = input.Run
	})
}

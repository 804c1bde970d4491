package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/billboard/billboard"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
)

// MovementSystem applies MoveIntent to position, heading and animation
// state. The heading is the move direction, so a character keeps facing the
// way it last walked once it stops.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach3(w, component.TransformComponent.Kind(), component.MoveIntentComponent.Kind(), component.MovableComponent.Kind(), func(e ecs.Entity, t *component.Transform, intent *component.MoveIntent, movable *component.Movable) {
		dir := mgl64.Vec3{intent.Direction[0], 0, intent.Direction[2]}
		moving := dir.Len() > 1e-9

		speed := movable.WalkSpeed
		if intent.Run {
			speed = movable.RunSpeed
		}
		if moving && dt > 0 {
			dir = dir.Normalize()
			t.Position = t.Position.Add(dir.Mul(speed * dt))
		}

		ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
		if !ok || ch.AnimatedCharacter == nil {
			return
		}

		next := billboard.Idle
		if moving {
			ch.Heading = dir
			next = billboard.Walk
			if intent.Run && ch.Library.HasState(billboard.Run) {
				next = billboard.Run
			}
		}

		prev := ch.State
		if ch.SetState(next) {
			w.Events().Push(ecs.Event{Type: ecs.EventStateChanged, Data: StateChanged{
				Entity: e,
				Name:   entityName(w, e),
				From:   prev,
				To:     next,
			}})
		}
	})
}

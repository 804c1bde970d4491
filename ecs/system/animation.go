package system

import (
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Update advances every character by the frame time and copies the result
// into its sprite.
func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach2(w, component.CharacterComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, ch *component.Character, sprite *component.Sprite) {
		if ch.AnimatedCharacter == nil {
			return
		}
		ch.Advance(dt)
		sprite.Index = ch.Sprite
		sprite.FlipX = ch.Mirrored
	})
}

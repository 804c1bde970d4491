package system

import (
	"github.com/milk9111/billboard/billboard"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
	"github.com/rs/zerolog"
)

// OrientationSystem picks the visible side of every character from the
// camera view published this tick. It must run after CameraSystem; when the
// view is stale the characters are left untouched.
type OrientationSystem struct {
	orienter billboard.Orienter
	log      zerolog.Logger
}

func NewOrientationSystem(orienter billboard.Orienter, log zerolog.Logger) *OrientationSystem {
	return &OrientationSystem{
		orienter: orienter,
		log:      log.With().Str("system", "orientation").Logger(),
	}
}

func (o *OrientationSystem) Update(w *ecs.World) {
	if o == nil || w == nil {
		return
	}
	cam, ok := activeCamera(w)
	if !ok {
		return
	}
	if cam.ViewTick != w.Tick() {
		o.log.Trace().Uint64("tick", w.Tick()).Uint64("view_tick", cam.ViewTick).Msg("stale camera view, skipping")
		return
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.CharacterComponent.Kind(), func(e ecs.Entity, t *component.Transform, ch *component.Character) {
		if ch.AnimatedCharacter == nil {
			return
		}
		offset := cam.View.ViewerOffset(t.Position, cam.LookBack)
		prev := ch.Direction
		if o.orienter.Update(ch.AnimatedCharacter, offset) {
			w.Events().Push(ecs.Event{Type: ecs.EventDirectionChanged, Data: DirectionChanged{
				Entity: e,
				Name:   entityName(w, e),
				From:   prev,
				To:     ch.Direction,
			}})
		}
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			s.Index = ch.Sprite
			s.FlipX = ch.Mirrored
		}
	})
}

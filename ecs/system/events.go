package system

import (
	"github.com/milk9111/billboard/billboard"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
)

// DirectionChanged is the payload of ecs.EventDirectionChanged.
type DirectionChanged struct {
	Entity ecs.Entity
	Name   string
	From   billboard.Direction
	To     billboard.Direction
}

// StateChanged is the payload of ecs.EventStateChanged.
type StateChanged struct {
	Entity ecs.Entity
	Name   string
	From   billboard.AnimationState
	To     billboard.AnimationState
}

func entityName(w *ecs.World, e ecs.Entity) string {
	if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok {
		return n.Value
	}
	return e.String()
}

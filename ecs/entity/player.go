package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/billboard/ecs"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml")
}

func NewPlayerAt(w *ecs.World, pos mgl64.Vec3) (ecs.Entity, error) {
	e, err := BuildEntityWith(w, "player.yaml", Overrides{Position: &pos})
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return e, nil
}

// NewNPC spawns a non-player character prefab such as "npc_brown.yaml".
func NewNPC(w *ecs.World, prefab string) (ecs.Entity, error) {
	return BuildEntity(w, prefab)
}

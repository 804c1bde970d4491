package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/prefabs"
)

// SpawnScene builds every entity listed in a scene file, in order. When one
// fails, the ones already spawned are destroyed.
func SpawnScene(w *ecs.World, filename string) ([]ecs.Entity, error) {
	scene, err := prefabs.LoadSceneSpec(filename)
	if err != nil {
		return nil, err
	}

	spawned := make([]ecs.Entity, 0, len(scene.Entities))
	rollback := func() {
		for _, e := range spawned {
			ecs.DestroyEntity(w, e)
		}
	}

	for i, item := range scene.Entities {
		o := Overrides{Name: item.Name}
		if len(item.Position) > 0 {
			pos, err := vec3(item.Position, mgl64.Vec3{})
			if err != nil {
				rollback()
				return nil, fmt.Errorf("scene %s: entity %d position: %w", filename, i, err)
			}
			o.Position = &pos
		}
		if len(item.Heading) > 0 {
			h, err := vec3(item.Heading, mgl64.Vec3{})
			if err != nil {
				rollback()
				return nil, fmt.Errorf("scene %s: entity %d heading: %w", filename, i, err)
			}
			o.Heading = &h
		}

		e, err := BuildEntityWith(w, item.Prefab, o)
		if err != nil {
			rollback()
			return nil, fmt.Errorf("scene %s: %w", filename, err)
		}
		spawned = append(spawned, e)
	}
	return spawned, nil
}

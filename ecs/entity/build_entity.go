package entity

import (
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
	"github.com/milk9111/billboard/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

// Overrides replace prefab values for one spawned entity.
type Overrides struct {
	Name     string
	Position *mgl64.Vec3
	Heading  *mgl64.Vec3
}

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":         addPlayerTag,
	"input":              addInput,
	"transform":          addTransform,
	"sprite":             addSprite,
	"character":          addCharacter,
	"movable":            addMovable,
	"turn_toward_camera": addTurnTowardCamera,
	"script":             addScript,
	"camera":             addCamera,
}

// The camera reads the transform for its start position and scripts need
// the MoveIntent added with movable.
var componentBuildOrder = []string{
	"player_tag",
	"input",
	"transform",
	"sprite",
	"character",
	"movable",
	"turn_toward_camera",
	"script",
	"camera",
}

var (
	assetMu  sync.RWMutex
	assetDir = "assets"
)

// SetAssetDir sets where non-placeholder atlases are read from.
func SetAssetDir(dir string) {
	assetMu.Lock()
	defer assetMu.Unlock()
	assetDir = dir
}

func currentAssetDir() string {
	assetMu.RLock()
	defer assetMu.RUnlock()
	return assetDir
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	return BuildEntityWith(w, prefabPath, Overrides{})
}

// BuildEntityWith spawns a prefab and applies overrides. On error nothing is
// left in the world.
func BuildEntityWith(w *ecs.World, prefabPath string, o Overrides) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	fail := func(err error) (ecs.Entity, error) {
		ecs.DestroyEntity(w, e)
		return 0, err
	}

	name := spec.Name
	if o.Name != "" {
		name = o.Name
	}
	if name != "" {
		if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
			return fail(fmt.Errorf("build entity: %q: add name: %w", prefabPath, err))
		}
	}

	for _, comp := range orderedComponents(spec) {
		if err := componentRegistry[comp](w, e, spec.Components[comp], ctx); err != nil {
			return fail(fmt.Errorf("build entity: %q: add %q: %w", prefabPath, comp, err))
		}
	}

	if o.Position != nil {
		if err := SetEntityPosition(w, e, *o.Position); err != nil {
			return fail(fmt.Errorf("build entity: %q: %w", prefabPath, err))
		}
	}
	if o.Heading != nil {
		ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
		if !ok || ch.AnimatedCharacter == nil {
			return fail(fmt.Errorf("build entity: %q: heading override on an entity without character", prefabPath))
		}
		ch.Heading = *o.Heading
	}

	return e, nil
}

func orderedComponents(spec entityPrefabSpec) []string {
	out := make([]string, 0, len(spec.Components))
	for _, name := range componentBuildOrder {
		if _, ok := spec.Components[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

// SetEntityPosition moves an entity, adding a transform if it has none.
func SetEntityPosition(w *ecs.World, e ecs.Entity, pos mgl64.Vec3) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		nt := component.NewTransform(pos)
		return ecs.Add(w, e, component.TransformComponent.Kind(), &nt)
	}
	t.Position = pos
	return nil
}

func vec3(v []float64, def mgl64.Vec3) (mgl64.Vec3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return mgl64.Vec3{v[0], v[1], v[2]}, nil
	default:
		return mgl64.Vec3{}, fmt.Errorf("want 3 components, got %d", len(v))
	}
}

package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/billboard/billboard"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
	"github.com/milk9111/billboard/ecs/render"
	"github.com/milk9111/billboard/prefabs"
)

const (
	defaultCellWidth      = 32
	defaultCellHeight     = 48
	defaultPixelsPerMetre = 28
)

// DefaultTurnRate is used when a prefab enables turn_toward_camera without a
// rate. The application overrides it from config.
var DefaultTurnRate = 10.0

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	pos, err := vec3(spec.Position, mgl64.Vec3{})
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	scale, err := vec3(spec.Scale, mgl64.Vec3{1, 1, 1})
	if err != nil {
		return fmt.Errorf("scale: %w", err)
	}
	t := component.NewTransform(pos)
	t.Scale = scale
	return ecs.Add(w, e, component.TransformComponent.Kind(), &t)
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.CellWidth == 0 {
		spec.CellWidth = defaultCellWidth
	}
	if spec.CellHeight == 0 {
		spec.CellHeight = defaultCellHeight
	}
	if spec.PixelsPerMetre == 0 {
		spec.PixelsPerMetre = defaultPixelsPerMetre
	}
	if spec.PixelsPerMetre < 0 {
		return fmt.Errorf("pixels_per_metre must be positive, got %v", spec.PixelsPerMetre)
	}

	if _, err := render.LoadAtlas(spec.Atlas, currentAssetDir(), spec.CellWidth, spec.CellHeight); err != nil {
		return fmt.Errorf("load atlas %q: %w", spec.Atlas, err)
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Atlas:          spec.Atlas,
		PixelsPerMetre: spec.PixelsPerMetre,
		PivotX:         spec.PivotX,
		PivotY:         spec.PivotY,
	})
}

type characterSpec = prefabs.CharacterComponentSpec

func addCharacter(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[characterSpec](raw)
	if err != nil {
		return fmt.Errorf("decode character spec: %w", err)
	}
	heading, err := vec3(spec.Heading, mgl64.Vec3{0, 0, 1})
	if err != nil {
		return fmt.Errorf("heading: %w", err)
	}
	lib, err := libraryFor(ctx.PrefabPath, spec)
	if err != nil {
		return err
	}

	ch := billboard.NewAnimatedCharacter(lib, heading)
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		s.Index = ch.Sprite
	}
	return ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{
		AnimatedCharacter: ch,
		Library:           lib,
		Prefab:            ctx.PrefabPath,
	})
}

type movableSpec = prefabs.MovableComponentSpec

func addMovable(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[movableSpec](raw)
	if err != nil {
		return fmt.Errorf("decode movable spec: %w", err)
	}
	if spec.WalkSpeed < 0 || spec.RunSpeed < 0 {
		return fmt.Errorf("speeds must be non-negative")
	}
	if spec.RunSpeed == 0 {
		spec.RunSpeed = spec.WalkSpeed
	}
	if err := ecs.Add(w, e, component.MovableComponent.Kind(), &component.Movable{
		WalkSpeed: spec.WalkSpeed,
		RunSpeed:  spec.RunSpeed,
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.MoveIntentComponent.Kind(), &component.MoveIntent{})
}

type turnSpec = prefabs.TurnTowardCameraComponentSpec

func addTurnTowardCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[turnSpec](raw)
	if err != nil {
		return fmt.Errorf("decode turn_toward_camera spec: %w", err)
	}
	enabled := true
	if spec.Enabled != nil {
		enabled = *spec.Enabled
	}
	rate := spec.Rate
	if rate == 0 {
		rate = DefaultTurnRate
	}
	return ecs.Add(w, e, component.TurnTowardCameraComponent.Kind(), &component.TurnTowardCamera{
		Enabled: enabled,
		Rate:    rate,
	})
}

type scriptSpec = prefabs.ScriptComponentSpec

func addScript(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[scriptSpec](raw)
	if err != nil {
		return fmt.Errorf("decode script spec: %w", err)
	}
	if spec.Path == "" {
		return fmt.Errorf("script path is empty")
	}
	if _, err := prefabs.LoadScript(spec.Path); err != nil {
		return fmt.Errorf("load script %q: %w", spec.Path, err)
	}
	if !ecs.Has(w, e, component.MoveIntentComponent.Kind()) {
		if err := ecs.Add(w, e, component.MoveIntentComponent.Kind(), &component.MoveIntent{}); err != nil {
			return err
		}
	}
	return ecs.Add(w, e, component.IntentScriptComponent.Kind(), &component.IntentScript{Path: spec.Path})
}

package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/billboard/billboard"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
	"github.com/milk9111/billboard/orbit"
	"github.com/stretchr/testify/require"
)

func testLibrary(t *testing.T, withRun bool) *billboard.Library {
	t.Helper()
	lib := billboard.NewLibrary("test")
	for i, d := range billboard.Directions {
		require.NoError(t, lib.Register(billboard.Key{State: billboard.Idle, Direction: d}, []int{i}, 0.1))
		require.NoError(t, lib.Register(billboard.Key{State: billboard.Walk, Direction: d}, []int{4 + i, 8 + i, 12 + i}, 0.1))
		if withRun {
			require.NoError(t, lib.Register(billboard.Key{State: billboard.Run, Direction: d}, []int{16 + i, 20 + i}, 0.05))
		}
	}
	return lib
}

func addCharacter(t *testing.T, w *ecs.World, name string, pos, heading mgl64.Vec3, withRun bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	lib := testLibrary(t, withRun)
	tr := component.NewTransform(pos)
	require.NoError(t, ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &tr))
	require.NoError(t, ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Atlas: "test", PixelsPerMetre: 28}))
	require.NoError(t, ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{
		AnimatedCharacter: billboard.NewAnimatedCharacter(lib, heading),
		Library:           lib,
		Prefab:            name,
	}))
	require.NoError(t, ecs.Add(w, e, component.MovableComponent.Kind(), &component.Movable{WalkSpeed: 2, RunSpeed: 5}))
	require.NoError(t, ecs.Add(w, e, component.MoveIntentComponent.Kind(), &component.MoveIntent{}))
	return e
}

func addPlayer(t *testing.T, w *ecs.World, pos, heading mgl64.Vec3) ecs.Entity {
	t.Helper()
	e := addCharacter(t, w, "player", pos, heading, true)
	require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	return e
}

func addCamera(t *testing.T, w *ecs.World, cfg orbit.Config, at mgl64.Vec3) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	pose := orbit.LookAt(at, mgl64.Vec3{})
	ctrl, err := orbit.NewController(cfg, pose)
	require.NoError(t, err)
	tr := component.NewTransform(at)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &tr))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	require.NoError(t, ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Controller: ctrl,
		TargetName: "player",
		LookBack:   10,
		View:       ctrl.View(),
	}))
	return e
}

// fixedInput returns the same input every frame.
type fixedInput struct {
	in component.Input
}

func (f *fixedInput) Poll(float64) component.Input { return f.in }

func drainEvents(w *ecs.World, typ string) []ecs.Event {
	var out []ecs.Event
	for _, evt := range w.Events().Drain() {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

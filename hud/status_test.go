package hud

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/billboard/billboard"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
	"github.com/milk9111/billboard/orbit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addCharacter(t *testing.T, w *ecs.World, name string, player bool) *billboard.AnimatedCharacter {
	t.Helper()
	lib := billboard.NewLibrary(name)
	require.NoError(t, lib.Register(billboard.Key{State: billboard.Idle, Direction: billboard.Down}, []int{0}, 0.1))
	ch := billboard.NewAnimatedCharacter(lib, mgl64.Vec3{0, 0, 1})

	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}))
	require.NoError(t, ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{AnimatedCharacter: ch, Library: lib}))
	if player {
		require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	}
	return ch
}

func TestCollect(t *testing.T) {
	w := ecs.NewWorld()
	addCharacter(t, w, "pink", false)
	addCharacter(t, w, "brown", false)
	ch := addCharacter(t, w, "player", true)
	ch.Direction = billboard.Right
	ch.Mirrored = true

	ctrl, err := orbit.NewController(orbit.DefaultConfig(), orbit.Pose{})
	require.NoError(t, err)
	cam := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{Controller: ctrl}))

	s := Collect(w)
	require.Len(t, s.Characters, 3)
	assert.Equal(t, []string{"player", "brown", "pink"}, []string{s.Characters[0].Name, s.Characters[1].Name, s.Characters[2].Name})
	assert.True(t, s.HasCamera)
	assert.Equal(t, 8.0, s.Camera.Radius)

	lines := s.Lines()
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], "radius 8.0")
	assert.Contains(t, lines[2], "Right")
	assert.Contains(t, lines[2], "(flipped)")
	assert.NotContains(t, lines[3], "flipped")
}

func TestLinesWithoutCamera(t *testing.T) {
	s := Status{Tick: 3, LastEvent: "reloaded player.yaml"}
	assert.Equal(t, []string{"tick 3  tps 0.0", "last: reloaded player.yaml"}, s.Lines())
}

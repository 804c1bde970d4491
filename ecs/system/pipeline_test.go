package system

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/billboard/billboard"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
	"github.com/milk9111/billboard/ecs/entity"
	"github.com/milk9111/billboard/prefabs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLogSystem(t *testing.T) {
	var buf bytes.Buffer
	sys := NewEventLogSystem(zerolog.New(&buf).Level(zerolog.DebugLevel))
	var seen []string
	sys.OnEvent(func(evt ecs.Event) { seen = append(seen, evt.Type) })

	w := ecs.NewWorld()
	w.Events().Push(ecs.Event{Type: ecs.EventDirectionChanged, Data: DirectionChanged{Name: "pink", From: billboard.Down, To: billboard.Left}})
	w.Events().Push(ecs.Event{Type: ecs.EventPrefabReloaded, Data: "player.yaml"})
	ecs.NewScheduler(sys).Step(w, 0.1)

	assert.Equal(t, []string{ecs.EventDirectionChanged, ecs.EventPrefabReloaded}, seen)
	assert.Equal(t, 0, w.Events().Len())
	out := buf.String()
	assert.Contains(t, out, `"entity":"pink"`)
	assert.Contains(t, out, `"to":"Left"`)
	assert.Contains(t, out, `"detail":"player.yaml"`)
}

func TestPipelineWalkAroundScene(t *testing.T) {
	prev := prefabs.Dir()
	prefabs.SetDir("")
	entity.ForgetLibraries()
	t.Cleanup(func() {
		prefabs.SetDir(prev)
		entity.ForgetLibraries()
	})

	w := ecs.NewWorld()
	_, err := entity.SpawnScene(w, "scene.yaml")
	require.NoError(t, err)

	input := NewScriptedInput(
		InputStep{Duration: 1, MoveZ: 1},
		InputStep{Duration: 0.5},
		InputStep{Duration: 0.5, Rotate: true, DragX: 40},
	)
	p := NewPipeline(PipelineOptions{
		Input:    input,
		Orienter: billboard.DefaultOrienter,
		Scripts:  prefabs.LoadScript,
		Log:      zerolog.Nop(),
	})

	var dirChanges []DirectionChanged
	var stateChanges []StateChanged
	p.Events.OnEvent(func(evt ecs.Event) {
		switch d := evt.Data.(type) {
		case DirectionChanged:
			dirChanges = append(dirChanges, d)
		case StateChanged:
			stateChanges = append(stateChanges, d)
		}
	})

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	require.True(t, ok)
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	start := tr.Position

	const dt = 1.0 / 60
	for !input.Done() {
		p.Step(w, dt)

		camEntity, _ := ecs.First(w, component.CameraComponent.Kind())
		cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
		require.Equal(t, w.Tick(), cam.ViewTick)

		// Every character agrees with the view published this tick.
		ecs.ForEach2(w, component.TransformComponent.Kind(), component.CharacterComponent.Kind(), func(e ecs.Entity, t2 *component.Transform, ch *component.Character) {
			again := billboard.Classify(ch.Heading, cam.View.ViewerOffset(t2.Position, cam.LookBack), ch.Direction)
			assert.Equal(t, ch.Direction, again)

			sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
			a, ok := ch.Current()
			require.True(t, ok)
			assert.Equal(t, a.Sprite(), sprite.Index)
			assert.Equal(t, ch.Direction == billboard.Right, sprite.FlipX)
		})
	}

	moved := tr.Position.Sub(start)
	assert.InDelta(t, 2, moved.Len(), 0.05, "one second at walk speed")
	assert.InDelta(t, 0, moved[1], 1e-9)

	ch, _ := ecs.Get(w, player, component.CharacterComponent.Kind())
	assert.Equal(t, billboard.Idle, ch.State)

	var playerStates []billboard.AnimationState
	for _, s := range stateChanges {
		if s.Name == "player" {
			playerStates = append(playerStates, s.To)
		}
	}
	assert.Equal(t, []billboard.AnimationState{billboard.Walk, billboard.Idle}, playerStates)

	for _, d := range dirChanges {
		assert.NotEqual(t, d.From, d.To)
	}

	brown := findByName(w, "brown")
	bt, _ := ecs.Get(w, brown, component.TransformComponent.Kind())
	assert.Equal(t, mgl64.Vec3{-2, -0.15, -1.3}, bt.Position, "brown has no movement")
}

func findByName(w *ecs.World, name string) ecs.Entity {
	var found ecs.Entity
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if n.Value == name {
			found = e
		}
	})
	return found
}

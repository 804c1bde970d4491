package system

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
	"github.com/milk9111/billboard/prefabs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scriptLoader(scripts map[string]string) ScriptLoader {
	return func(path string) ([]byte, error) {
		src, ok := scripts[path]
		if !ok {
			return nil, errors.New("no such script")
		}
		return []byte(src), nil
	}
}

func addScripted(t *testing.T, w *ecs.World, path string) ecs.Entity {
	t.Helper()
	e := addCharacter(t, w, "scripted", mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, false)
	require.NoError(t, ecs.Add(w, e, component.IntentScriptComponent.Kind(), &component.IntentScript{Path: path}))
	return e
}

func TestScriptIntentDrivesMoveIntent(t *testing.T) {
	src := `
update := func(engine, state) {
	if is_undefined(state.calls) {
		state.calls = 0
	}
	state.calls += 1
	if state.calls < 3 {
		engine.stop()
		return
	}
	engine.move(1, 0)
	engine.run(state.calls > 3)
}
`
	w := ecs.NewWorld()
	e := addScripted(t, w, "walker.tengo")
	s := ecs.NewScheduler(NewScriptIntentSystem(scriptLoader(map[string]string{"walker.tengo": src}), zerolog.Nop()))
	intent, _ := ecs.Get(w, e, component.MoveIntentComponent.Kind())

	s.Step(w, 0.1)
	s.Step(w, 0.1)
	assert.Equal(t, mgl64.Vec3{}, intent.Direction)

	s.Step(w, 0.1)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, intent.Direction)
	assert.False(t, intent.Run)

	s.Step(w, 0.1)
	assert.True(t, intent.Run)

	script, _ := ecs.Get(w, e, component.IntentScriptComponent.Kind())
	assert.InDelta(t, 0.4, script.Clock, 1e-9)
}

func TestScriptIntentSeesEngineValues(t *testing.T) {
	src := `
update := func(engine, state) {
	if engine.name == "scripted" && engine.time > 0 && len(engine.position) == 3 {
		engine.move(engine.heading[0], engine.heading[2])
	}
}
`
	w := ecs.NewWorld()
	e := addScripted(t, w, "echo.tengo")
	ecs.NewScheduler(NewScriptIntentSystem(scriptLoader(map[string]string{"echo.tengo": src}), zerolog.Nop())).Step(w, 0.1)

	intent, _ := ecs.Get(w, e, component.MoveIntentComponent.Kind())
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, intent.Direction)
}

func TestScriptIntentErrorsAreLoggedOnce(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"compile", "update := func(engine, state) {"},
		{"missing_update", "x := 1"},
		{"runtime", "update := func(engine, state) { engine.move(1) }"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerolog.New(&buf)
			w := ecs.NewWorld()
			e := addScripted(t, w, "bad.tengo")
			intent, _ := ecs.Get(w, e, component.MoveIntentComponent.Kind())
			intent.Direction = mgl64.Vec3{0, 0, 1}

			sys := NewScriptIntentSystem(scriptLoader(map[string]string{"bad.tengo": c.src}), log)
			s := ecs.NewScheduler(sys)
			s.Step(w, 0.1)
			assert.Contains(t, buf.String(), `"level":"error"`)
			assert.Equal(t, mgl64.Vec3{0, 0, 1}, intent.Direction, "intent untouched on error")

			if c.name == "runtime" {
				buf.Reset()
				s.Step(w, 0.1)
				assert.Empty(t, buf.String(), "a failed script is disabled")

				sys.Invalidate("bad.tengo")
				s.Step(w, 0.1)
				assert.NotEmpty(t, buf.String(), "invalidate retries")
			}
		})
	}
}

func TestWanderScriptMoves(t *testing.T) {
	w := ecs.NewWorld()
	e := addScripted(t, w, "scripts/wander.tengo")
	s := ecs.NewScheduler(NewScriptIntentSystem(prefabs.LoadScript, zerolog.Nop()))
	intent, _ := ecs.Get(w, e, component.MoveIntentComponent.Kind())

	s.Step(w, 0.5)
	assert.Equal(t, mgl64.Vec3{}, intent.Direction, "pauses first")

	for i := 0; i < 6; i++ {
		s.Step(w, 0.5)
	}
	assert.InDelta(t, 1, intent.Direction.Len(), 1e-9)
	assert.Zero(t, intent.Direction[1])
}

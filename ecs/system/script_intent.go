package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
	"github.com/rs/zerolog"
)

// ScriptLoader returns the source of an intent script by path.
type ScriptLoader func(path string) ([]byte, error)

// ScriptIntentSystem fills MoveIntent from tengo scripts. A script defines
//
//	update := func(engine, state) { ... }
//
// and steers with engine.move(x, z), engine.stop() and engine.run(bool).
// state is a map kept between frames.
type ScriptIntentSystem struct {
	load  ScriptLoader
	log   zerolog.Logger
	cache map[ecs.Entity]*intentScriptRuntime
}

type intentScriptRuntime struct {
	path     string
	compiled *tengo.Compiled
	state    *tengo.Map
	failed   bool

	move mgl64.Vec3
	run  bool
}

const intentDispatchScript = `
if __tick {
	update(__engine, __state)
}
`

func NewScriptIntentSystem(load ScriptLoader, log zerolog.Logger) *ScriptIntentSystem {
	return &ScriptIntentSystem{
		load:  load,
		log:   log.With().Str("system", "script").Logger(),
		cache: map[ecs.Entity]*intentScriptRuntime{},
	}
}

// Invalidate drops compiled scripts so they are reloaded on next use. An
// empty path drops everything.
func (s *ScriptIntentSystem) Invalidate(path string) {
	if s == nil {
		return
	}
	for e, rt := range s.cache {
		if path == "" || rt.path == path {
			delete(s.cache, e)
		}
	}
}

func (s *ScriptIntentSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.load == nil {
		return
	}
	dt := w.DeltaTime()

	for e := range s.cache {
		if !ecs.Has(w, e, component.IntentScriptComponent.Kind()) {
			delete(s.cache, e)
		}
	}

	ecs.ForEach2(w, component.IntentScriptComponent.Kind(), component.MoveIntentComponent.Kind(), func(e ecs.Entity, script *component.IntentScript, intent *component.MoveIntent) {
		rt, err := s.runtime(e, script.Path)
		if err != nil {
			s.log.Error().Err(err).Str("entity", entityName(w, e)).Str("script", script.Path).Msg("load script")
			return
		}
		if rt.failed {
			return
		}

		script.Clock += dt
		var pos, heading mgl64.Vec3
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			pos = t.Position
		}
		if ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind()); ok && ch.AnimatedCharacter != nil {
			heading = ch.Heading
		}

		engine := buildIntentEngine(rt, map[string]tengo.Object{
			"time":     &tengo.Float{Value: script.Clock},
			"dt":       &tengo.Float{Value: dt},
			"seed":     &tengo.Int{Value: int64(e.ID())},
			"name":     &tengo.String{Value: entityName(w, e)},
			"position": vecObject(pos),
			"heading":  vecObject(heading),
		})
		if err := rt.tick(engine); err != nil {
			rt.failed = true
			s.log.Error().Err(err).Str("entity", entityName(w, e)).Str("script", script.Path).Msg("script update, disabling")
			return
		}

		intent.Direction = rt.move
		intent.Run = rt.run
	})
}

func (s *ScriptIntentSystem) runtime(e ecs.Entity, path string) (*intentScriptRuntime, error) {
	if rt, ok := s.cache[e]; ok && rt.path == path {
		return rt, nil
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty script path")
	}

	src, err := s.load(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + intentDispatchScript))
	_ = script.Add("__tick", false)
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("init %s: %w", path, err)
	}
	if !compiled.IsDefined("update") {
		return nil, fmt.Errorf("%s: update is not defined", path)
	}

	rt := &intentScriptRuntime{
		path:     path,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}
	s.cache[e] = rt
	return rt, nil
}

func (rt *intentScriptRuntime) tick(engine *tengo.ImmutableMap) error {
	if err := rt.compiled.Set("__tick", true); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.state); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func buildIntentEngine(rt *intentScriptRuntime, values map[string]tengo.Object) *tengo.ImmutableMap {
	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, okX := tengo.ToFloat64(args[0])
		z, okZ := tengo.ToFloat64(args[1])
		if !okX || !okZ {
			return tengo.FalseValue, nil
		}
		rt.move = mgl64.Vec3{x, 0, z}
		return tengo.TrueValue, nil
	}}

	values["stop"] = &tengo.UserFunction{Name: "stop", Value: func(args ...tengo.Object) (tengo.Object, error) {
		rt.move = mgl64.Vec3{}
		rt.run = false
		return tengo.TrueValue, nil
	}}

	values["run"] = &tengo.UserFunction{Name: "run", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		on, _ := tengo.ToBool(args[0])
		rt.run = on
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func vecObject(v mgl64.Vec3) *tengo.ImmutableArray {
	return &tengo.ImmutableArray{Value: []tengo.Object{
		&tengo.Float{Value: v[0]},
		&tengo.Float{Value: v[1]},
		&tengo.Float{Value: v[2]},
	}}
}

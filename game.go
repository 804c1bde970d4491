package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/billboard/config"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
	"github.com/milk9111/billboard/ecs/entity"
	"github.com/milk9111/billboard/ecs/system"
	"github.com/milk9111/billboard/hud"
	"github.com/milk9111/billboard/prefabs"
	"github.com/rs/zerolog"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

type Game struct {
	cfg config.Config
	log zerolog.Logger
	dt  float64

	world    *ecs.World
	pipeline *system.Pipeline
	render   *system.RenderSystem
	hud      *hud.HUD
	watcher  *prefabs.Watcher

	clipboard bool
	lastEvent string
}

func NewGame(cfg config.Config, log zerolog.Logger) (*Game, error) {
	orienter, err := cfg.Character.Orienter()
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	if _, err := entity.SpawnScene(world, "scene.yaml"); err != nil {
		return nil, fmt.Errorf("spawn scene: %w", err)
	}

	g := &Game{
		cfg:   cfg,
		log:   log,
		dt:    1 / float64(cfg.Window.TPS),
		world: world,
		pipeline: system.NewPipeline(system.PipelineOptions{
			Input:    system.NewEbitenInput(),
			Orienter: orienter,
			Scripts:  prefabs.LoadScript,
			Log:      log,
		}),
		render: system.NewRenderSystem(),
		hud:    hud.New(),
	}
	g.hud.SetVisible(cfg.HUD)
	g.pipeline.Events.OnEvent(g.recordEvent)

	if err := clipboard.Init(); err != nil {
		log.Warn().Err(err).Msg("clipboard unavailable, F2 disabled")
	} else {
		g.clipboard = true
	}

	if cfg.Prefabs.HotReload && cfg.Prefabs.Dir != "" {
		dirs := []string{cfg.Prefabs.Dir, cfg.Prefabs.Dir + "/scripts"}
		w, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.Warn().Err(err).Strs("dirs", dirs).Msg("prefab hot reload disabled")
		} else {
			g.watcher = w
			log.Info().Strs("dirs", dirs).Msg("watching prefabs")
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	if g.watcher != nil {
		applyChanges(g.world, g.pipeline.Scripts, g.watcher.Poll(), g.log)
	}

	g.pipeline.Step(g.world, g.dt)
	g.handleCameraKeys()

	status := hud.Collect(g.world)
	status.TPS = ebiten.ActualTPS()
	status.LastEvent = g.lastEvent
	g.hud.SetStatus(status)
	g.hud.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Lightsteelblue)
	g.render.Draw(g.world, screen)
	g.hud.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) handleCameraKeys() {
	e, ok := ecs.First(g.world, component.CameraComponent.Kind())
	if !ok {
		return
	}
	in, ok := ecs.Get(g.world, e, component.InputComponent.Kind())
	if !ok {
		return
	}
	if in.ToggleHUD {
		g.hud.Toggle()
	}
	if in.CopyCameraPose && g.clipboard {
		cam, _ := ecs.Get(g.world, e, component.CameraComponent.Kind())
		text := system.CameraPoseText(cam)
		clipboard.Write(clipboard.FmtText, []byte(text))
		g.log.Info().Str("pose", strings.ReplaceAll(strings.TrimSpace(text), "\n", "; ")).Msg("camera pose copied")
	}
}

func (g *Game) recordEvent(evt ecs.Event) {
	switch d := evt.Data.(type) {
	case system.DirectionChanged:
		g.lastEvent = fmt.Sprintf("%s turned %s", d.Name, d.To)
	case system.StateChanged:
		g.lastEvent = fmt.Sprintf("%s %s", d.Name, strings.ToLower(d.To.String()))
	case string:
		g.lastEvent = evt.Type + " " + d
	}
}

// applyChanges reloads edited prefabs and drops edited scripts so they are
// recompiled. Failures keep the previous version running.
func applyChanges(w *ecs.World, scripts *system.ScriptIntentSystem, changes []prefabs.Change, log zerolog.Logger) {
	for _, c := range changes {
		if c.Script() {
			scripts.Invalidate(c.Name)
			log.Info().Str("script", c.Name).Msg("script reloaded")
			w.Events().Push(ecs.Event{Type: ecs.EventPrefabReloaded, Data: c.Name})
			continue
		}

		n, err := entity.ReloadPrefab(w, c.Name)
		if err != nil {
			log.Error().Err(err).Str("prefab", c.Name).Msg("prefab reload failed")
			continue
		}
		log.Info().Str("prefab", c.Name).Int("characters", n).Msg("prefab reloaded")
		w.Events().Push(ecs.Event{Type: ecs.EventPrefabReloaded, Data: c.Name})
	}
}

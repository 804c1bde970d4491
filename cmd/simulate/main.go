package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/billboard/config"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/entity"
	"github.com/milk9111/billboard/ecs/system"
	"github.com/milk9111/billboard/hud"
	"github.com/milk9111/billboard/logging"
	"github.com/milk9111/billboard/prefabs"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "path to a config file")
	timelinePath := flag.String("timeline", "", "input timeline yaml (defaults to a built-in walk)")
	level := flag.String("level", "info", "log level")
	every := flag.Int("every", 30, "print status every N ticks (0 prints only the summary)")
	flag.Parse()

	log := logging.New(*level, os.Stderr)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	tl, err := LoadTimeline(*timelinePath)
	if err != nil {
		log.Fatal().Err(err).Msg("load timeline")
	}

	prefabs.SetDir(cfg.Prefabs.Dir)
	entity.DefaultLookBack = cfg.Camera.LookBack
	entity.DefaultTurnRate = cfg.Character.TurnRate

	if _, err := simulate(cfg, tl, *every, os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("simulate")
	}
}

// simulate steps the full pipeline until the timeline ends and writes status
// blocks to out. It returns the number of ticks simulated.
func simulate(cfg config.Config, tl Timeline, every int, out io.Writer, log zerolog.Logger) (int, error) {
	orienter, err := cfg.Character.Orienter()
	if err != nil {
		return 0, err
	}

	w := ecs.NewWorld()
	if _, err := entity.SpawnScene(w, tl.Scene); err != nil {
		return 0, err
	}

	input := system.NewScriptedInput(tl.Steps...)
	pipeline := system.NewPipeline(system.PipelineOptions{
		Input:    input,
		Orienter: orienter,
		Scripts:  prefabs.LoadScript,
		Log:      log,
	})

	changes := 0
	pipeline.Events.OnEvent(func(evt ecs.Event) {
		switch d := evt.Data.(type) {
		case system.DirectionChanged:
			changes++
			log.Info().Uint64("tick", w.Tick()).Str("entity", d.Name).
				Stringer("from", d.From).Stringer("to", d.To).Msg("direction")
		case system.StateChanged:
			changes++
			log.Info().Uint64("tick", w.Tick()).Str("entity", d.Name).
				Stringer("from", d.From).Stringer("to", d.To).Msg("state")
		}
	})

	dt := 1 / float64(tl.TPS)
	ticks := 0
	for !input.Done() {
		pipeline.Step(w, dt)
		ticks++
		if every > 0 && ticks%every == 0 {
			writeStatus(out, w, float64(tl.TPS))
		}
	}

	fmt.Fprintf(out, "== %d ticks, %.2fs, %d changes ==\n", ticks, float64(ticks)*dt, changes)
	writeStatus(out, w, float64(tl.TPS))
	return ticks, nil
}

func writeStatus(out io.Writer, w *ecs.World, tps float64) {
	s := hud.Collect(w)
	s.TPS = tps
	for _, line := range s.Lines() {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out)
}

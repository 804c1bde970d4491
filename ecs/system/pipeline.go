package system

import (
	"github.com/milk9111/billboard/billboard"
	"github.com/milk9111/billboard/ecs"
	"github.com/rs/zerolog"
)

type PipelineOptions struct {
	Input    InputSource
	Orienter billboard.Orienter
	Scripts  ScriptLoader
	Log      zerolog.Logger
}

// Pipeline is the per-frame system order. The camera runs after movement so
// it follows this frame's positions, and orientation runs after the camera
// so every character is classified against the view of the same tick.
type Pipeline struct {
	*ecs.Scheduler
	Scripts *ScriptIntentSystem
	Events  *EventLogSystem
}

func NewPipeline(opts PipelineOptions) *Pipeline {
	p := &Pipeline{
		Scripts: NewScriptIntentSystem(opts.Scripts, opts.Log),
		Events:  NewEventLogSystem(opts.Log),
	}
	p.Scheduler = ecs.NewScheduler(
		NewInputSystem(opts.Input),
		NewPlayerControlSystem(),
		p.Scripts,
		NewMovementSystem(),
		NewCameraSystem(opts.Log),
		NewBillboardSystem(),
		NewOrientationSystem(opts.Orienter, opts.Log),
		NewAnimationSystem(),
		p.Events,
	)
	return p
}

package system

import "github.com/milk9111/billboard/ecs/component"

// InputStep holds one input for Duration seconds.
type InputStep struct {
	Duration float64 `yaml:"duration"`
	MoveX    float64 `yaml:"move_x"`
	MoveZ    float64 `yaml:"move_z"`
	Run      bool    `yaml:"run"`
	Scroll   float64 `yaml:"scroll"`
	DragX    float64 `yaml:"drag_x"`
	DragY    float64 `yaml:"drag_y"`
	Rotate   bool    `yaml:"rotate"`
}

// ScriptedInput replays a fixed timeline. After the last step it reports no
// input.
type ScriptedInput struct {
	steps []InputStep
	clock float64
}

func NewScriptedInput(steps ...InputStep) *ScriptedInput {
	return &ScriptedInput{steps: append([]InputStep(nil), steps...)}
}

func (s *ScriptedInput) Poll(dt float64) component.Input {
	if s == nil {
		return component.Input{}
	}
	in := s.at(s.clock)
	if dt > 0 {
		s.clock += dt
	}
	return in
}

// Duration is the total length of the timeline in seconds.
func (s *ScriptedInput) Duration() float64 {
	total := 0.0
	for _, step := range s.steps {
		total += step.Duration
	}
	return total
}

// Done reports whether the clock has passed the last step.
func (s *ScriptedInput) Done() bool {
	return s.clock >= s.Duration()
}

func (s *ScriptedInput) at(t float64) component.Input {
	start := 0.0
	for _, step := range s.steps {
		if t < start+step.Duration {
			return component.Input{
				MoveX:  step.MoveX,
				MoveZ:  step.MoveZ,
				Run:    step.Run,
				Scroll: step.Scroll,
				DragX:  step.DragX,
				DragY:  step.DragY,
				Rotate: step.Rotate,
			}
		}
		start += step.Duration
	}
	return component.Input{}
}

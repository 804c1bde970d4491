package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	Position []float64 `yaml:"position"`
	Scale    []float64 `yaml:"scale"`
}

type SpriteComponentSpec struct {
	Atlas          string  `yaml:"atlas"`
	CellWidth      int     `yaml:"cell_width"`
	CellHeight     int     `yaml:"cell_height"`
	PixelsPerMetre float64 `yaml:"pixels_per_metre"`
	PivotX         float64 `yaml:"pivot_x"`
	PivotY         float64 `yaml:"pivot_y"`
}

// CharacterComponentSpec is the animation table of a billboard character,
// keyed by state then direction.
type CharacterComponentSpec struct {
	Heading    []float64                      `yaml:"heading"`
	FrameSpeed float64                        `yaml:"frame_speed"`
	Animations map[string]map[string]ClipSpec `yaml:"animations"`
}

// ClipSpec lists frames explicitly or as a run of Count frames starting at
// Start, Step apart.
type ClipSpec struct {
	Frames []int   `yaml:"frames"`
	Start  int     `yaml:"start"`
	Step   int     `yaml:"step"`
	Count  int     `yaml:"count"`
	Speed  float64 `yaml:"speed"`
}

// Resolve expands the clip into a frame list.
func (c ClipSpec) Resolve() ([]int, error) {
	if len(c.Frames) > 0 {
		if c.Count > 0 {
			return nil, fmt.Errorf("prefabs: clip sets both frames and count")
		}
		return append([]int(nil), c.Frames...), nil
	}
	if c.Count <= 0 {
		return nil, fmt.Errorf("prefabs: clip has no frames")
	}
	step := c.Step
	if step == 0 {
		step = 1
	}
	frames := make([]int, c.Count)
	for i := range frames {
		frames[i] = c.Start + i*step
	}
	return frames, nil
}

type MovableComponentSpec struct {
	WalkSpeed float64 `yaml:"walk_speed"`
	RunSpeed  float64 `yaml:"run_speed"`
}

type TurnTowardCameraComponentSpec struct {
	Enabled *bool   `yaml:"enabled"`
	Rate    float64 `yaml:"rate"`
}

type ScriptComponentSpec struct {
	Path string `yaml:"path"`
}

// CameraComponentSpec configures the orbit follow camera. Omitted fields
// keep the defaults; yaw limits default to unbounded.
type CameraComponentSpec struct {
	Target   string    `yaml:"target"`
	LookAt   []float64 `yaml:"look_at"`
	LookBack *float64  `yaml:"look_back"`

	Offset    []float64 `yaml:"offset"`
	Radius    *float64  `yaml:"radius"`
	ZoomSpeed *float64  `yaml:"zoom_speed"`
	RadiusMin *float64  `yaml:"radius_min"`
	RadiusMax *float64  `yaml:"radius_max"`

	Yaw      *float64 `yaml:"yaw"`
	YawSpeed *float64 `yaml:"yaw_speed"`
	YawMin   *float64 `yaml:"yaw_min"`
	YawMax   *float64 `yaml:"yaw_max"`

	Pitch      *float64 `yaml:"pitch"`
	PitchSpeed *float64 `yaml:"pitch_speed"`
	PitchMin   *float64 `yaml:"pitch_min"`
	PitchMax   *float64 `yaml:"pitch_max"`

	Smoothing *float64 `yaml:"smoothing"`
}

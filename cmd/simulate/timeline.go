package main

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/milk9111/billboard/ecs/system"
	"gopkg.in/yaml.v3"
)

//go:embed walk.yaml
var defaultTimeline []byte

var ErrEmptyTimeline = errors.New("simulate: timeline has no steps")

type Timeline struct {
	Scene string             `yaml:"scene"`
	TPS   int                `yaml:"tps"`
	Steps []system.InputStep `yaml:"steps"`
}

// LoadTimeline reads path, or the built-in walk when path is empty.
func LoadTimeline(path string) (Timeline, error) {
	data := defaultTimeline
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Timeline{}, err
		}
		data = b
	}
	return ParseTimeline(data)
}

func ParseTimeline(data []byte) (Timeline, error) {
	var tl Timeline
	if err := yaml.Unmarshal(data, &tl); err != nil {
		return Timeline{}, fmt.Errorf("decode timeline: %w", err)
	}
	if len(tl.Steps) == 0 {
		return Timeline{}, ErrEmptyTimeline
	}
	for i, s := range tl.Steps {
		if !(s.Duration > 0) || math.IsInf(s.Duration, 0) {
			return Timeline{}, fmt.Errorf("step %d: duration must be positive, got %v", i, s.Duration)
		}
	}
	if tl.Scene == "" {
		tl.Scene = "scene.yaml"
	}
	if tl.TPS <= 0 {
		tl.TPS = 60
	}
	return tl, nil
}

package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SceneSpec lists the prefabs spawned at startup, in order.
type SceneSpec struct {
	Name     string            `yaml:"name"`
	Entities []SceneEntitySpec `yaml:"entities"`
}

// SceneEntitySpec places one prefab. Position and heading override the
// prefab's own values when set.
type SceneEntitySpec struct {
	Prefab   string    `yaml:"prefab"`
	Name     string    `yaml:"name"`
	Position []float64 `yaml:"position"`
	Heading  []float64 `yaml:"heading"`
}

func LoadSceneSpec(filename string) (SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return SceneSpec{}, err
	}
	for i, e := range spec.Entities {
		if e.Prefab == "" {
			return SceneSpec{}, fmt.Errorf("prefabs: %s: entity %d has no prefab", filename, i)
		}
	}
	return spec, nil
}

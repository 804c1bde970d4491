package entity

import (
	"fmt"
	"sort"
	"sync"

	"github.com/milk9111/billboard/billboard"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
	"github.com/milk9111/billboard/prefabs"
)

const defaultFrameSpeed = 0.1

// Characters spawned from the same prefab share one library.
var (
	libraryMu sync.Mutex
	libraries = map[string]*billboard.Library{}
)

func libraryFor(prefab string, spec characterSpec) (*billboard.Library, error) {
	libraryMu.Lock()
	defer libraryMu.Unlock()
	if lib, ok := libraries[prefab]; ok {
		return lib, nil
	}
	lib, err := BuildLibrary(prefab, spec)
	if err != nil {
		return nil, err
	}
	libraries[prefab] = lib
	return lib, nil
}

// BuildLibrary validates an animation table and registers every clip.
func BuildLibrary(name string, spec prefabs.CharacterComponentSpec) (*billboard.Library, error) {
	if len(spec.Animations) == 0 {
		return nil, fmt.Errorf("character %s: no animations", name)
	}
	speed := spec.FrameSpeed
	if speed == 0 {
		speed = defaultFrameSpeed
	}

	lib := billboard.NewLibrary(name)
	states := make([]string, 0, len(spec.Animations))
	for s := range spec.Animations {
		states = append(states, s)
	}
	sort.Strings(states)

	for _, stateName := range states {
		state, err := billboard.ParseState(stateName)
		if err != nil {
			return nil, fmt.Errorf("character %s: %w", name, err)
		}
		for dirName, clip := range spec.Animations[stateName] {
			dir, err := billboard.ParseDirection(dirName)
			if err != nil {
				return nil, fmt.Errorf("character %s: %s: %w", name, stateName, err)
			}
			frames, err := clip.Resolve()
			if err != nil {
				return nil, fmt.Errorf("character %s: %s/%s: %w", name, stateName, dirName, err)
			}
			clipSpeed := clip.Speed
			if clipSpeed == 0 {
				clipSpeed = speed
			}
			if err := lib.Register(billboard.Key{State: state, Direction: dir}, frames, clipSpeed); err != nil {
				return nil, err
			}
		}
	}
	if !lib.Has(billboard.Key{State: billboard.Idle, Direction: billboard.Down}) {
		return nil, fmt.Errorf("character %s: idle/down is required", name)
	}
	return lib, nil
}

// ReloadPrefab rebuilds the library of prefab from disk and rebinds every
// character spawned from it. It returns how many characters were rebound.
// On error the old library stays in use.
func ReloadPrefab(w *ecs.World, prefab string) (int, error) {
	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		return 0, err
	}
	raw, ok := spec.Components["character"]
	if !ok {
		return 0, nil
	}
	cs, err := prefabs.DecodeComponentSpec[characterSpec](raw)
	if err != nil {
		return 0, fmt.Errorf("reload %s: decode character spec: %w", prefab, err)
	}
	lib, err := BuildLibrary(prefab, cs)
	if err != nil {
		return 0, fmt.Errorf("reload %s: %w", prefab, err)
	}

	libraryMu.Lock()
	libraries[prefab] = lib
	libraryMu.Unlock()

	n := 0
	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, ch *component.Character) {
		if ch.Prefab != prefab || ch.AnimatedCharacter == nil {
			return
		}
		ch.Rebind(lib)
		ch.Library = lib
		n++
	})
	return n, nil
}

// ForgetLibraries clears the library cache.
func ForgetLibraries() {
	libraryMu.Lock()
	defer libraryMu.Unlock()
	libraries = map[string]*billboard.Library{}
}

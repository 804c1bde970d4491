package billboard

import (
	"fmt"
	"sort"
)

// Clip is the static description of one animation.
type Clip struct {
	Frames []int
	Speed  float64
}

// Library is the static per-character table of clips. It is shared by every
// character spawned from the same prefab; each character gets its own
// mutable table from Instantiate.
type Library struct {
	name  string
	clips map[Key]Clip
}

// NewLibrary creates an empty library.
func NewLibrary(name string) *Library {
	return &Library{name: name, clips: make(map[Key]Clip)}
}

func (l *Library) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// Register validates and stores a clip, replacing any previous one for key.
func (l *Library) Register(key Key, frames []int, speed float64) error {
	if l == nil {
		return fmt.Errorf("billboard: register %s: nil library", key)
	}
	if _, err := NewAnimation(frames, speed); err != nil {
		return fmt.Errorf("billboard: register %s/%s: %w", l.name, key, err)
	}
	l.clips[key] = Clip{Frames: append([]int(nil), frames...), Speed: speed}
	return nil
}

// Clip returns the clip registered for key.
func (l *Library) Clip(key Key) (Clip, bool) {
	if l == nil {
		return Clip{}, false
	}
	c, ok := l.clips[key]
	return c, ok
}

// Has reports whether a clip exists for key.
func (l *Library) Has(key Key) bool {
	_, ok := l.Clip(key)
	return ok
}

// HasState reports whether any direction is registered for state.
func (l *Library) HasState(state AnimationState) bool {
	for _, d := range Directions {
		if l.Has(Key{State: state, Direction: d}) {
			return true
		}
	}
	return false
}

// Keys returns registered keys ordered by state then direction.
func (l *Library) Keys() []Key {
	if l == nil {
		return nil
	}
	keys := make([]Key, 0, len(l.clips))
	for k := range l.clips {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].State != keys[j].State {
			return keys[i].State < keys[j].State
		}
		return keys[i].Direction < keys[j].Direction
	})
	return keys
}

// Instantiate builds a fresh animation table with every clip at frame 0.
func (l *Library) Instantiate() map[Key]*Animation {
	table := make(map[Key]*Animation, len(l.Keys()))
	for _, k := range l.Keys() {
		c := l.clips[k]
		// Register already validated the clip.
		table[k] = MustAnimation(c.Frames, c.Speed)
	}
	return table
}

package hud

import (
	"fmt"
	"sort"

	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
	"github.com/milk9111/billboard/orbit"
)

// CharacterStatus is one row of the overlay.
type CharacterStatus struct {
	Name      string
	Direction string
	State     string
	Sprite    int
	Mirrored  bool
	Player    bool
}

// Status is a snapshot of what the overlay shows.
type Status struct {
	Tick       uint64
	TPS        float64
	Camera     orbit.State
	HasCamera  bool
	Characters []CharacterStatus
	LastEvent  string
}

// Collect reads the overlay data from the world. Characters are sorted with
// the player first, then by name.
func Collect(w *ecs.World) Status {
	s := Status{Tick: w.Tick()}
	if e, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok && cam.Controller != nil {
			s.Camera = cam.Controller.State()
			s.HasCamera = true
		}
	}

	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, ch *component.Character) {
		if ch.AnimatedCharacter == nil {
			return
		}
		name := e.String()
		if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok {
			name = n.Value
		}
		s.Characters = append(s.Characters, CharacterStatus{
			Name:      name,
			Direction: ch.Direction.String(),
			State:     ch.State.String(),
			Sprite:    ch.Sprite,
			Mirrored:  ch.Mirrored,
			Player:    ecs.Has(w, e, component.PlayerTagComponent.Kind()),
		})
	})
	sort.SliceStable(s.Characters, func(i, j int) bool {
		a, b := s.Characters[i], s.Characters[j]
		if a.Player != b.Player {
			return a.Player
		}
		return a.Name < b.Name
	})
	return s
}

// Lines formats s for display.
func (s Status) Lines() []string {
	lines := []string{fmt.Sprintf("tick %d  tps %.1f", s.Tick, s.TPS)}
	if s.HasCamera {
		lines = append(lines, fmt.Sprintf("camera yaw %.2f pitch %.2f radius %.1f", s.Camera.Yaw, s.Camera.Pitch, s.Camera.Radius))
	}
	for _, c := range s.Characters {
		flip := ""
		if c.Mirrored {
			flip = " (flipped)"
		}
		lines = append(lines, fmt.Sprintf("%-8s %-5s %-4s frame %d%s", c.Name, c.Direction, c.State, c.Sprite, flip))
	}
	if s.LastEvent != "" {
		lines = append(lines, "last: "+s.LastEvent)
	}
	return lines
}

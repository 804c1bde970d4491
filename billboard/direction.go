package billboard

import (
	"fmt"
	"strings"
)

// Direction is the side of a character the viewer currently sees.
type Direction int

const (
	Down Direction = iota
	Right
	Up
	Left
)

// Directions lists every direction in atlas order.
var Directions = [...]Direction{Down, Right, Up, Left}

func (d Direction) String() string {
	switch d {
	case Down:
		return "Down"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Opposite returns the mirrored side. Down and Up map to themselves.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// ParseDirection accepts direction names case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "down":
		return Down, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "left":
		return Left, nil
	default:
		return Down, fmt.Errorf("billboard: unknown direction %q", s)
	}
}

// AnimationState is what a character is doing.
type AnimationState int

const (
	Idle AnimationState = iota
	Walk
	Run
)

func (s AnimationState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Walk:
		return "Walk"
	case Run:
		return "Run"
	default:
		return fmt.Sprintf("AnimationState(%d)", int(s))
	}
}

// ParseState accepts state names case-insensitively.
func ParseState(s string) (AnimationState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "idle":
		return Idle, nil
	case "walk":
		return Walk, nil
	case "run":
		return Run, nil
	default:
		return Idle, fmt.Errorf("billboard: unknown animation state %q", s)
	}
}

// Key addresses one animation of a character.
type Key struct {
	State     AnimationState
	Direction Direction
}

func (k Key) String() string {
	return k.State.String() + "/" + k.Direction.String()
}

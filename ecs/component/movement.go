package component

import "github.com/go-gl/mathgl/mgl64"

type Movable struct {
	WalkSpeed float64
	RunSpeed  float64
}

var MovableComponent = NewComponent[Movable]()

// MoveIntent is a world-space direction the entity wants to travel this
// frame. A zero vector means stand still.
type MoveIntent struct {
	Direction mgl64.Vec3
	Run       bool
}

var MoveIntentComponent = NewComponent[MoveIntent]()

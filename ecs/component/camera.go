package component

import "github.com/milk9111/billboard/orbit"

// Camera is the orbit follow camera. View is rewritten by the camera system
// every frame and read by everything that depends on the viewing angle.
type Camera struct {
	Controller *orbit.Controller
	TargetName string
	LookBack   float64
	View       orbit.View
	// ViewTick is the world tick View was produced on.
	ViewTick uint64
}

var CameraComponent = NewComponent[Camera]()

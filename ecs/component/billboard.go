package component

// TurnTowardCamera rotates the sprite quad to face the camera look point.
type TurnTowardCamera struct {
	Enabled bool
	Rate    float64
}

var TurnTowardCameraComponent = NewComponent[TurnTowardCamera]()

package component

// Input stores per-frame input state. Move axes are in camera space: MoveZ is
// forward, MoveX is right.
type Input struct {
	MoveX float64
	MoveZ float64
	Run   bool

	Scroll float64
	DragX  float64
	DragY  float64
	// Rotate is true while the orbit drag chord is held.
	Rotate bool

	CopyCameraPose bool
	ToggleHUD      bool
}

var InputComponent = NewComponent[Input]()

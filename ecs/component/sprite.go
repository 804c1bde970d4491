package component

// Sprite selects a cell of a character atlas. The renderer flips the cell
// horizontally when FlipX is set.
type Sprite struct {
	Atlas          string
	Index          int
	FlipX          bool
	PixelsPerMetre float64
	PivotX         float64
	PivotY         float64
}

var SpriteComponent = NewComponent[Sprite]()

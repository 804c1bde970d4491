package billboard

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const degenerateLength = 1e-6

var (
	upAxis      = mgl64.Vec3{0, 1, 0}
	quarterTurn = mgl64.QuatRotate(math.Pi/2, upAxis)
	frontLimit  = math.Pi / 4
	behindLimit = 3 * math.Pi / 4
)

// Classifier maps a heading and a viewer offset to the visible side.
//
// The thresholds are fixed with no hysteresis, so a viewer sitting exactly on
// a boundary can flicker for a frame.
type Classifier struct {
	// NegativeSide is returned when (heading - viewerOffset) points against
	// the heading's right vector. The other side is its opposite.
	NegativeSide Direction
}

// DefaultClassifier maps the negative side to Left.
var DefaultClassifier = Classifier{NegativeSide: Left}

// Classify returns the direction using DefaultClassifier.
func Classify(heading, viewerOffset mgl64.Vec3, prev Direction) Direction {
	return DefaultClassifier.Classify(heading, viewerOffset, prev)
}

// Classify returns Down when the viewer is within 45 degrees of the heading,
// Up when it is within 45 degrees of the back, and a side otherwise. prev is
// returned when either vector is too short to define an angle.
func (c Classifier) Classify(heading, viewerOffset mgl64.Vec3, prev Direction) Direction {
	angle, ok := AngleBetween(heading, viewerOffset)
	if !ok {
		return prev
	}

	switch {
	case angle < frontLimit:
		return Down
	case angle > behindLimit:
		return Up
	}

	right := quarterTurn.Rotate(heading)
	if heading.Sub(viewerOffset).Dot(right) < 0 {
		return c.negative()
	}
	return c.negative().Opposite()
}

func (c Classifier) negative() Direction {
	if c.NegativeSide == Right {
		return Right
	}
	return Left
}

// AngleBetween returns the unsigned angle between a and b in radians. ok is
// false when either vector is degenerate.
func AngleBetween(a, b mgl64.Vec3) (float64, bool) {
	la, lb := a.Len(), b.Len()
	if !(la > degenerateLength) || !(lb > degenerateLength) {
		return 0, false
	}
	cos := mgl64.Clamp(a.Dot(b)/(la*lb), -1, 1)
	angle := math.Acos(cos)
	if math.IsNaN(angle) {
		return 0, false
	}
	return angle, true
}

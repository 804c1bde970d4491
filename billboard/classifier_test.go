package billboard

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		heading mgl64.Vec3
		viewer  mgl64.Vec3
		prev    Direction
		want    Direction
	}{
		{"front", mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 1}, Up, Down},
		{"behind", mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, -1}, Down, Up},
		{"side_dot_negative", mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}, Down, Left},
		{"side_dot_positive", mgl64.Vec3{0, 0, 1}, mgl64.Vec3{-1, 0, 0}, Down, Right},
		{"just_inside_front", mgl64.Vec3{0, 0, 1}, rotY(mgl64.Vec3{0, 0, 1}, math.Pi/4-0.01), Up, Down},
		{"just_outside_front", mgl64.Vec3{0, 0, 1}, rotY(mgl64.Vec3{0, 0, 1}, math.Pi/4+0.01), Down, Left},
		{"just_inside_back", mgl64.Vec3{0, 0, 1}, rotY(mgl64.Vec3{0, 0, 1}, 3*math.Pi/4+0.01), Down, Up},
		{"scaled_vectors", mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -0.2}, Down, Up},
		{"zero_heading", mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, Right, Right},
		{"zero_viewer", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{}, Up, Up},
		{"nan_viewer", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{math.NaN(), 0, 0}, Left, Left},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Classify(c.heading, c.viewer, c.prev))
		})
	}
}

func TestClassifierSideConvention(t *testing.T) {
	flipped := Classifier{NegativeSide: Right}
	heading := mgl64.Vec3{0, 0, 1}

	assert.Equal(t, Right, flipped.Classify(heading, mgl64.Vec3{1, 0, 0}, Down))
	assert.Equal(t, Left, flipped.Classify(heading, mgl64.Vec3{-1, 0, 0}, Down))
	assert.Equal(t, Down, flipped.Classify(heading, heading, Up))
}

func TestClassifyIsPure(t *testing.T) {
	heading := mgl64.Vec3{0.8, 0, -0.2}.Normalize()
	viewer := mgl64.Vec3{-3, 0, 1}
	first := Classify(heading, viewer, Down)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(heading, viewer, Down))
	}
	assert.Equal(t, mgl64.Vec3{0.8, 0, -0.2}.Normalize(), heading)
}

func TestAngleBetween(t *testing.T) {
	angle, ok := AngleBetween(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1})
	assert.True(t, ok)
	assert.InDelta(t, math.Pi/2, angle, 1e-9)

	angle, ok = AngleBetween(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{2, 0, 0})
	assert.True(t, ok)
	assert.InDelta(t, 0, angle, 1e-9)

	_, ok = AngleBetween(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0})
	assert.False(t, ok)
}

func rotY(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	return mgl64.QuatRotate(angle, mgl64.Vec3{0, 1, 0}).Rotate(v)
}

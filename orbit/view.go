package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// View is the camera transform published by one Tick. Seq identifies the
// tick so readers can tell a fresh view from a stale one.
type View struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Forward  mgl64.Vec3
	Seq      uint64
}

// LookPoint is the point lookBack units behind the camera, dropped to the
// ground plane.
func (v View) LookPoint(lookBack float64) mgl64.Vec3 {
	p := v.Position.Sub(v.Forward.Mul(lookBack))
	return flatten(p)
}

// ViewerOffset points from a character at pos toward the look point, on the
// ground plane.
func (v View) ViewerOffset(pos mgl64.Vec3, lookBack float64) mgl64.Vec3 {
	return flatten(v.LookPoint(lookBack).Sub(pos))
}

// FlatAxes returns the camera forward and right vectors projected onto the
// ground plane. ok is false when the camera looks straight down.
func (v View) FlatAxes() (fwd, right mgl64.Vec3, ok bool) {
	f := flatten(v.Forward)
	if f.Len() < 1e-6 {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	f = f.Normalize()
	return f, mgl64.Vec3{-f[2], 0, f[0]}, true
}

func flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// LookAt returns a level (no roll) pose at eye facing center. When the two
// points coincide the identity rotation is used.
func LookAt(eye, center mgl64.Vec3) Pose {
	d := center.Sub(eye)
	if d.Len() < 1e-9 {
		return Pose{Position: eye, Rotation: mgl64.QuatIdent()}
	}
	d = d.Normalize()
	pitch := math.Asin(mgl64.Clamp(d[1], -1, 1))
	yaw := math.Atan2(-d[0], -d[2])
	rot := mgl64.QuatRotate(yaw, yAxis).Mul(mgl64.QuatRotate(pitch, xAxis))
	return Pose{Position: eye, Rotation: rot}
}

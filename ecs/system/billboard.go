package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/billboard/common"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
)

// BillboardSystem turns sprite quads about the vertical axis so they face
// the camera look point.
type BillboardSystem struct{}

func NewBillboardSystem() *BillboardSystem {
	return &BillboardSystem{}
}

func (b *BillboardSystem) Update(w *ecs.World) {
	cam, ok := activeCamera(w)
	if !ok {
		return
	}
	look := cam.View.LookPoint(cam.LookBack)
	dt := w.DeltaTime()

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.TurnTowardCameraComponent.Kind(), func(e ecs.Entity, t *component.Transform, turn *component.TurnTowardCamera) {
		if !turn.Enabled {
			return
		}
		goal, ok := FacingRotation(t.Position, look)
		if !ok {
			return
		}
		cur := t.Rotation
		if cur.Len() == 0 {
			cur = mgl64.QuatIdent()
		}
		t.Rotation = mgl64.QuatSlerp(cur, goal, common.ApproachFactor(turn.Rate, dt)).Normalize()
	})
}

// FacingRotation is the yaw-only rotation that points a quad's +Z face from
// pos toward target.
func FacingRotation(pos, target mgl64.Vec3) (mgl64.Quat, bool) {
	d := mgl64.Vec3{target[0] - pos[0], 0, target[2] - pos[2]}
	if d.Len() < 1e-9 {
		return mgl64.Quat{}, false
	}
	return mgl64.QuatRotate(math.Atan2(d[0], d[2]), mgl64.Vec3{0, 1, 0}), true
}

// activeCamera returns the first camera with a controller.
func activeCamera(w *ecs.World) (*component.Camera, bool) {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return nil, false
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok || cam.Controller == nil {
		return nil, false
	}
	return cam, true
}

package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
	"github.com/rs/zerolog"
)

// CameraSystem drives every orbit camera from its own Input and publishes
// the resulting View, stamped with the current world tick.
type CameraSystem struct {
	log  zerolog.Logger
	lost map[ecs.Entity]bool
}

func NewCameraSystem(log zerolog.Logger) *CameraSystem {
	return &CameraSystem{
		log:  log.With().Str("system", "camera").Logger(),
		lost: map[ecs.Entity]bool{},
	}
}

// Update sets each camera's transform from its controller.
func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, cam *component.Camera, t *component.Transform) {
		if cam.Controller == nil {
			return
		}

		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			cam.Controller.ApplyScroll(in.Scroll, dt)
			if in.Rotate {
				cam.Controller.ApplyDrag(in.DragX, in.DragY, dt)
			}
		}

		target, tracked := findTargetPosition(w, cam.TargetName)
		if !tracked && !cs.lost[e] {
			cs.log.Warn().Str("target", cam.TargetName).Msg("camera target not found, holding pose")
		}
		cs.lost[e] = !tracked

		view := cam.Controller.Tick(dt, target, tracked)
		cam.View = view
		cam.ViewTick = w.Tick()
		t.Position = view.Position
		t.Rotation = view.Rotation
	})
}

func findTargetPosition(w *ecs.World, name string) (mgl64.Vec3, bool) {
	var (
		pos   mgl64.Vec3
		found bool
	)
	ecs.ForEach2(w, component.NameComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, n *component.Name, t *component.Transform) {
		if found || n.Value != name {
			return
		}
		if ecs.Has(w, e, component.CameraComponent.Kind()) {
			return
		}
		pos, found = t.Position, true
	})
	return pos, found
}

// CameraPoseText formats a camera for pasting into a prefab.
func CameraPoseText(cam *component.Camera) string {
	if cam == nil || cam.Controller == nil {
		return ""
	}
	s := cam.Controller.State()
	p := cam.View.Position
	return fmt.Sprintf("position: [%.3f, %.3f, %.3f]\nyaw: %.3f\npitch: %.3f\nradius: %.3f\n",
		p[0], p[1], p[2], s.Yaw, s.Pitch, s.Radius)
}

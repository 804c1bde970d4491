package entity

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/billboard/ecs"
	"github.com/milk9111/billboard/ecs/component"
	"github.com/milk9111/billboard/orbit"
	"github.com/milk9111/billboard/prefabs"
)

// DefaultLookBack is used by cameras whose prefab does not set look_back.
// The application overrides it from config.
var DefaultLookBack = 10.0

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "camera.yaml")
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	cfg, err := CameraConfig(spec)
	if err != nil {
		return err
	}

	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		nt := component.NewTransform(mgl64.Vec3{})
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &nt); err != nil {
			return err
		}
		t = &nt
	}

	pose := orbit.Pose{Position: t.Position, Rotation: mgl64.QuatIdent()}
	if len(spec.LookAt) > 0 {
		center, err := vec3(spec.LookAt, mgl64.Vec3{})
		if err != nil {
			return fmt.Errorf("look_at: %w", err)
		}
		pose = orbit.LookAt(t.Position, center)
	}

	ctrl, err := orbit.NewController(cfg, pose)
	if err != nil {
		return err
	}
	t.Rotation = ctrl.Pose().Rotation

	lookBack := DefaultLookBack
	if spec.LookBack != nil {
		lookBack = *spec.LookBack
	}
	target := spec.Target
	if target == "" {
		target = "player"
	}

	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Controller: ctrl,
		TargetName: target,
		LookBack:   lookBack,
		View:       ctrl.View(),
	})
}

// CameraConfig applies a prefab on top of orbit.DefaultConfig. Yaw is
// unbounded unless both limits are given.
func CameraConfig(spec prefabs.CameraComponentSpec) (orbit.Config, error) {
	cfg := orbit.DefaultConfig()
	if len(spec.Offset) > 0 {
		off, err := vec3(spec.Offset, mgl64.Vec3{})
		if err != nil {
			return orbit.Config{}, fmt.Errorf("offset: %w", err)
		}
		cfg.Offset = off
	}

	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&cfg.Radius, spec.Radius)
	set(&cfg.ZoomSpeed, spec.ZoomSpeed)
	set(&cfg.RadiusLimits.Min, spec.RadiusMin)
	set(&cfg.RadiusLimits.Max, spec.RadiusMax)
	set(&cfg.Yaw, spec.Yaw)
	set(&cfg.YawSpeed, spec.YawSpeed)
	set(&cfg.Pitch, spec.Pitch)
	set(&cfg.PitchSpeed, spec.PitchSpeed)
	set(&cfg.PitchLimits.Min, spec.PitchMin)
	set(&cfg.PitchLimits.Max, spec.PitchMax)
	set(&cfg.Smoothing, spec.Smoothing)

	cfg.YawLimits = orbit.Unbounded
	if spec.YawMin != nil && spec.YawMax != nil {
		cfg.YawLimits = orbit.Limits{Min: *spec.YawMin, Max: *spec.YawMax}
	} else if spec.YawMin != nil || spec.YawMax != nil {
		return orbit.Config{}, fmt.Errorf("%w: yaw_min and yaw_max must be set together", orbit.ErrInvalidConfig)
	}
	if math.IsInf(cfg.RadiusLimits.Max, 1) {
		return orbit.Config{}, fmt.Errorf("%w: radius_max must be finite", orbit.ErrInvalidConfig)
	}

	return cfg, cfg.Validate()
}

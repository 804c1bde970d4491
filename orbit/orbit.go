package orbit

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/billboard/common"
)

var ErrInvalidConfig = errors.New("orbit: invalid config")

var (
	yAxis   = mgl64.Vec3{0, 1, 0}
	xAxis   = mgl64.Vec3{1, 0, 0}
	forward = mgl64.Vec3{0, 0, -1}
)

// Limits is a closed range. Use Unbounded for an open axis.
type Limits struct {
	Min float64
	Max float64
}

// Unbounded never clamps.
var Unbounded = Limits{Min: math.Inf(-1), Max: math.Inf(1)}

func (l Limits) Clamp(v float64) float64 {
	return math.Max(l.Min, math.Min(l.Max, v))
}

func (l Limits) valid() bool {
	return !math.IsNaN(l.Min) && !math.IsNaN(l.Max) && l.Min <= l.Max
}

// Config holds the construction-time camera constants.
type Config struct {
	// Offset is added to the target position, e.g. to aim at a chest rather
	// than the feet.
	Offset mgl64.Vec3

	Radius       float64
	ZoomSpeed    float64
	RadiusLimits Limits

	Yaw       float64
	YawSpeed  float64
	YawLimits Limits

	Pitch       float64
	PitchSpeed  float64
	PitchLimits Limits

	// Smoothing is the exponential approach rate per second.
	Smoothing float64
}

// DefaultConfig returns the follow camera tuning used by the demo scene.
func DefaultConfig() Config {
	return Config{
		Offset:       mgl64.Vec3{0, 0.5, 0},
		Radius:       8,
		ZoomSpeed:    30,
		RadiusLimits: Limits{Min: 2, Max: 18},
		Yaw:          0.2,
		YawSpeed:     0.5,
		YawLimits:    Unbounded,
		Pitch:        -0.6,
		PitchSpeed:   0.3,
		PitchLimits:  Limits{Min: -1.2, Max: -0.05},
		Smoothing:    10,
	}
}

// Validate reports the first inconsistent field.
func (c Config) Validate() error {
	switch {
	case !c.RadiusLimits.valid() || !(c.RadiusLimits.Min > 0):
		return fmt.Errorf("%w: radius limits %v", ErrInvalidConfig, c.RadiusLimits)
	case !c.YawLimits.valid():
		return fmt.Errorf("%w: yaw limits %v", ErrInvalidConfig, c.YawLimits)
	case !c.PitchLimits.valid():
		return fmt.Errorf("%w: pitch limits %v", ErrInvalidConfig, c.PitchLimits)
	case !(c.ZoomSpeed >= 0) || !(c.YawSpeed >= 0) || !(c.PitchSpeed >= 0):
		return fmt.Errorf("%w: speeds must be non-negative", ErrInvalidConfig)
	case !(c.Smoothing >= 0):
		return fmt.Errorf("%w: smoothing %v", ErrInvalidConfig, c.Smoothing)
	case math.IsNaN(c.Radius) || math.IsNaN(c.Yaw) || math.IsNaN(c.Pitch):
		return fmt.Errorf("%w: NaN initial state", ErrInvalidConfig)
	}
	return nil
}

// State is the spherical offset around the target.
type State struct {
	Yaw    float64
	Pitch  float64
	Radius float64
}

// Pose is a camera transform.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Forward is the direction the camera looks along.
func (p Pose) Forward() mgl64.Vec3 {
	return p.Rotation.Rotate(forward)
}

// Controller owns the orbit state and is its only writer.
type Controller struct {
	cfg   Config
	state State
	pose  Pose
	seq   uint64
}

// NewController validates cfg and starts the camera at initial. The configured
// yaw, pitch and radius are clamped into their limits.
func NewController(cfg Config, initial Pose) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if initial.Rotation.Len() == 0 {
		initial.Rotation = mgl64.QuatIdent()
	}
	c := &Controller{
		cfg:  cfg,
		pose: Pose{Position: initial.Position, Rotation: initial.Rotation.Normalize()},
	}
	c.state = State{
		Yaw:    cfg.YawLimits.Clamp(cfg.Yaw),
		Pitch:  cfg.PitchLimits.Clamp(cfg.Pitch),
		Radius: cfg.RadiusLimits.Clamp(cfg.Radius),
	}
	return c, nil
}

func (c *Controller) Config() Config {
	return c.cfg
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Pose() Pose {
	return c.pose
}

// ApplyScroll zooms in for positive delta.
func (c *Controller) ApplyScroll(delta, dt float64) {
	if !finite(delta) || !finite(dt) {
		return
	}
	c.state.Radius = c.cfg.RadiusLimits.Clamp(c.state.Radius - delta*c.cfg.ZoomSpeed*dt)
}

// ApplyDrag orbits by a cursor delta. Callers only forward drags while the
// rotate input is held.
func (c *Controller) ApplyDrag(dx, dy, dt float64) {
	if !finite(dx) || !finite(dy) || !finite(dt) {
		return
	}
	c.state.Yaw = c.cfg.YawLimits.Clamp(c.state.Yaw - dx*c.cfg.YawSpeed*dt)
	c.state.Pitch = c.cfg.PitchLimits.Clamp(c.state.Pitch + dy*c.cfg.PitchSpeed*dt)
}

// TargetPose is where the camera settles for a target at rest.
func (c *Controller) TargetPose(target mgl64.Vec3) Pose {
	rot := mgl64.QuatRotate(c.state.Yaw, yAxis).Mul(mgl64.QuatRotate(c.state.Pitch, xAxis))
	pos := rot.Rotate(mgl64.Vec3{0, 0, c.state.Radius}).Add(target).Add(c.cfg.Offset)
	return Pose{Position: pos, Rotation: rot}
}

// Tick moves the camera toward its target pose and returns the view for this
// tick. When tracked is false the last pose is held.
func (c *Controller) Tick(dt float64, target mgl64.Vec3, tracked bool) View {
	c.seq++
	if tracked && finite(dt) && dt > 0 && finiteVec(target) {
		goal := c.TargetPose(target)
		t := common.ApproachFactor(c.cfg.Smoothing, dt)
		c.pose.Position = lerp(c.pose.Position, goal.Position, t)
		c.pose.Rotation = nlerp(c.pose.Rotation, goal.Rotation, t)
	}
	return c.View()
}

// View returns the current pose stamped with the tick sequence.
func (c *Controller) View() View {
	return View{
		Position: c.pose.Position,
		Rotation: c.pose.Rotation,
		Forward:  c.pose.Forward(),
		Seq:      c.seq,
	}
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// nlerp interpolates along the shorter arc.
func nlerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	q := a.Add(b.Sub(a).Scale(t))
	if q.Len() == 0 {
		return b
	}
	return q.Normalize()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteVec(v mgl64.Vec3) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}

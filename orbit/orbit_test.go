package orbit

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	c, err := NewController(DefaultConfig(), Pose{Position: mgl64.Vec3{2, 2.5, 5}})
	require.NoError(t, err)
	return c
}

func TestNewControllerValidates(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"inverted_radius", func(c *Config) { c.RadiusLimits = Limits{Min: 5, Max: 1} }},
		{"zero_radius_min", func(c *Config) { c.RadiusLimits = Limits{Min: 0, Max: 1} }},
		{"inverted_pitch", func(c *Config) { c.PitchLimits = Limits{Min: 1, Max: -1} }},
		{"nan_yaw_limit", func(c *Config) { c.YawLimits = Limits{Min: math.NaN(), Max: 1} }},
		{"negative_speed", func(c *Config) { c.ZoomSpeed = -1 }},
		{"negative_smoothing", func(c *Config) { c.Smoothing = -1 }},
		{"nan_radius", func(c *Config) { c.Radius = math.NaN() }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			ctrl, err := NewController(cfg, Pose{})
			assert.Nil(t, ctrl)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNewControllerClampsInitialState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Radius = 100
	cfg.Pitch = 1
	c, err := NewController(cfg, Pose{})
	require.NoError(t, err)

	assert.Equal(t, 18.0, c.State().Radius)
	assert.Equal(t, -0.05, c.State().Pitch)
	assert.InDelta(t, 1, c.Pose().Rotation.Len(), 1e-9)
}

func TestApplyScroll(t *testing.T) {
	c := newTestController(t)
	c.ApplyScroll(1, 0.1)
	assert.InDelta(t, 5, c.State().Radius, 1e-9)

	c.ApplyScroll(10, 1)
	assert.Equal(t, 2.0, c.State().Radius)

	c.ApplyScroll(-10, 1)
	assert.Equal(t, 18.0, c.State().Radius)

	c.ApplyScroll(math.NaN(), 1)
	assert.Equal(t, 18.0, c.State().Radius)
}

func TestApplyDrag(t *testing.T) {
	c := newTestController(t)
	c.ApplyDrag(2, 1, 0.5)
	assert.InDelta(t, 0.2-0.5, c.State().Yaw, 1e-9)
	assert.InDelta(t, -0.6+0.15, c.State().Pitch, 1e-9)

	c.ApplyDrag(-1000, 1000, 1)
	assert.InDelta(t, 0.2-0.5+500, c.State().Yaw, 1e-9)
	assert.Equal(t, -0.05, c.State().Pitch)

	c.ApplyDrag(0, -1000, 1)
	assert.Equal(t, -1.2, c.State().Pitch)
}

func TestApplyDragBoundedYaw(t *testing.T) {
	cfg := DefaultConfig()
	cfg.YawLimits = Limits{Min: -1, Max: 1}
	c, err := NewController(cfg, Pose{})
	require.NoError(t, err)

	c.ApplyDrag(100, 0, 1)
	assert.Equal(t, -1.0, c.State().Yaw)
	c.ApplyDrag(-100, 0, 1)
	assert.Equal(t, 1.0, c.State().Yaw)
}

func TestClampInvariantUnderRandomInput(t *testing.T) {
	c := newTestController(t)
	cfg := c.Config()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		dt := rng.Float64() * 0.1
		c.ApplyScroll(rng.NormFloat64()*5, dt)
		if rng.Intn(2) == 0 {
			c.ApplyDrag(rng.NormFloat64()*200, rng.NormFloat64()*200, dt)
		}
		c.Tick(dt, mgl64.Vec3{rng.Float64(), 0, rng.Float64()}, true)

		s := c.State()
		require.GreaterOrEqual(t, s.Radius, cfg.RadiusLimits.Min)
		require.LessOrEqual(t, s.Radius, cfg.RadiusLimits.Max)
		require.GreaterOrEqual(t, s.Pitch, cfg.PitchLimits.Min)
		require.LessOrEqual(t, s.Pitch, cfg.PitchLimits.Max)
	}
}

func TestTickConverges(t *testing.T) {
	c := newTestController(t)
	target := mgl64.Vec3{1, 0, 2}
	goal := c.TargetPose(target)

	prev := c.Pose().Position.Sub(goal.Position).Len()
	for i := 0; i < 120; i++ {
		c.Tick(1.0/60, target, true)
		dist := c.Pose().Position.Sub(goal.Position).Len()
		require.LessOrEqual(t, dist, prev+1e-9)
		prev = dist
	}
	assert.InDelta(t, 0, prev, 1e-3)
	assert.InDelta(t, 1, math.Abs(c.Pose().Rotation.Dot(goal.Rotation)), 1e-6)
}

func TestTickDoesNotOvershoot(t *testing.T) {
	c := newTestController(t)
	target := mgl64.Vec3{}
	goal := c.TargetPose(target)

	// smoothing * dt is far above 1, so the factor is clamped
	v := c.Tick(10, target, true)
	assert.True(t, v.Position.ApproxEqualThreshold(goal.Position, 1e-9))

	v = c.Tick(10, target, true)
	assert.True(t, v.Position.ApproxEqualThreshold(goal.Position, 1e-9))
}

func TestTickHoldsWithoutTarget(t *testing.T) {
	c := newTestController(t)
	before := c.Pose()

	v := c.Tick(1.0/60, mgl64.Vec3{}, false)
	assert.Equal(t, before.Position, v.Position)
	assert.Equal(t, before.Rotation, v.Rotation)

	v = c.Tick(1.0/60, mgl64.Vec3{math.NaN(), 0, 0}, true)
	assert.Equal(t, before.Position, v.Position)
}

func TestTickSequence(t *testing.T) {
	c := newTestController(t)
	assert.Equal(t, uint64(0), c.View().Seq)
	assert.Equal(t, uint64(1), c.Tick(0.016, mgl64.Vec3{}, true).Seq)
	assert.Equal(t, uint64(2), c.Tick(0.016, mgl64.Vec3{}, false).Seq)
}

func TestTargetPoseGeometry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Yaw = 0
	cfg.Pitch = 0
	cfg.PitchLimits = Limits{Min: -1, Max: 1}
	cfg.Offset = mgl64.Vec3{}
	c, err := NewController(cfg, Pose{})
	require.NoError(t, err)

	p := c.TargetPose(mgl64.Vec3{1, 0, 0})
	assert.True(t, p.Position.ApproxEqualThreshold(mgl64.Vec3{1, 0, 8}, 1e-9))
	assert.True(t, p.Forward().ApproxEqualThreshold(mgl64.Vec3{0, 0, -1}, 1e-9))
}

func TestViewOffsets(t *testing.T) {
	v := View{
		Position: mgl64.Vec3{0, 3, 8},
		Forward:  mgl64.Vec3{0, -0.6, -0.8},
	}
	look := v.LookPoint(10)
	assert.True(t, look.ApproxEqualThreshold(mgl64.Vec3{0, 0, 16}, 1e-9))

	offset := v.ViewerOffset(mgl64.Vec3{0, 1, 0}, 10)
	assert.True(t, offset.ApproxEqualThreshold(mgl64.Vec3{0, 0, 16}, 1e-9))

	fwd, right, ok := v.FlatAxes()
	require.True(t, ok)
	assert.True(t, fwd.ApproxEqualThreshold(mgl64.Vec3{0, 0, -1}, 1e-9))
	assert.True(t, right.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9))

	_, _, ok = View{Forward: mgl64.Vec3{0, -1, 0}}.FlatAxes()
	assert.False(t, ok)
}

func TestLookAt(t *testing.T) {
	eye := mgl64.Vec3{2, 2.5, 5}
	p := LookAt(eye, mgl64.Vec3{})
	want := mgl64.Vec3{}.Sub(eye).Normalize()
	assert.True(t, p.Forward().ApproxEqualThreshold(want, 1e-9))
	assert.Equal(t, eye, p.Position)

	p = LookAt(eye, eye)
	assert.Equal(t, mgl64.QuatIdent(), p.Rotation)
}

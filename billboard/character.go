package billboard

import "github.com/go-gl/mathgl/mgl64"

// AnimatedCharacter is everything the orientation and animation logic needs
// for one billboard character.
type AnimatedCharacter struct {
	// Heading is the world-space facing used to pick the visible side. It is
	// not the movement velocity.
	Heading   mgl64.Vec3
	Direction Direction
	State     AnimationState

	// Animations may be partial. A missing entry freezes the sprite.
	Animations map[Key]*Animation

	// Sprite and Mirrored are the outputs read by the renderer.
	Sprite   int
	Mirrored bool
}

// NewAnimatedCharacter creates an idle, front-facing character with its own
// table from lib. The sprite starts at the (Idle, Down) frame when present.
func NewAnimatedCharacter(lib *Library, heading mgl64.Vec3) *AnimatedCharacter {
	c := &AnimatedCharacter{
		Heading:    heading,
		Direction:  Down,
		State:      Idle,
		Animations: lib.Instantiate(),
	}
	c.publish()
	return c
}

// Animation returns the entry for key.
func (c *AnimatedCharacter) Animation(key Key) (*Animation, bool) {
	if c == nil || c.Animations == nil {
		return nil, false
	}
	a, ok := c.Animations[key]
	return a, ok && a != nil
}

// Current returns the entry for the current state and direction.
func (c *AnimatedCharacter) Current() (*Animation, bool) {
	if c == nil {
		return nil, false
	}
	return c.Animation(Key{State: c.State, Direction: c.Direction})
}

// SetDirection rebinds to the animation for d in the current state, keeping
// the frame index when the new sequence is long enough. The previous entry is
// rewound so coming back to it later starts clean.
func (c *AnimatedCharacter) SetDirection(d Direction) bool {
	if c == nil || c.Direction == d {
		return false
	}

	index := 0
	if prev, ok := c.Current(); ok {
		index = prev.Index()
		prev.Reset()
	}

	c.Direction = d
	if next, ok := c.Current(); ok {
		next.SetIndex(index)
	}
	c.publish()
	return true
}

// SetState switches state. Phase is not carried: the old entry is rewound
// and the new one starts from its first frame.
func (c *AnimatedCharacter) SetState(s AnimationState) bool {
	if c == nil || c.State == s {
		return false
	}
	if prev, ok := c.Current(); ok {
		prev.Reset()
	}
	c.State = s
	if next, ok := c.Current(); ok {
		next.Reset()
	}
	c.publish()
	return true
}

// Advance plays the bound animation for dt seconds. Without a bound entry
// the sprite holds its last value.
func (c *AnimatedCharacter) Advance(dt float64) {
	a, ok := c.Current()
	if !ok {
		return
	}
	a.Advance(dt)
	c.Sprite = a.Sprite()
}

// Rebind replaces the animation table, keeping state and direction. Used
// when a prefab is reloaded.
func (c *AnimatedCharacter) Rebind(lib *Library) {
	if c == nil {
		return
	}
	c.Animations = lib.Instantiate()
	c.publish()
}

func (c *AnimatedCharacter) publish() {
	if a, ok := c.Current(); ok {
		c.Sprite = a.Sprite()
	}
}

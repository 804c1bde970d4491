package billboard

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoFrames     = errors.New("billboard: animation has no frames")
	ErrInvalidSpeed = errors.New("billboard: animation speed must be positive")
)

// Animation steps through a looping sequence of atlas indices.
type Animation struct {
	frames  []int
	index   int
	speed   float64
	elapsed float64
}

// NewAnimation builds an animation showing each frame for speed seconds.
func NewAnimation(frames []int, speed float64) (*Animation, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if !(speed > 0) || math.IsInf(speed, 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSpeed, speed)
	}
	return &Animation{
		frames: append([]int(nil), frames...),
		speed:  speed,
	}, nil
}

// MustAnimation is NewAnimation for tables built in code.
func MustAnimation(frames []int, speed float64) *Animation {
	a, err := NewAnimation(frames, speed)
	if err != nil {
		panic(err)
	}
	return a
}

// Advance adds dt to the frame timer and steps once per whole frame period,
// so a long stall can skip several frames at once.
func (a *Animation) Advance(dt float64) {
	if a == nil || !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	a.elapsed += dt
	if steps := math.Floor(a.elapsed / a.speed); steps > 1 {
		// skip whole loops in one go; the loop below handles the rest
		loops := math.Floor(steps / float64(len(a.frames)))
		a.elapsed -= loops * float64(len(a.frames)) * a.speed
	}
	for a.elapsed >= a.speed {
		a.elapsed -= a.speed
		a.index = (a.index + 1) % len(a.frames)
	}
}

// Reset rewinds to the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.index = 0
	a.elapsed = 0
}

// Sprite returns the atlas index of the current frame.
func (a *Animation) Sprite() int {
	return a.frames[a.index]
}

// Index returns the position in the frame sequence.
func (a *Animation) Index() int {
	return a.index
}

// SetIndex jumps to frame i, or to the first frame when i is out of range.
func (a *Animation) SetIndex(i int) {
	if i < 0 || i >= len(a.frames) {
		i = 0
	}
	a.index = i
}

func (a *Animation) Len() int {
	return len(a.frames)
}

func (a *Animation) Speed() float64 {
	return a.speed
}

// Elapsed returns time accumulated toward the next frame.
func (a *Animation) Elapsed() float64 {
	return a.elapsed
}

// Frames returns a copy of the frame sequence.
func (a *Animation) Frames() []int {
	return append([]int(nil), a.frames...)
}

// Clone returns an independent copy with the same playback position.
func (a *Animation) Clone() *Animation {
	if a == nil {
		return nil
	}
	c := *a
	c.frames = append([]int(nil), a.frames...)
	return &c
}

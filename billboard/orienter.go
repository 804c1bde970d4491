package billboard

import "github.com/go-gl/mathgl/mgl64"

// Orienter keeps a character's visible side in step with the viewer.
type Orienter struct {
	Classifier Classifier

	// When MirrorEnabled, the sprite is flipped horizontally whenever the
	// character shows Mirror. Atlases that only draw one side rely on this.
	Mirror        Direction
	MirrorEnabled bool
}

// DefaultOrienter uses DefaultClassifier and mirrors the Right side.
var DefaultOrienter = Orienter{
	Classifier:    DefaultClassifier,
	Mirror:        Right,
	MirrorEnabled: true,
}

// Update classifies viewerOffset against the character heading and rebinds
// the animation when the side changes. It reports whether the direction
// changed. Calling it again with the same inputs changes nothing.
func (o Orienter) Update(c *AnimatedCharacter, viewerOffset mgl64.Vec3) bool {
	if c == nil {
		return false
	}
	next := o.Classifier.Classify(c.Heading, viewerOffset, c.Direction)
	changed := c.SetDirection(next)
	c.Mirrored = o.MirrorEnabled && c.Direction == o.Mirror
	return changed
}

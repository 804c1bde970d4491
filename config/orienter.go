package config

import (
	"fmt"
	"strings"

	"github.com/milk9111/billboard/billboard"
)

// Orienter builds the side classifier and mirror rule from the character
// settings.
func (c CharacterConfig) Orienter() (billboard.Orienter, error) {
	o := billboard.DefaultOrienter

	side, err := billboard.ParseDirection(c.SideConvention)
	if err != nil || (side != billboard.Left && side != billboard.Right) {
		return o, fmt.Errorf("%w: character.sideConvention %q", ErrInvalid, c.SideConvention)
	}
	o.Classifier = billboard.Classifier{NegativeSide: side}

	if m := strings.TrimSpace(c.Mirror); m == "" || strings.EqualFold(m, "none") {
		o.MirrorEnabled = false
		return o, nil
	}
	mirror, err := billboard.ParseDirection(c.Mirror)
	if err != nil {
		return o, fmt.Errorf("%w: character.mirror %q", ErrInvalid, c.Mirror)
	}
	o.Mirror = mirror
	o.MirrorEnabled = true
	return o, nil
}

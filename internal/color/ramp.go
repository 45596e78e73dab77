package color

import (
	"errors"
	"fmt"
)

// Ramp and ramp set errors.
var (
	ErrRampSetName = errors.New("ramp set name is required")
)

// RampLen is the fixed number of steps in every ramp.
const RampLen = 12

// Ramp is an ordered gradation of exactly 12 absolute colors. By convention a
// light ramp runs lightest to darkest and a dark ramp runs darkest to
// lightest; the ordering is documentation, not something the engine checks.
type Ramp [RampLen]Hsla

// Appearance selects between the light and dark ramps of a set.
type Appearance string

// Supported appearances.
const (
	Light Appearance = "light"
	Dark  Appearance = "dark"
)

// ParseAppearance converts a string to an Appearance.
func ParseAppearance(s string) (Appearance, error) {
	switch s {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return "", fmt.Errorf("unknown appearance %q", s)
	}
}

// Transparency selects between the solid and transparent ramps of a set.
type Transparency string

// Supported transparencies.
const (
	Solid       Transparency = "solid"
	Transparent Transparency = "transparent"
)

// ParseTransparency converts a string to a Transparency.
func ParseTransparency(s string) (Transparency, error) {
	switch s {
	case "solid":
		return Solid, nil
	case "transparent":
		return Transparent, nil
	default:
		return "", fmt.Errorf("unknown transparency %q", s)
	}
}

// RampSet names four related ramps as one semantic unit, covering
// solid/transparent crossed with light/dark. All four roles are always
// present; a set cannot be constructed with a role missing.
type RampSet struct {
	Name             string
	SolidLight       Ramp
	SolidDark        Ramp
	TransparentLight Ramp
	TransparentDark  Ramp
}

// NewRampSet builds a RampSet from its four role ramps.
func NewRampSet(name string, solidLight, solidDark, transparentLight, transparentDark Ramp) (RampSet, error) {
	if name == "" {
		return RampSet{}, ErrRampSetName
	}
	return RampSet{
		Name:             name,
		SolidLight:       solidLight,
		SolidDark:        solidDark,
		TransparentLight: transparentLight,
		TransparentDark:  transparentDark,
	}, nil
}

// Ramp returns the ramp for the given appearance and transparency.
func (s RampSet) Ramp(appearance Appearance, transparency Transparency) (Ramp, error) {
	switch {
	case appearance == Light && transparency == Solid:
		return s.SolidLight, nil
	case appearance == Dark && transparency == Solid:
		return s.SolidDark, nil
	case appearance == Light && transparency == Transparent:
		return s.TransparentLight, nil
	case appearance == Dark && transparency == Transparent:
		return s.TransparentDark, nil
	default:
		return Ramp{}, fmt.Errorf("no ramp for appearance %q, transparency %q", appearance, transparency)
	}
}

package color

import "fmt"

// UnknownRampSetError reports a scale reference naming a ramp set that is not
// present in the effective catalog.
type UnknownRampSetError struct {
	Set string
}

func (e *UnknownRampSetError) Error() string {
	return fmt.Sprintf("unknown ramp set %q", e.Set)
}

// RampIndexError reports a scale reference with an index outside 0-11.
type RampIndexError struct {
	Set   string
	Index int
}

func (e *RampIndexError) Error() string {
	return fmt.Sprintf("ramp index %d out of range [0, %d] for set %q", e.Index, RampLen-1, e.Set)
}

// ReferenceKind discriminates the two kinds of color reference.
type ReferenceKind int

// Reference kinds.
const (
	// KindScale selects a step from a named ramp set, picking the ramp by
	// the theme's appearance and the reference's transparency.
	KindScale ReferenceKind = iota
	// KindStatic holds a literal color that ignores catalog and appearance.
	KindStatic
)

// Reference is a closed variant over the two ways a UI color can be defined:
// a scale reference into a ramp catalog, or a static literal color. Resolution
// sites switch on Kind and must handle both.
type Reference struct {
	kind         ReferenceKind
	set          string
	transparency Transparency
	index        int
	static       Hsla
}

// ScaleRef builds a scale reference. Index validity is checked at resolution
// time against the effective catalog, not here, so authoring errors surface
// with the identifier that used them.
func ScaleRef(set string, transparency Transparency, index int) Reference {
	return Reference{
		kind:         KindScale,
		set:          set,
		transparency: transparency,
		index:        index,
	}
}

// StaticRef builds a static reference holding a literal color.
func StaticRef(c Hsla) Reference {
	return Reference{kind: KindStatic, static: c}
}

// Kind returns the reference kind.
func (r Reference) Kind() ReferenceKind { return r.kind }

// Scale returns the scale fields. Only meaningful when Kind is KindScale.
func (r Reference) Scale() (set string, transparency Transparency, index int) {
	return r.set, r.transparency, r.index
}

// Static returns the literal color. Only meaningful when Kind is KindStatic.
func (r Reference) Static() Hsla { return r.static }

// Resolve computes the absolute color for this reference against a catalog
// and an appearance. Static references return their literal value unchanged.
// Scale references fail with UnknownRampSetError or RampIndexError rather
// than substituting a fallback, so authoring mistakes stay visible.
func (r Reference) Resolve(catalog *Catalog, appearance Appearance) (Hsla, error) {
	switch r.kind {
	case KindStatic:
		return r.static, nil
	case KindScale:
		set, ok := catalog.Get(r.set)
		if !ok {
			return Hsla{}, &UnknownRampSetError{Set: r.set}
		}
		if r.index < 0 || r.index >= RampLen {
			return Hsla{}, &RampIndexError{Set: r.set, Index: r.index}
		}
		ramp, err := set.Ramp(appearance, r.transparency)
		if err != nil {
			return Hsla{}, err
		}
		return ramp[r.index], nil
	default:
		return Hsla{}, fmt.Errorf("unknown reference kind %d", r.kind)
	}
}

// String renders the reference in the set/transparency/index form used by
// theme documents, or the literal tuple for static references.
func (r Reference) String() string {
	if r.kind == KindStatic {
		return r.static.String()
	}
	return fmt.Sprintf("%s/%s/%d", r.set, r.transparency, r.index)
}

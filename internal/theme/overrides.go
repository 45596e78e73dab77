package theme

import (
	"github.com/opencode-ai/palette/internal/color"
	"github.com/opencode-ai/palette/internal/schema"
)

// Overrides is a partial mapping from element identifier to color reference.
// Only listed identifiers deviate from the inherited value; everything else
// falls through to the next precedence tier. Iteration preserves insertion
// order so serialized documents diff cleanly.
type Overrides struct {
	ids  []schema.ID
	refs map[schema.ID]color.Reference
}

// NewOverrides returns an empty override map.
func NewOverrides() *Overrides {
	return &Overrides{refs: make(map[schema.ID]color.Reference)}
}

// Set inserts or replaces the reference for an identifier. A replaced
// identifier keeps its original position.
func (o *Overrides) Set(id schema.ID, ref color.Reference) {
	if _, ok := o.refs[id]; !ok {
		o.ids = append(o.ids, id)
	}
	o.refs[id] = ref
}

// Get returns the override for an identifier, if present. Safe on nil.
func (o *Overrides) Get(id schema.ID) (color.Reference, bool) {
	if o == nil {
		return color.Reference{}, false
	}
	ref, ok := o.refs[id]
	return ref, ok
}

// IDs returns the overridden identifiers in insertion order. Safe on nil.
func (o *Overrides) IDs() []schema.ID {
	if o == nil {
		return nil
	}
	out := make([]schema.ID, len(o.ids))
	copy(out, o.ids)
	return out
}

// Len returns the number of overridden identifiers. Safe on nil.
func (o *Overrides) Len() int {
	if o == nil {
		return 0
	}
	return len(o.ids)
}

// Clone returns an independent copy. Cloning a nil or empty map returns an
// empty, usable map.
func (o *Overrides) Clone() *Overrides {
	out := NewOverrides()
	if o == nil {
		return out
	}
	for _, id := range o.ids {
		out.Set(id, o.refs[id])
	}
	return out
}

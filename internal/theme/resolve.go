package theme

import (
	"errors"
	"fmt"

	"github.com/opencode-ai/palette/internal/color"
	"github.com/opencode-ai/palette/internal/schema"
)

// ErrThemeNotInFamily is returned when a theme is resolved against a family
// it does not belong to.
var ErrThemeNotInFamily = errors.New("theme does not belong to family")

// UnknownIdentifierError reports a reference to an element identifier that is
// not in the schema.
type UnknownIdentifierError struct {
	ID schema.ID
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown element identifier %q", e.ID)
}

// ResolveError reports which element identifier failed to resolve and why.
// Resolution never substitutes a fallback color: a bad reference surfaces
// here with the identifier that authored it.
type ResolveError struct {
	ID  schema.ID
	Err error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %q: %v", e.ID, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// UIColors is the resolution output: one absolute color per schema entry,
// iterated in schema order.
type UIColors struct {
	ids    []schema.ID
	colors map[schema.ID]color.Hsla
}

// Get returns the resolved color for an identifier.
func (u *UIColors) Get(id schema.ID) (color.Hsla, bool) {
	c, ok := u.colors[id]
	return c, ok
}

// IDs returns the identifiers in schema order.
func (u *UIColors) IDs() []schema.ID {
	out := make([]schema.ID, len(u.ids))
	copy(out, u.ids)
	return out
}

// Len returns the number of resolved entries.
func (u *UIColors) Len() int { return len(u.ids) }

// Resolve computes the absolute color of every schema entry for one
// (family, theme) pair. It is a pure function of its inputs: per entry the
// theme override wins over the family override, which wins over the schema
// default, and the winning reference is resolved against the family's
// effective catalog and the theme's appearance. The output holds exactly one
// entry per schema entry, in schema order.
func Resolve(f *Family, t *Theme) (*UIColors, error) {
	if f == nil || t == nil {
		return nil, errors.New("family and theme are required")
	}
	if t.family != f.name {
		return nil, fmt.Errorf("family %q, theme %q: %w", f.name, t.name, ErrThemeNotInFamily)
	}

	catalog := f.EffectiveCatalog()
	out := &UIColors{colors: make(map[schema.ID]color.Hsla, schema.Count())}

	for _, e := range schema.Entries() {
		ref := e.Default
		if r, ok := f.overrides.Get(e.ID); ok {
			ref = r
		}
		if r, ok := t.overrides.Get(e.ID); ok {
			ref = r
		}

		c, err := ref.Resolve(catalog, t.appearance)
		if err != nil {
			return nil, &ResolveError{ID: e.ID, Err: err}
		}
		out.ids = append(out.ids, e.ID)
		out.colors[e.ID] = c
	}
	return out, nil
}

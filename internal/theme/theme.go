// Package theme holds the theme data model and the resolution engine: theme
// families composed of ramp catalogs and override layers, and the computation
// that turns one (family, theme) pair into an absolute color per UI element.
package theme

import (
	"errors"
	"fmt"

	"github.com/opencode-ai/palette/internal/color"
	"github.com/opencode-ai/palette/internal/schema"
)

// Data model errors.
var (
	ErrFamilyName     = errors.New("family name is required")
	ErrThemeName      = errors.New("theme name is required")
	ErrEmptyFamily    = errors.New("family needs at least one theme or a ramp catalog override")
	ErrDuplicateTheme = errors.New("duplicate theme name in family")
	ErrUnknownTheme   = errors.New("theme not found in family")
	ErrSystemFamily   = errors.New("system families cannot be modified")
)

// Provenance records where a family's definition comes from.
type Provenance string

// Provenance values.
const (
	// ProvenanceSystem marks families built from compiled constant data.
	// They are never edited in place; edits go through conversion instead.
	ProvenanceSystem Provenance = "system"
	// ProvenanceUser marks families loaded from, and saved to, editable
	// storage.
	ProvenanceUser Provenance = "user"
)

// Theme is one appearance variant within a family: a name, light or dark
// appearance, and an optional override layer on top of the family. A theme
// never stores resolved colors; resolution is computed on demand so overrides
// have exactly one home.
type Theme struct {
	name       string
	appearance color.Appearance
	overrides  *Overrides
	family     string
}

// NewTheme builds a theme. The family back-reference is attached when the
// theme is handed to NewFamily.
func NewTheme(name string, appearance color.Appearance, overrides *Overrides) (*Theme, error) {
	if name == "" {
		return nil, ErrThemeName
	}
	if appearance != color.Light && appearance != color.Dark {
		return nil, fmt.Errorf("theme %q: unknown appearance %q", name, appearance)
	}
	return &Theme{name: name, appearance: appearance, overrides: overrides.Clone()}, nil
}

// Name returns the theme name.
func (t *Theme) Name() string { return t.name }

// Appearance returns light or dark.
func (t *Theme) Appearance() color.Appearance { return t.appearance }

// FamilyName returns the name of the owning family. The relation is a key,
// not a pointer: the registry owns families and themes never outlive them.
func (t *Theme) FamilyName() string { return t.family }

// Overrides returns a copy of the theme-level override map.
func (t *Theme) Overrides() *Overrides { return t.overrides.Clone() }

// Family is the unit an operator creates, edits, and persists: metadata, an
// optional ramp catalog layered over the default, an optional family-wide
// override map, and an ordered sequence of themes.
type Family struct {
	name       string
	author     string
	metadata   map[string]string
	catalog    *color.Catalog
	overrides  *Overrides
	themes     []*Theme
	provenance Provenance
}

// FamilyConfig carries the fields of a family under construction.
type FamilyConfig struct {
	Name       string
	Author     string
	Metadata   map[string]string
	Catalog    *color.Catalog
	Overrides  *Overrides
	Provenance Provenance
}

// NewFamily builds a family and attaches the given themes to it. A family
// with no themes is only valid when it overrides the ramp catalog; such a
// scales-only family exists to offer a different palette under the default
// schema.
func NewFamily(cfg FamilyConfig, themes ...*Theme) (*Family, error) {
	if cfg.Name == "" {
		return nil, ErrFamilyName
	}
	if cfg.Provenance != ProvenanceSystem && cfg.Provenance != ProvenanceUser {
		return nil, fmt.Errorf("family %q: unknown provenance %q", cfg.Name, cfg.Provenance)
	}
	if len(themes) == 0 && cfg.Catalog.Len() == 0 {
		return nil, fmt.Errorf("family %q: %w", cfg.Name, ErrEmptyFamily)
	}

	f := &Family{
		name:       cfg.Name,
		author:     cfg.Author,
		catalog:    cfg.Catalog.Clone(),
		overrides:  cfg.Overrides.Clone(),
		provenance: cfg.Provenance,
	}
	if len(cfg.Metadata) > 0 {
		f.metadata = make(map[string]string, len(cfg.Metadata))
		for k, v := range cfg.Metadata {
			f.metadata[k] = v
		}
	}

	seen := make(map[string]bool, len(themes))
	for _, t := range themes {
		if t == nil {
			return nil, fmt.Errorf("family %q: nil theme", cfg.Name)
		}
		if seen[t.name] {
			return nil, fmt.Errorf("family %q, theme %q: %w", cfg.Name, t.name, ErrDuplicateTheme)
		}
		seen[t.name] = true
		t.family = cfg.Name
		f.themes = append(f.themes, t)
	}
	return f, nil
}

// Name returns the family name.
func (f *Family) Name() string { return f.name }

// Author returns the family author.
func (f *Family) Author() string { return f.author }

// Provenance returns whether the family is system or user data.
func (f *Family) Provenance() Provenance { return f.provenance }

// Metadata returns a copy of the optional metadata.
func (f *Family) Metadata() map[string]string {
	if f.metadata == nil {
		return nil
	}
	out := make(map[string]string, len(f.metadata))
	for k, v := range f.metadata {
		out[k] = v
	}
	return out
}

// CatalogOverride returns a copy of the family's ramp catalog override, or
// nil when the family tracks the default catalog.
func (f *Family) CatalogOverride() *color.Catalog {
	if f.catalog.Len() == 0 {
		return nil
	}
	return f.catalog.Clone()
}

// EffectiveCatalog returns the default catalog with the family's override
// merged over it, entry by name.
func (f *Family) EffectiveCatalog() *color.Catalog {
	return color.Default().Merge(f.catalog)
}

// Overrides returns a copy of the family-level override map.
func (f *Family) Overrides() *Overrides { return f.overrides.Clone() }

// ThemeNames lists the family's theme names in sequence order.
func (f *Family) ThemeNames() []string {
	out := make([]string, len(f.themes))
	for i, t := range f.themes {
		out[i] = t.name
	}
	return out
}

// Themes returns the family's themes in sequence order.
func (f *Family) Themes() []*Theme {
	out := make([]*Theme, len(f.themes))
	copy(out, f.themes)
	return out
}

// Theme returns the theme with the given name.
func (f *Family) Theme(name string) (*Theme, error) {
	for _, t := range f.themes {
		if t.name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("family %q, theme %q: %w", f.name, name, ErrUnknownTheme)
}

// SetOverride replaces the reference for one identifier in the named theme's
// override map. Only user families can be modified; edits to system families
// must go through conversion.
func (f *Family) SetOverride(themeName string, id schema.ID, ref color.Reference) error {
	if f.provenance == ProvenanceSystem {
		return ErrSystemFamily
	}
	t, err := f.Theme(themeName)
	if err != nil {
		return err
	}
	if _, ok := schema.Lookup(id); !ok {
		return &UnknownIdentifierError{ID: id}
	}
	if t.overrides == nil {
		t.overrides = NewOverrides()
	}
	t.overrides.Set(id, ref)
	return nil
}

// ReplaceOverrides swaps the named theme's entire override map. The registry
// uses this to roll back an in-place edit whose persistence failed.
func (f *Family) ReplaceOverrides(themeName string, o *Overrides) error {
	if f.provenance == ProvenanceSystem {
		return ErrSystemFamily
	}
	t, err := f.Theme(themeName)
	if err != nil {
		return err
	}
	t.overrides = o.Clone()
	return nil
}

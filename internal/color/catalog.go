package color

import "errors"

// Catalog errors.
var (
	ErrDuplicateRampSet = errors.New("ramp set already present in catalog")
)

// Catalog is a named collection of ramp sets. Keys are unique and iteration
// follows insertion order, which display and diffing rely on.
type Catalog struct {
	names []string
	sets  map[string]RampSet
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{sets: make(map[string]RampSet)}
}

// Add inserts a ramp set, keyed by its name.
func (c *Catalog) Add(set RampSet) error {
	if set.Name == "" {
		return ErrRampSetName
	}
	if _, ok := c.sets[set.Name]; ok {
		return ErrDuplicateRampSet
	}
	c.names = append(c.names, set.Name)
	c.sets[set.Name] = set
	return nil
}

// Get returns the ramp set with the given name.
func (c *Catalog) Get(name string) (RampSet, bool) {
	if c == nil {
		return RampSet{}, false
	}
	set, ok := c.sets[name]
	return set, ok
}

// Names returns the ramp set names in insertion order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of ramp sets.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Clone returns an independent copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	out := NewCatalog()
	for _, name := range c.names {
		out.names = append(out.names, name)
		out.sets[name] = c.sets[name]
	}
	return out
}

// Merge layers over on top of c: entries of over shadow entries of c by name,
// keys unique to over are appended after c's in over's order. Neither input
// is modified. A nil over returns a clone of c.
func (c *Catalog) Merge(over *Catalog) *Catalog {
	if over == nil || over.Len() == 0 {
		return c.Clone()
	}
	out := NewCatalog()
	for _, name := range c.names {
		if set, ok := over.sets[name]; ok {
			out.names = append(out.names, name)
			out.sets[name] = set
			continue
		}
		out.names = append(out.names, name)
		out.sets[name] = c.sets[name]
	}
	for _, name := range over.names {
		if _, ok := out.sets[name]; ok {
			continue
		}
		out.names = append(out.names, name)
		out.sets[name] = over.sets[name]
	}
	return out
}

// Equal reports whether both catalogs hold the same ramp sets in the same
// order with identical colors.
func (c *Catalog) Equal(other *Catalog) bool {
	if c.Len() != other.Len() {
		return false
	}
	if c == nil || other == nil {
		return true
	}
	for i, name := range c.names {
		if other.names[i] != name {
			return false
		}
		if c.sets[name] != other.sets[name] {
			return false
		}
	}
	return true
}

// Package registry indexes loaded theme families, tracks the current theme,
// and performs the system-to-user conversion behind edits.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/palette/internal/color"
	"github.com/opencode-ai/palette/internal/logging"
	"github.com/opencode-ai/palette/internal/theme"
)

// Registry errors.
var (
	ErrFamilyExists   = errors.New("family already registered")
	ErrFamilyNotFound = errors.New("family not found")
	ErrNoCurrentTheme = errors.New("no system theme available as current")
)

// Store persists user families. Saving happens outside the registry lock and
// a failed save rolls the in-memory change back, so the registry never holds
// a family that durable storage does not.
type Store interface {
	SaveFamily(f *theme.Family) error
}

// ThemeRef names one (family, theme) pair.
type ThemeRef struct {
	Family string
	Theme  string
}

func (r ThemeRef) String() string {
	return r.Family + "/" + r.Theme
}

// Entry pairs a theme with its owning family in listing results.
type Entry struct {
	Family *theme.Family
	Theme  *theme.Theme
}

// Registry owns the set of loaded theme families for their lifetime and
// hands out read-only views. Many readers may list and resolve concurrently;
// adding a family, mutating one through an edit, or moving the current-theme
// pointer takes the write lock. editMu serializes whole edits, mutation and
// save together, so a failed save rolls back against the state it saw.
type Registry struct {
	mu       sync.RWMutex
	editMu   sync.Mutex
	families map[string]*theme.Family
	current  *ThemeRef
	cache    map[ThemeRef]*theme.UIColors
	store    Store
	logger   zerolog.Logger
}

// New creates a registry. The store may be nil, in which case conversions
// and edits stay in memory only.
func New(store Store) *Registry {
	return &Registry{
		families: make(map[string]*theme.Family),
		cache:    make(map[ThemeRef]*theme.UIColors),
		store:    store,
		logger:   logging.Component("registry"),
	}
}

// Add registers a family. The name must be unique; on collision the registry
// is left unchanged.
func (r *Registry) Add(f *theme.Family) error {
	if f == nil {
		return errors.New("family is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addLocked(f)
}

func (r *Registry) addLocked(f *theme.Family) error {
	if _, ok := r.families[f.Name()]; ok {
		return fmt.Errorf("family %q: %w", f.Name(), ErrFamilyExists)
	}
	r.families[f.Name()] = f
	r.logger.Debug().
		Str("family", f.Name()).
		Str("provenance", string(f.Provenance())).
		Int("themes", len(f.ThemeNames())).
		Msg("family registered")
	return nil
}

// Family returns the family with the given name.
func (r *Registry) Family(name string) (*theme.Family, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.families[name]
	if !ok {
		return nil, fmt.Errorf("family %q: %w", name, ErrFamilyNotFound)
	}
	return f, nil
}

// Families lists all registered families in name order.
func (r *Registry) Families() []*theme.Family {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.familiesLocked()
}

func (r *Registry) familiesLocked() []*theme.Family {
	out := make([]*theme.Family, 0, len(r.families))
	for _, f := range r.families {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}

// Themes lists every (family, theme) pair across all families, families in
// name order and themes in their family's sequence order.
func (r *Registry) Themes() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Entry
	for _, f := range r.familiesLocked() {
		for _, t := range f.Themes() {
			out = append(out, Entry{Family: f, Theme: t})
		}
	}
	return out
}

// ThemesByAppearance lists all themes with the given appearance, ordered
// alphabetically by theme name with ties broken by family name.
func (r *Registry) ThemesByAppearance(appearance color.Appearance) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Entry
	for _, f := range r.familiesLocked() {
		for _, t := range f.Themes() {
			if t.Appearance() == appearance {
				out = append(out, Entry{Family: f, Theme: t})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Theme.Name() != out[j].Theme.Name() {
			return out[i].Theme.Name() < out[j].Theme.Name()
		}
		return out[i].Family.Name() < out[j].Family.Name()
	})
	return out
}

// Current returns the current theme reference: the last value set, or the
// first system family's first light theme when never set.
func (r *Registry) Current() (ThemeRef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current != nil {
		return *r.current, nil
	}
	for _, f := range r.familiesLocked() {
		if f.Provenance() != theme.ProvenanceSystem {
			continue
		}
		for _, t := range f.Themes() {
			if t.Appearance() == color.Light {
				return ThemeRef{Family: f.Name(), Theme: t.Name()}, nil
			}
		}
	}
	return ThemeRef{}, ErrNoCurrentTheme
}

// SetCurrent moves the current-theme pointer. The pair must exist; on error
// the registry is unchanged.
func (r *Registry) SetCurrent(ref ThemeRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.families[ref.Family]
	if !ok {
		return fmt.Errorf("family %q: %w", ref.Family, ErrFamilyNotFound)
	}
	if _, err := f.Theme(ref.Theme); err != nil {
		return err
	}
	r.current = &ref
	r.logger.Info().Str("theme", ref.String()).Msg("current theme set")
	return nil
}

// Resolve computes the UI colors for a (family, theme) pair, serving cached
// results when the pair has been resolved before. The cache is invalidated
// whenever the owning family changes.
func (r *Registry) Resolve(ref ThemeRef) (*theme.UIColors, error) {
	r.mu.RLock()
	if cached, ok := r.cache[ref]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	f, ok := r.families[ref.Family]
	if !ok {
		r.mu.RUnlock()
		return nil, fmt.Errorf("family %q: %w", ref.Family, ErrFamilyNotFound)
	}

	t, err := f.Theme(ref.Theme)
	if err != nil {
		r.mu.RUnlock()
		return nil, err
	}

	// Resolution runs under the read lock: resolvers proceed concurrently
	// with each other while edits, which mutate override maps under the
	// write lock, are excluded. A concurrent caller may compute the same
	// result and the later cache store is harmless.
	resolved, err := theme.Resolve(f, t)
	r.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[ref] = resolved
	r.mu.Unlock()
	return resolved, nil
}

func (r *Registry) invalidateLocked(family string) {
	for ref := range r.cache {
		if ref.Family == family {
			delete(r.cache, ref)
		}
	}
}

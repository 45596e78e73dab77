package registry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/opencode-ai/palette/internal/color"
	"github.com/opencode-ai/palette/internal/schema"
	"github.com/opencode-ai/palette/internal/theme"
)

// EditOptions tune an ApplyEdit call.
type EditOptions struct {
	// Author is recorded on a newly converted family. Empty inherits the
	// source family's author.
	Author string
}

// ApplyEdit changes one element's color reference for a theme. Editing a user
// theme updates its own override map and re-saves the family. Editing a
// system theme converts it: a new user family is built around the source's
// effective state plus the single delta, registered, and saved. The returned
// pair is where the edit landed: the source for user themes, or the new
// family and theme after a conversion.
func (r *Registry) ApplyEdit(ref ThemeRef, id schema.ID, newRef color.Reference, opts EditOptions) (*theme.Family, *theme.Theme, error) {
	if _, ok := schema.Lookup(id); !ok {
		return nil, nil, &theme.UnknownIdentifierError{ID: id}
	}

	r.editMu.Lock()
	defer r.editMu.Unlock()

	r.mu.RLock()
	src, ok := r.families[ref.Family]
	if !ok {
		r.mu.RUnlock()
		return nil, nil, fmt.Errorf("family %q: %w", ref.Family, ErrFamilyNotFound)
	}
	srcTheme, err := src.Theme(ref.Theme)
	if err != nil {
		r.mu.RUnlock()
		return nil, nil, err
	}

	// Confirm the edit's starting point resolves before touching anything.
	// The read lock excludes concurrent writers while the overrides are read.
	_, err = theme.Resolve(src, srcTheme)
	r.mu.RUnlock()
	if err != nil {
		return nil, nil, fmt.Errorf("source theme %s: %w", ref, err)
	}

	if src.Provenance() == theme.ProvenanceUser {
		return r.editInPlace(src, ref, id, newRef)
	}
	return r.convert(src, srcTheme, ref, id, newRef, opts)
}

// editInPlace updates an already-user theme's own override map, rolling the
// change back if persistence fails. The override mutation happens under the
// write lock so concurrent resolvers never observe a map mid-write; the save
// itself only reads the family and runs outside it, with editMu keeping other
// writers away until the save settles.
func (r *Registry) editInPlace(f *theme.Family, ref ThemeRef, id schema.ID, newRef color.Reference) (*theme.Family, *theme.Theme, error) {
	r.mu.Lock()
	t, err := f.Theme(ref.Theme)
	if err != nil {
		r.mu.Unlock()
		return nil, nil, err
	}
	previous := t.Overrides()

	if err := f.SetOverride(ref.Theme, id, newRef); err != nil {
		r.mu.Unlock()
		return nil, nil, err
	}
	r.invalidateLocked(f.Name())
	r.mu.Unlock()

	if r.store != nil {
		if err := r.store.SaveFamily(f); err != nil {
			r.mu.Lock()
			if restoreErr := f.ReplaceOverrides(ref.Theme, previous); restoreErr != nil {
				r.logger.Error().Err(restoreErr).Str("theme", ref.String()).Msg("rollback after failed save also failed")
			}
			r.invalidateLocked(f.Name())
			r.mu.Unlock()
			return nil, nil, fmt.Errorf("save family %q: %w", f.Name(), err)
		}
	}

	r.logger.Info().Str("theme", ref.String()).Str("identifier", string(id)).Msg("theme edited")
	return f, t, nil
}

// convert builds a new user family carrying the source's effective state plus
// the single changed identifier, registers it, and saves it. Only the delta
// is stored: untouched elements keep resolving through the catalog and
// family chain, so the new family keeps tracking default-catalog updates.
func (r *Registry) convert(src *theme.Family, srcTheme *theme.Theme, ref ThemeRef, id schema.ID, newRef color.Reference, opts EditOptions) (*theme.Family, *theme.Theme, error) {
	author := opts.Author
	if author == "" {
		author = src.Author()
	}

	// The catalog override travels only when the source's effective catalog
	// actually differs from the default; otherwise the new family keeps
	// referring to the default catalog by name, stays small on disk, and
	// picks up default-catalog-wide updates.
	var catalog *color.Catalog
	if effective := src.EffectiveCatalog(); !effective.Equal(color.Default()) {
		catalog = effective
	}

	overrides := srcTheme.Overrides()
	overrides.Set(id, newRef)

	newTheme, err := theme.NewTheme(srcTheme.Name(), srcTheme.Appearance(), overrides)
	if err != nil {
		return nil, nil, err
	}

	r.mu.Lock()
	name := r.deriveNameLocked(src.Name())
	newFamily, err := theme.NewFamily(theme.FamilyConfig{
		Name:       name,
		Author:     author,
		Metadata:   src.Metadata(),
		Catalog:    catalog,
		Overrides:  src.Overrides(),
		Provenance: theme.ProvenanceUser,
	}, newTheme)
	if err == nil {
		err = r.addLocked(newFamily)
	}
	r.mu.Unlock()
	if err != nil {
		return nil, nil, err
	}

	// Persist outside the lock; roll the insert back on failure so memory
	// never holds a family that storage does not.
	if r.store != nil {
		if err := r.store.SaveFamily(newFamily); err != nil {
			r.mu.Lock()
			delete(r.families, name)
			r.invalidateLocked(name)
			r.mu.Unlock()
			return nil, nil, fmt.Errorf("save family %q: %w", name, err)
		}
	}

	r.logger.Info().
		Str("source", ref.String()).
		Str("family", name).
		Str("identifier", string(id)).
		Msg("system theme converted to user family")
	return newFamily, newTheme, nil
}

// deriveNameLocked picks a family name not yet registered, starting from
// "<source> (edited)" and falling back to a short unique suffix.
func (r *Registry) deriveNameLocked(source string) string {
	name := source + " (edited)"
	if _, ok := r.families[name]; !ok {
		return name
	}
	for {
		candidate := fmt.Sprintf("%s (edited %s)", source, uuid.New().String()[:8])
		if _, ok := r.families[candidate]; !ok {
			return candidate
		}
	}
}

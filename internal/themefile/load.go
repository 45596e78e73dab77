package themefile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/palette/internal/color"
	"github.com/opencode-ai/palette/internal/schema"
	"github.com/opencode-ai/palette/internal/theme"
)

// UnitError records why one document failed to load. Other units in the same
// directory keep loading.
type UnitError struct {
	Path string
	Err  error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *UnitError) Unwrap() error { return e.Err }

// ParseDocument decodes a theme family document. Unknown fields are rejected
// so typos in hand-authored files fail loudly instead of silently dropping
// tables.
func ParseDocument(data []byte) (*Document, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrMalformedDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &doc, nil
}

// Family converts a parsed document into a validated theme family. Loading is
// atomic: an unknown element identifier, unknown ramp set, or out-of-range
// index rejects the whole unit and nothing is produced. Loaded tables are
// ordered alphabetically by key.
func (d *Document) Family(provenance theme.Provenance) (*theme.Family, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, fmt.Errorf("%w: family name is required", ErrMalformedDocument)
	}

	catalog, err := d.catalog()
	if err != nil {
		return nil, err
	}
	overrides, err := buildOverrides(d.Overrides)
	if err != nil {
		return nil, fmt.Errorf("family overrides: %w", err)
	}

	themes := make([]*theme.Theme, 0, len(d.Themes))
	for _, td := range d.Themes {
		if strings.TrimSpace(td.Name) == "" {
			return nil, fmt.Errorf("%w: theme name is required", ErrMalformedDocument)
		}
		appearance, err := color.ParseAppearance(td.Appearance)
		if err != nil {
			return nil, fmt.Errorf("%w: theme %q: %v", ErrMalformedDocument, td.Name, err)
		}
		themeOverrides, err := buildOverrides(td.Overrides)
		if err != nil {
			return nil, fmt.Errorf("theme %q overrides: %w", td.Name, err)
		}
		t, err := theme.NewTheme(td.Name, appearance, themeOverrides)
		if err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}

	f, err := theme.NewFamily(theme.FamilyConfig{
		Name:       strings.TrimSpace(d.Name),
		Author:     strings.TrimSpace(d.Author),
		Metadata:   d.Metadata,
		Catalog:    catalog,
		Overrides:  overrides,
		Provenance: provenance,
	}, themes...)
	if err != nil {
		return nil, err
	}

	// Family-level overrides are checked directly: a scales-only family has
	// no themes to resolve them through, and a theme override can shadow a
	// broken family reference during resolution.
	effective := f.EffectiveCatalog()
	famOverrides := f.Overrides()
	for _, id := range famOverrides.IDs() {
		ref, _ := famOverrides.Get(id)
		if _, err := ref.Resolve(effective, color.Light); err != nil {
			return nil, fmt.Errorf("family override %q: %w", id, err)
		}
	}

	// Resolving every theme up front surfaces unknown ramp sets and
	// out-of-range indexes now, so the registry never holds a family that
	// cannot resolve.
	for _, t := range f.Themes() {
		if _, err := theme.Resolve(f, t); err != nil {
			return nil, fmt.Errorf("theme %q: %w", t.Name(), err)
		}
	}
	return f, nil
}

func (d *Document) catalog() (*color.Catalog, error) {
	if len(d.RampSets) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(d.RampSets))
	for name := range d.RampSets {
		names = append(names, name)
	}
	sort.Strings(names)

	catalog := color.NewCatalog()
	for _, name := range names {
		set, err := buildRampSet(name, d.RampSets[name])
		if err != nil {
			return nil, err
		}
		if err := catalog.Add(set); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

func buildRampSet(name string, doc RampSetDoc) (color.RampSet, error) {
	ramps := make([]color.Ramp, 4)
	for i, role := range []struct {
		role   string
		colors []ColorDoc
	}{
		{"solid_light", doc.SolidLight},
		{"solid_dark", doc.SolidDark},
		{"transparent_light", doc.TransparentLight},
		{"transparent_dark", doc.TransparentDark},
	} {
		if len(role.colors) != color.RampLen {
			return color.RampSet{}, fmt.Errorf("%w: ramp set %q role %s has %d colors, want %d",
				ErrMalformedDocument, name, role.role, len(role.colors), color.RampLen)
		}
		for j, c := range role.colors {
			ramps[i][j] = c.Color
		}
	}
	return color.NewRampSet(name, ramps[0], ramps[1], ramps[2], ramps[3])
}

func buildOverrides(docs map[string]RefDoc) (*theme.Overrides, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	overrides := theme.NewOverrides()
	for _, id := range ids {
		if _, ok := schema.Lookup(schema.ID(id)); !ok {
			return nil, &theme.UnknownIdentifierError{ID: schema.ID(id)}
		}
		overrides.Set(schema.ID(id), docs[id].Ref)
	}
	return overrides, nil
}

// LoadFile reads one theme family document from disk. The loaded family has
// user provenance.
func LoadFile(path string) (*theme.Family, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file %s: %w", path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parse theme file %s: %w", path, err)
	}
	f, err := doc.Family(theme.ProvenanceUser)
	if err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}
	return f, nil
}

// LoadDir loads every .yaml/.yml document in a directory. A unit that fails
// to load is reported and skipped; the remaining units still load. A missing
// directory is not an error, there are simply no user themes yet.
func LoadDir(dir string) ([]*theme.Family, []*UnitError) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []*UnitError{{Path: dir, Err: err}}
	}

	var families []*theme.Family
	var failures []*UnitError
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		f, err := LoadFile(path)
		if err != nil {
			failures = append(failures, &UnitError{Path: path, Err: err})
			continue
		}
		families = append(families, f)
	}

	sort.Slice(families, func(i, j int) bool {
		return families[i].Name() < families[j].Name()
	})
	return families, failures
}

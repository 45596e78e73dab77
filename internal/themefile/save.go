package themefile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/palette/internal/color"
	"github.com/opencode-ai/palette/internal/theme"
)

// FromFamily builds the persisted document for a family. Only populated
// fields appear: a family without a catalog override gets no ramp_sets key,
// a theme without overrides gets no overrides key.
func FromFamily(f *theme.Family) *Document {
	doc := &Document{
		Name:     f.Name(),
		Author:   f.Author(),
		Metadata: f.Metadata(),
	}

	if catalog := f.CatalogOverride(); catalog != nil {
		doc.RampSets = make(map[string]RampSetDoc, catalog.Len())
		for _, name := range catalog.Names() {
			set, _ := catalog.Get(name)
			doc.RampSets[name] = rampSetDoc(set)
		}
	}

	doc.Overrides = overridesDoc(f.Overrides())

	for _, t := range f.Themes() {
		doc.Themes = append(doc.Themes, ThemeDoc{
			Name:       t.Name(),
			Appearance: string(t.Appearance()),
			Overrides:  overridesDoc(t.Overrides()),
		})
	}
	return doc
}

func rampSetDoc(set color.RampSet) RampSetDoc {
	toDocs := func(ramp color.Ramp) []ColorDoc {
		out := make([]ColorDoc, color.RampLen)
		for i, c := range ramp {
			out[i] = ColorDoc{Color: c}
		}
		return out
	}
	return RampSetDoc{
		SolidLight:       toDocs(set.SolidLight),
		SolidDark:        toDocs(set.SolidDark),
		TransparentLight: toDocs(set.TransparentLight),
		TransparentDark:  toDocs(set.TransparentDark),
	}
}

func overridesDoc(o *theme.Overrides) map[string]RefDoc {
	if o.Len() == 0 {
		return nil
	}
	out := make(map[string]RefDoc, o.Len())
	for _, id := range o.IDs() {
		ref, _ := o.Get(id)
		out[string(id)] = RefDoc{Ref: ref}
	}
	return out
}

// Marshal renders a family document as yaml.
func Marshal(f *theme.Family) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(FromFamily(f)); err != nil {
		return nil, fmt.Errorf("marshal family %q: %w", f.Name(), err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("marshal family %q: %w", f.Name(), err)
	}
	return buf.Bytes(), nil
}

// SaveFile writes a family document, replacing the target atomically so a
// crash never leaves a half-written theme on disk.
func SaveFile(path string, f *theme.Family) error {
	data, err := Marshal(f)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write theme file %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write theme file %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write theme file %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write theme file %s: %w", path, err)
	}
	return nil
}

// Package schema defines the canonical ordered list of themeable UI elements.
// Every element a theme can color is declared exactly once in this package's
// table; adding a themeable element means adding one row there and nothing
// else. Schema entries are compiled constant data and are never edited at
// runtime; themes layer overrides on top of them.
package schema

import (
	"fmt"

	"github.com/opencode-ai/palette/internal/color"
)

// ID is the stable identifier of a themeable UI element.
type ID string

// Entry describes one themeable UI element: its identifier, display name,
// default color reference, and a description of where the color shows up.
type Entry struct {
	ID          ID
	Name        string
	Default     color.Reference
	Description string
}

// Entries returns every schema entry in schema order.
func Entries() []Entry {
	out := make([]Entry, len(table.entries))
	copy(out, table.entries)
	return out
}

// IDs returns every identifier in schema order.
func IDs() []ID {
	out := make([]ID, len(table.entries))
	for i, e := range table.entries {
		out[i] = e.ID
	}
	return out
}

// Lookup returns the entry for an identifier.
func Lookup(id ID) (Entry, bool) {
	i, ok := table.index[id]
	if !ok {
		return Entry{}, false
	}
	return table.entries[i], true
}

// Count returns the number of schema entries.
func Count() int {
	return len(table.entries)
}

type entryTable struct {
	entries []Entry
	index   map[ID]int
}

// build assembles the entry table, refusing duplicate or blank identifiers.
// The table is constant data, so a bad row is a programmer error and panics
// at package initialization.
func build(entries ...Entry) *entryTable {
	t := &entryTable{index: make(map[ID]int, len(entries))}
	for _, e := range entries {
		if e.ID == "" {
			panic("schema: entry with blank identifier")
		}
		if _, ok := t.index[e.ID]; ok {
			panic(fmt.Sprintf("schema: duplicate identifier %q", e.ID))
		}
		t.index[e.ID] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t
}

func entry(id ID, name string, def color.Reference, description string) Entry {
	return Entry{ID: id, Name: name, Default: def, Description: description}
}

func scale(set string, transparency color.Transparency, index int) color.Reference {
	return color.ScaleRef(set, transparency, index)
}

func static(h, s, l, a float64) color.Reference {
	return color.StaticRef(color.New(h, s, l, a))
}

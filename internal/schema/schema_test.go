package schema

import (
	"testing"

	"github.com/opencode-ai/palette/internal/color"
)

func TestEntriesOrderedAndUnique(t *testing.T) {
	entries := Entries()
	if len(entries) < 20 {
		t.Fatalf("expected a realistic schema, got %d entries", len(entries))
	}

	seen := make(map[ID]bool, len(entries))
	for i, e := range entries {
		if e.ID == "" || e.Name == "" || e.Description == "" {
			t.Fatalf("entry %d incomplete: %+v", i, e)
		}
		if seen[e.ID] {
			t.Fatalf("duplicate identifier %q", e.ID)
		}
		seen[e.ID] = true
	}

	ids := IDs()
	if len(ids) != len(entries) {
		t.Fatalf("IDs length %d != entries length %d", len(ids), len(entries))
	}
	for i, id := range ids {
		if entries[i].ID != id {
			t.Fatalf("IDs order diverges from Entries at %d", i)
		}
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(FilledElementBackground)
	if !ok {
		t.Fatalf("expected filled-element-background in schema")
	}
	set, transparency, index := e.Default.Scale()
	if e.Default.Kind() != color.KindScale || set != "gray" || transparency != color.Solid || index != 4 {
		t.Fatalf("unexpected default for filled-element-background: %s", e.Default)
	}

	if _, ok := Lookup("no-such-element"); ok {
		t.Fatalf("expected lookup miss for unknown identifier")
	}
}

func TestDefaultsResolveAgainstDefaultCatalog(t *testing.T) {
	for _, e := range Entries() {
		for _, appearance := range []color.Appearance{color.Light, color.Dark} {
			if _, err := e.Default.Resolve(color.Default(), appearance); err != nil {
				t.Fatalf("default for %s does not resolve (%s): %v", e.ID, appearance, err)
			}
		}
	}
}

func TestBrandIsStatic(t *testing.T) {
	e, ok := Lookup(Brand)
	if !ok {
		t.Fatalf("expected brand in schema")
	}
	if e.Default.Kind() != color.KindStatic {
		t.Fatalf("expected brand default to be a static reference")
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	entries := Entries()
	entries[0].Name = "tampered"
	if fresh := Entries(); fresh[0].Name == "tampered" {
		t.Fatalf("Entries exposed internal table storage")
	}
}

package themefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencode-ai/palette/internal/color"
	"github.com/opencode-ai/palette/internal/schema"
	"github.com/opencode-ai/palette/internal/theme"
)

const sampleDoc = `name: Dusk
author: someone
themes:
  - name: Dusk Dark
    appearance: dark
    overrides:
      text: gray/solid/10
      border: [0.1, 0.2, 0.3, 1]
`

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "dusk.yaml", sampleDoc)

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if f.Name() != "Dusk" || f.Author() != "someone" {
		t.Fatalf("unexpected family identity: %q by %q", f.Name(), f.Author())
	}
	if f.Provenance() != theme.ProvenanceUser {
		t.Fatalf("loaded family must have user provenance")
	}
	if f.CatalogOverride() != nil {
		t.Fatalf("family without ramp_sets must track the default catalog")
	}

	th, err := f.Theme("Dusk Dark")
	if err != nil {
		t.Fatalf("Theme: %v", err)
	}
	if th.Appearance() != color.Dark {
		t.Fatalf("expected dark appearance, got %s", th.Appearance())
	}

	ref, ok := th.Overrides().Get(schema.Text)
	if !ok || ref.Kind() != color.KindScale {
		t.Fatalf("expected scale override for text")
	}
	ref, ok = th.Overrides().Get(schema.Border)
	if !ok || ref.Kind() != color.KindStatic {
		t.Fatalf("expected static override for border")
	}
	if got := ref.Static(); got != color.New(0.1, 0.2, 0.3, 1) {
		t.Fatalf("unexpected border literal %v", got)
	}
}

func TestLoadRejectsUnknownIdentifier(t *testing.T) {
	doc := `name: Broken
themes:
  - name: Light
    appearance: light
    overrides:
      no-such-element: gray/solid/3
`
	path := writeDoc(t, t.TempDir(), "broken.yaml", doc)

	_, err := LoadFile(path)
	var unknownID *theme.UnknownIdentifierError
	if !errors.As(err, &unknownID) {
		t.Fatalf("expected UnknownIdentifierError, got %v", err)
	}
}

func TestLoadRejectsUnknownRampSet(t *testing.T) {
	doc := `name: Broken
themes:
  - name: Light
    appearance: light
    overrides:
      text: magenta/solid/3
`
	path := writeDoc(t, t.TempDir(), "broken.yaml", doc)

	_, err := LoadFile(path)
	var unknownSet *color.UnknownRampSetError
	if !errors.As(err, &unknownSet) {
		t.Fatalf("expected UnknownRampSetError, got %v", err)
	}
}

func TestLoadRejectsIndexOutOfRange(t *testing.T) {
	doc := `name: Broken
themes:
  - name: Light
    appearance: light
    overrides:
      text: gray/solid/12
`
	path := writeDoc(t, t.TempDir(), "broken.yaml", doc)

	_, err := LoadFile(path)
	var indexErr *color.RampIndexError
	if !errors.As(err, &indexErr) {
		t.Fatalf("expected RampIndexError, got %v", err)
	}
}

func TestLoadValidatesFamilyOverrides(t *testing.T) {
	// A scales-only family has no themes, so its override table must be
	// checked on its own.
	doc := scalesOnlyDoc(t) + `overrides:
  text: magenta/solid/3
`
	path := writeDoc(t, t.TempDir(), "scales.yaml", doc)

	_, err := LoadFile(path)
	var unknownSet *color.UnknownRampSetError
	if !errors.As(err, &unknownSet) {
		t.Fatalf("expected UnknownRampSetError, got %v", err)
	}

	// A theme override shadowing the broken family reference must not hide
	// it either.
	doc = `name: Shadowed
overrides:
  text: gray/solid/99
themes:
  - name: Light
    appearance: light
    overrides:
      text: gray/solid/3
`
	path = writeDoc(t, t.TempDir(), "shadowed.yaml", doc)

	_, err = LoadFile(path)
	var indexErr *color.RampIndexError
	if !errors.As(err, &indexErr) {
		t.Fatalf("expected RampIndexError, got %v", err)
	}
}

func TestLoadRejectsShortRamp(t *testing.T) {
	doc := `name: Broken
ramp_sets:
  slate:
    solid_light: [[0, 0, 0.5, 1]]
    solid_dark: [[0, 0, 0.5, 1]]
    transparent_light: [[0, 0, 0.5, 1]]
    transparent_dark: [[0, 0, 0.5, 1]]
`
	path := writeDoc(t, t.TempDir(), "broken.yaml", doc)

	if _, err := LoadFile(path); !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestLoadRejectsEmptyFamily(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "empty.yaml", "name: Nothing\n")

	if _, err := LoadFile(path); !errors.Is(err, theme.ErrEmptyFamily) {
		t.Fatalf("expected ErrEmptyFamily, got %v", err)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	doc := `name: Typo
themse:
  - name: Light
    appearance: light
`
	path := writeDoc(t, t.TempDir(), "typo.yaml", doc)

	if _, err := LoadFile(path); !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument for unknown field, got %v", err)
	}
}

func TestLoadDirSkipsBadUnits(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "good.yaml", sampleDoc)
	writeDoc(t, dir, "bad.yaml", "name: [broken\n")
	writeDoc(t, dir, "notes.txt", "not a theme")

	families, failures := LoadDir(dir)
	if len(families) != 1 || families[0].Name() != "Dusk" {
		t.Fatalf("expected the good unit to load, got %d families", len(families))
	}
	if len(failures) != 1 {
		t.Fatalf("expected one failure, got %d", len(failures))
	}
	if !strings.HasSuffix(failures[0].Path, "bad.yaml") {
		t.Fatalf("unexpected failing unit %s", failures[0].Path)
	}
}

func TestLoadDirMissing(t *testing.T) {
	families, failures := LoadDir(filepath.Join(t.TempDir(), "absent"))
	if families != nil || failures != nil {
		t.Fatalf("missing directory must load as empty, got %d/%d", len(families), len(failures))
	}
}

func TestRoundTripPreservesOmissions(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "dusk.yaml", sampleDoc)
	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	data, err := Marshal(f)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := string(data)

	// Tables that were absent stay absent in the output.
	for _, forbidden := range []string{"ramp_sets:", "metadata:"} {
		if strings.Contains(out, forbidden) {
			t.Fatalf("expected %q to stay omitted, got:\n%s", forbidden, out)
		}
	}
	if !strings.Contains(out, "text: gray/solid/10") {
		t.Fatalf("expected scale reference in output, got:\n%s", out)
	}
	if !strings.Contains(out, "[0.1, 0.2, 0.3, 1]") {
		t.Fatalf("expected flow-style literal in output, got:\n%s", out)
	}

	// And the document still loads to an equivalent family.
	reloaded, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	rf, err := reloaded.Family(theme.ProvenanceUser)
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	a, err := theme.Resolve(f, f.Themes()[0])
	if err != nil {
		t.Fatalf("Resolve original: %v", err)
	}
	b, err := theme.Resolve(rf, rf.Themes()[0])
	if err != nil {
		t.Fatalf("Resolve reloaded: %v", err)
	}
	for _, id := range a.IDs() {
		x, _ := a.Get(id)
		y, _ := b.Get(id)
		if x != y {
			t.Fatalf("round trip changed %s: %v vs %v", id, x, y)
		}
	}
}

func TestRoundTripCatalogOverride(t *testing.T) {
	f, err := LoadFile(writeDoc(t, t.TempDir(), "scales.yaml", scalesOnlyDoc(t)))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if f.CatalogOverride() == nil {
		t.Fatalf("expected catalog override to load")
	}

	data, err := Marshal(f)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "ramp_sets:") {
		t.Fatalf("expected ramp_sets in output:\n%s", data)
	}
	if strings.Contains(string(data), "themes:") {
		t.Fatalf("scales-only family must serialize without a themes key:\n%s", data)
	}
}

func TestDirStoreSaveFamily(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "themes")
	store := NewDirStore(dir)

	f, err := LoadFile(writeDoc(t, t.TempDir(), "dusk.yaml", sampleDoc))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if err := store.SaveFamily(f); err != nil {
		t.Fatalf("SaveFamily: %v", err)
	}

	reloaded, err := LoadFile(filepath.Join(dir, "dusk.yaml"))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Name() != "Dusk" {
		t.Fatalf("unexpected reloaded family %q", reloaded.Name())
	}
}

func TestFilename(t *testing.T) {
	cases := map[string]string{
		"Dusk":             "dusk.yaml",
		"Default (edited)": "default-edited.yaml",
		"One  Two":         "one-two.yaml",
	}
	for in, want := range cases {
		if got := Filename(in); got != want {
			t.Fatalf("Filename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseScaleRef(t *testing.T) {
	ref, err := ParseScaleRef("gray/transparent/7")
	if err != nil {
		t.Fatalf("ParseScaleRef: %v", err)
	}
	set, transparency, index := ref.Scale()
	if set != "gray" || transparency != color.Transparent || index != 7 {
		t.Fatalf("unexpected parse result %s", ref)
	}

	for _, bad := range []string{"gray/solid", "gray/opaque/3", "/solid/3", "gray/solid/x"} {
		if _, err := ParseScaleRef(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

// scalesOnlyDoc builds a family document with one full ramp set and no
// themes.
func scalesOnlyDoc(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("name: Slate Scales\nramp_sets:\n  slate:\n")
	for _, role := range []string{"solid_light", "solid_dark", "transparent_light", "transparent_dark"} {
		b.WriteString("    " + role + ":\n")
		for i := 0; i < color.RampLen; i++ {
			b.WriteString("      - [0.6, 0.1, 0.5, 1]\n")
		}
	}
	return b.String()
}

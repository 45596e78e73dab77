package color

import (
	"reflect"
	"testing"
)

func testSet(t *testing.T, name string, l float64) RampSet {
	t.Helper()
	set, err := NewRampSet(name,
		filledRamp(New(0, 0, l, 1)),
		filledRamp(New(0, 0, 1-l, 1)),
		filledRamp(New(0, 0, l, 0.5)),
		filledRamp(New(0, 0, 1-l, 0.5)),
	)
	if err != nil {
		t.Fatalf("NewRampSet(%s): %v", name, err)
	}
	return set
}

func TestCatalogInsertionOrder(t *testing.T) {
	catalog := NewCatalog()
	for _, name := range []string{"zinc", "amber", "mint"} {
		if err := catalog.Add(testSet(t, name, 0.5)); err != nil {
			t.Fatalf("Add(%s): %v", name, err)
		}
	}

	want := []string{"zinc", "amber", "mint"}
	if got := catalog.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected names %v, got %v", want, got)
	}
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	catalog := NewCatalog()
	if err := catalog.Add(testSet(t, "zinc", 0.5)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := catalog.Add(testSet(t, "zinc", 0.7)); err != ErrDuplicateRampSet {
		t.Fatalf("expected ErrDuplicateRampSet, got %v", err)
	}
}

func TestCatalogMergeShadowsByName(t *testing.T) {
	base := NewCatalog()
	_ = base.Add(testSet(t, "gray", 0.5))
	_ = base.Add(testSet(t, "red", 0.5))

	over := NewCatalog()
	replacement := testSet(t, "gray", 0.9)
	_ = over.Add(replacement)
	_ = over.Add(testSet(t, "violet", 0.4))

	merged := base.Merge(over)

	want := []string{"gray", "red", "violet"}
	if got := merged.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected names %v, got %v", want, got)
	}

	got, ok := merged.Get("gray")
	if !ok || got != replacement {
		t.Fatalf("expected overriding gray set to win")
	}
	if _, ok := merged.Get("red"); !ok {
		t.Fatalf("expected red to fall through from base")
	}
}

func TestCatalogMergeNilOverReturnsClone(t *testing.T) {
	base := NewCatalog()
	_ = base.Add(testSet(t, "gray", 0.5))

	merged := base.Merge(nil)
	if !merged.Equal(base) {
		t.Fatalf("expected merge with nil to equal base")
	}

	// Mutating the merge result must not leak into the base.
	_ = merged.Add(testSet(t, "red", 0.5))
	if base.Len() != 1 {
		t.Fatalf("base catalog mutated through merge result")
	}
}

func TestCatalogEqual(t *testing.T) {
	a := NewCatalog()
	_ = a.Add(testSet(t, "gray", 0.5))
	b := NewCatalog()
	_ = b.Add(testSet(t, "gray", 0.5))

	if !a.Equal(b) {
		t.Fatalf("expected equal catalogs")
	}

	_ = b.Add(testSet(t, "red", 0.5))
	if a.Equal(b) {
		t.Fatalf("expected catalogs with different lengths to differ")
	}

	c := NewCatalog()
	_ = c.Add(testSet(t, "gray", 0.9))
	if a.Equal(c) {
		t.Fatalf("expected catalogs with different colors to differ")
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := Default()
	if got := catalog.Names(); !reflect.DeepEqual(got, DefaultSetNames) {
		t.Fatalf("expected default sets %v, got %v", DefaultSetNames, got)
	}

	gray, ok := catalog.Get("gray")
	if !ok {
		t.Fatalf("expected gray set in default catalog")
	}

	// Light ramps run lightest to darkest, dark ramps the reverse.
	if gray.SolidLight[0].L <= gray.SolidLight[RampLen-1].L {
		t.Fatalf("expected solid-light ramp to descend in lightness")
	}
	if gray.SolidDark[0].L >= gray.SolidDark[RampLen-1].L {
		t.Fatalf("expected solid-dark ramp to ascend in lightness")
	}
	for i := 0; i < RampLen; i++ {
		if a := gray.TransparentLight[i].A; a <= 0 || a >= 1 {
			t.Fatalf("expected transparent ramp alpha in (0, 1), got %g at %d", a, i)
		}
	}
}

func TestDefaultCatalogStable(t *testing.T) {
	if !Default().Equal(Default()) {
		t.Fatalf("expected Default to return identical data")
	}
}

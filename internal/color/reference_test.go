package color

import (
	"errors"
	"testing"
)

func TestStaticReferenceIgnoresCatalog(t *testing.T) {
	literal := New(0.6, 0.2, 0.4, 1)
	ref := StaticRef(literal)

	got, err := ref.Resolve(nil, Light)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != literal {
		t.Fatalf("expected %v, got %v", literal, got)
	}

	// Appearance must not change a static reference either.
	got, err = ref.Resolve(Default(), Dark)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != literal {
		t.Fatalf("expected %v, got %v", literal, got)
	}
}

func TestScaleReferenceSelectsByAppearance(t *testing.T) {
	ref := ScaleRef("gray", Solid, 4)
	gray, _ := Default().Get("gray")

	light, err := ref.Resolve(Default(), Light)
	if err != nil {
		t.Fatalf("Resolve light: %v", err)
	}
	if light != gray.SolidLight[4] {
		t.Fatalf("expected solid-light step 4, got %v", light)
	}

	dark, err := ref.Resolve(Default(), Dark)
	if err != nil {
		t.Fatalf("Resolve dark: %v", err)
	}
	if dark != gray.SolidDark[4] {
		t.Fatalf("expected solid-dark step 4, got %v", dark)
	}
}

func TestScaleReferenceUnknownSet(t *testing.T) {
	ref := ScaleRef("magenta", Solid, 4)
	_, err := ref.Resolve(Default(), Light)

	var unknownSet *UnknownRampSetError
	if !errors.As(err, &unknownSet) {
		t.Fatalf("expected UnknownRampSetError, got %v", err)
	}
	if unknownSet.Set != "magenta" {
		t.Fatalf("expected failing set magenta, got %q", unknownSet.Set)
	}
}

func TestScaleReferenceIndexOutOfRange(t *testing.T) {
	for _, index := range []int{-1, RampLen} {
		ref := ScaleRef("gray", Solid, index)
		_, err := ref.Resolve(Default(), Light)

		var indexErr *RampIndexError
		if !errors.As(err, &indexErr) {
			t.Fatalf("index %d: expected RampIndexError, got %v", index, err)
		}
		if indexErr.Index != index {
			t.Fatalf("expected failing index %d, got %d", index, indexErr.Index)
		}
	}
}

func TestReferenceString(t *testing.T) {
	if got := ScaleRef("gray", Transparent, 7).String(); got != "gray/transparent/7" {
		t.Fatalf("unexpected scale string %q", got)
	}
}

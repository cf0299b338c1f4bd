package text

import (
	"errors"
	"testing"

	"github.com/go-text/typesetting/font"
)

// TestNewFamily_Empty tests that a family needs variants.
func TestNewFamily_Empty(t *testing.T) {
	_, err := NewFamily("empty")
	if !errors.Is(err, ErrNoVariants) {
		t.Fatalf("expected ErrNoVariants, got %v", err)
	}
}

// TestFamily_Resolve tests closest-aspect variant selection.
func TestFamily_Resolve(t *testing.T) {
	reg := NewRegistry()
	fam := reg.Sans()

	tests := []struct {
		name       string
		weight     font.Weight
		italic     bool
		wantWeight font.Weight
		wantItalic bool
	}{
		{"regular", font.WeightNormal, false, font.WeightNormal, false},
		{"bold", font.WeightBold, false, font.WeightBold, false},
		{"italic", font.WeightNormal, true, font.WeightNormal, true},
		{"bold italic", font.WeightBold, true, font.WeightBold, true},
		{"light snaps to regular", font.Weight(100), false, font.WeightNormal, false},
		{"black snaps to bold", font.Weight(900), false, font.WeightBold, false},
		{"medium prefers regular", font.Weight(500), false, font.WeightNormal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := fam.Resolve(tt.weight, tt.italic)
			if v == nil {
				t.Fatal("Resolve returned nil variant")
			}
			if v.Aspect.Weight != tt.wantWeight {
				t.Errorf("weight = %v, want %v", v.Aspect.Weight, tt.wantWeight)
			}
			if v.Italic() != tt.wantItalic {
				t.Errorf("italic = %v, want %v", v.Italic(), tt.wantItalic)
			}
		})
	}
}

// TestFamily_ResolveStyleDominatesWeight tests that an italic request picks
// an italic variant even when an upright variant is closer in weight.
func TestFamily_ResolveStyleDominatesWeight(t *testing.T) {
	reg := NewRegistry()
	v := reg.Sans().Resolve(font.Weight(500), true)
	if !v.Italic() {
		t.Error("italic request resolved to an upright variant")
	}
}

// TestFamily_ResolveUprightOnly tests resolution on a family that has no
// italic variant: the upright one is returned and the caller decides on
// synthetic slanting.
func TestFamily_ResolveUprightOnly(t *testing.T) {
	reg := NewRegistry()
	upright := reg.Sans().Resolve(font.WeightNormal, false)

	fam, err := NewFamily("upright-only", upright)
	if err != nil {
		t.Fatalf("NewFamily: %v", err)
	}

	v := fam.Resolve(font.WeightBold, true)
	if v == nil {
		t.Fatal("Resolve returned nil on a non-empty family")
	}
	if v.Italic() {
		t.Error("upright-only family produced an italic variant")
	}
}

// TestRegistry_Lookup tests case-insensitive lookup and misses.
func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry()

	if reg.Lookup("Sans-Serif") == nil {
		t.Error("lookup should be case-insensitive")
	}
	if reg.Lookup("serif") != reg.Serif() {
		t.Error("serif lookup did not return the serif family")
	}
	if reg.Lookup("monospace") != reg.Mono() {
		t.Error("monospace lookup did not return the mono family")
	}
	if reg.Lookup("no-such-family") != nil {
		t.Error("unknown family should return nil, not a fallback")
	}
}

// TestRegistry_Register tests custom family registration.
func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()
	v := reg.Sans().Resolve(font.WeightNormal, false)

	fam, err := NewFamily("Brand Sans", v)
	if err != nil {
		t.Fatalf("NewFamily: %v", err)
	}
	reg.Register(fam)

	if reg.Lookup("brand sans") != fam {
		t.Error("registered family not found by lookup")
	}
}

// TestRegistry_Defaults tests the built-in families are usable.
func TestRegistry_Defaults(t *testing.T) {
	reg := NewRegistry()

	for _, fam := range []*Family{reg.Sans(), reg.Serif(), reg.Mono()} {
		if fam == nil {
			t.Fatal("built-in family is nil")
		}
		if len(fam.Variants()) != 4 {
			t.Errorf("family %q has %d variants, want 4", fam.Name(), len(fam.Variants()))
		}
	}
	if reg.Default() != reg.Sans() {
		t.Error("default family should be sans")
	}
}

package text

import (
	"math"

	"github.com/go-text/typesetting/font"
)

// Variant couples a Source with the typographic aspect it natively provides.
// Selection between variants happens in Family.Resolve; callers compare the
// requested aspect against the chosen variant's Aspect to decide whether
// synthetic styling (algorithmic emboldening, slant) is still needed.
type Variant struct {
	Source *Source
	Aspect font.Aspect
}

// Italic reports whether the variant natively provides an italic style.
func (v *Variant) Italic() bool {
	return v != nil && v.Aspect.Style == font.StyleItalic
}

// Family is a named, immutable set of font variants.
type Family struct {
	name     string
	variants []*Variant
}

// NewFamily creates a family from the given variants.
// Returns ErrNoVariants when no variant is supplied.
func NewFamily(name string, variants ...*Variant) (*Family, error) {
	if len(variants) == 0 {
		return nil, ErrNoVariants
	}
	vs := make([]*Variant, len(variants))
	copy(vs, variants)
	return &Family{name: name, variants: vs}, nil
}

// Name returns the family name used for registry lookup.
func (f *Family) Name() string { return f.name }

// Variants returns the family's variants in registration order.
func (f *Family) Variants() []*Variant {
	vs := make([]*Variant, len(f.variants))
	copy(vs, f.variants)
	return vs
}

// Resolve returns the variant closest to the requested weight and style.
// Style match dominates weight distance, so an italic request prefers any
// italic variant over a closer-weight upright one. Resolve never fails on a
// valid family; the nearest variant is returned even when the family does
// not natively cover the request.
func (f *Family) Resolve(weight font.Weight, italic bool) *Variant {
	if f == nil || len(f.variants) == 0 {
		return nil
	}
	best := f.variants[0]
	bestCost := aspectCost(best.Aspect, weight, italic)
	for _, v := range f.variants[1:] {
		if c := aspectCost(v.Aspect, weight, italic); c < bestCost {
			best, bestCost = v, c
		}
	}
	return best
}

// aspectCost ranks a candidate aspect against a request. A style mismatch
// outweighs any possible weight distance (weights live in [1, 1000]).
func aspectCost(a font.Aspect, weight font.Weight, italic bool) float64 {
	cost := math.Abs(float64(a.Weight) - float64(weight))
	if (a.Style == font.StyleItalic) != italic {
		cost += 10000
	}
	return cost
}

package textdraw

import (
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/textdraw/text"
)

// TypefaceIndex selects one of the generic typeface families.
type TypefaceIndex int

const (
	// TypefaceDefault leaves the family choice to the registry default.
	TypefaceDefault TypefaceIndex = -1
	// TypefaceSans selects the sans-serif family.
	TypefaceSans TypefaceIndex = 1
	// TypefaceSerif selects the serif family.
	TypefaceSerif TypefaceIndex = 2
	// TypefaceMono selects the monospace family.
	TypefaceMono TypefaceIndex = 3
)

// Style is a bitmask of bold and italic.
type Style int

// Text styles.
const (
	StyleNormal     Style = 0
	StyleBold       Style = 1
	StyleItalic     Style = 2
	StyleBoldItalic Style = StyleBold | StyleItalic
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleBold:
		return "Bold"
	case StyleItalic:
		return "Italic"
	case StyleBoldItalic:
		return "BoldItalic"
	default:
		return "Unknown"
	}
}

const (
	// maxWeight caps explicit font weights.
	maxWeight = 1000

	// italicSkew is the horizontal shear applied when italic is requested
	// but the chosen variant is upright.
	italicSkew = -0.25
)

// resolvedTypeface is the outcome of typeface resolution: the variant to
// shape with plus any synthetic styling the variant cannot provide
// natively.
type resolvedTypeface struct {
	variant  *text.Variant
	fakeBold bool
	skewX    float64
}

// resolveTypeface picks a font variant for the requested styling.
//
// The face source wins in order of specificity: an explicit font source,
// then a family name, then the generic family index. An unknown family
// name falls back to the registry default rather than failing. When an
// explicit weight (>= 0) is given it overrides the bold bit and no
// synthetic styling is applied; otherwise the style bits map to normal or
// bold weight and whatever the variant cannot provide is synthesized.
func resolveTypeface(reg *text.Registry, src *text.Source, family string, index TypefaceIndex, style Style, weight int) resolvedTypeface {
	fam := familyFor(reg, src, family, index)

	if weight >= 0 {
		if weight > maxWeight {
			weight = maxWeight
		}
		italic := style&StyleItalic != 0
		return resolvedTypeface{variant: fam.Resolve(font.Weight(weight), italic)}
	}

	return styleVariantFrom(fam, style)
}

// familyFor translates the typeface inputs into a concrete family.
// An explicit source becomes a one-variant family, so weight and style
// requests it cannot natively satisfy are synthesized against it.
func familyFor(reg *text.Registry, src *text.Source, family string, index TypefaceIndex) *text.Family {
	if src != nil {
		return singleFamily(src.Variant())
	}
	if family != "" {
		if f := reg.Lookup(family); f != nil {
			return f
		}
		Logger().Warn("unknown font family, using default", "family", family)
		return reg.Default()
	}
	switch index {
	case TypefaceSans:
		return reg.Sans()
	case TypefaceSerif:
		return reg.Serif()
	case TypefaceMono:
		return reg.Mono()
	default:
		return reg.Default()
	}
}

// styleVariant restyles an already chosen variant, used when the style
// changes but the typeface stays. The variant keeps shaping the text;
// whatever the new style asks for beyond its native aspect is synthesized.
func styleVariant(reg *text.Registry, v *text.Variant, style Style) resolvedTypeface {
	if v == nil {
		return styleVariantFrom(reg.Default(), style)
	}
	return styleVariantFrom(singleFamily(v), style)
}

// singleFamily wraps one variant as a family of its own.
func singleFamily(v *text.Variant) *text.Family {
	f, err := text.NewFamily(v.Source.Name(), v)
	if err != nil {
		// Unreachable: a variant was supplied.
		panic("textdraw: wrapping variant: " + err.Error())
	}
	return f
}

// styleVariantFrom resolves the style bits against a family and
// synthesizes whatever the best variant lacks.
func styleVariantFrom(fam *text.Family, style Style) resolvedTypeface {
	wantBold := style&StyleBold != 0
	wantItalic := style&StyleItalic != 0

	weight := font.WeightNormal
	if wantBold {
		weight = font.WeightBold
	}
	v := fam.Resolve(weight, wantItalic)
	return synthesize(v, wantBold, wantItalic)
}

// synthesize fills the gap between the requested styling and what the
// variant natively provides.
func synthesize(v *text.Variant, wantBold, wantItalic bool) resolvedTypeface {
	rt := resolvedTypeface{variant: v}
	if v == nil {
		return rt
	}
	if wantBold && v.Aspect.Weight < font.WeightBold {
		rt.fakeBold = true
	}
	if wantItalic && !v.Italic() {
		rt.skewX = italicSkew
	}
	return rt
}

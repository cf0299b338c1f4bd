package textdraw

import "github.com/gogpu/textdraw/text"

// ColorFilter transforms a color just before drawing. Filters compose
// with the paint's alpha; the drawable applies alpha first, then the
// filter.
type ColorFilter interface {
	Filter(c RGBA) RGBA
}

// Shadow describes a drop shadow behind text.
type Shadow struct {
	// Radius is the blur radius. A radius of 0 disables the shadow.
	Radius float64

	// Dx, Dy offset the shadow from the text.
	Dx, Dy float64

	// Color is the shadow color.
	Color RGBA
}

// Empty reports whether the shadow draws nothing.
func (s Shadow) Empty() bool {
	return s.Radius == 0
}

// TextPaint carries everything about how text is drawn short of the text
// itself: color, size, typeface, synthetic styling, spacing, shadow and
// shaping options. Setters return whether the value actually changed, so
// the owning drawable can skip re-measurement when nothing moved.
type TextPaint struct {
	color  RGBA
	alpha  uint8
	filter ColorFilter

	size    float64
	variant *text.Variant

	fakeBold bool
	skewX    float64
	scaleX   float64

	letterSpacing float64
	shadow        Shadow

	features            string
	elegant             bool
	fallbackLineSpacing bool
}

// NewTextPaint creates a paint with full opacity and neutral geometry.
func NewTextPaint() *TextPaint {
	return &TextPaint{alpha: 0xff, scaleX: 1.0}
}

// SetColor sets the text color.
func (p *TextPaint) SetColor(c RGBA) bool {
	if p.color == c {
		return false
	}
	p.color = c
	return true
}

// Color returns the text color before alpha and filtering.
func (p *TextPaint) Color() RGBA { return p.color }

// SetAlpha sets the paint alpha, 0xff being fully opaque.
func (p *TextPaint) SetAlpha(a uint8) bool {
	if p.alpha == a {
		return false
	}
	p.alpha = a
	return true
}

// Alpha returns the paint alpha.
func (p *TextPaint) Alpha() uint8 { return p.alpha }

// SetColorFilter sets the color filter. A nil filter removes filtering.
func (p *TextPaint) SetColorFilter(f ColorFilter) bool {
	if p.filter == f {
		return false
	}
	p.filter = f
	return true
}

// ColorFilter returns the active color filter, or nil.
func (p *TextPaint) ColorFilter() ColorFilter { return p.filter }

// SetSize sets the text size in pixels.
func (p *TextPaint) SetSize(size float64) bool {
	if p.size == size {
		return false
	}
	p.size = size
	return true
}

// Size returns the text size in pixels.
func (p *TextPaint) Size() float64 { return p.size }

// SetTypeface sets the font variant to shape with.
func (p *TextPaint) SetTypeface(v *text.Variant) bool {
	if p.variant == v {
		return false
	}
	p.variant = v
	return true
}

// Typeface returns the font variant.
func (p *TextPaint) Typeface() *text.Variant { return p.variant }

// SetFakeBold turns synthetic emboldening on or off.
func (p *TextPaint) SetFakeBold(b bool) bool {
	if p.fakeBold == b {
		return false
	}
	p.fakeBold = b
	return true
}

// FakeBold reports whether synthetic emboldening is on.
func (p *TextPaint) FakeBold() bool { return p.fakeBold }

// SetSkewX sets the horizontal shear used for synthetic italics.
func (p *TextPaint) SetSkewX(skew float64) bool {
	if p.skewX == skew {
		return false
	}
	p.skewX = skew
	return true
}

// SkewX returns the horizontal shear.
func (p *TextPaint) SkewX() float64 { return p.skewX }

// SetScaleX sets the horizontal scale factor.
func (p *TextPaint) SetScaleX(scale float64) bool {
	if p.scaleX == scale {
		return false
	}
	p.scaleX = scale
	return true
}

// ScaleX returns the horizontal scale factor.
func (p *TextPaint) ScaleX() float64 { return p.scaleX }

// SetLetterSpacing sets extra advance per glyph, in em units.
func (p *TextPaint) SetLetterSpacing(spacing float64) bool {
	if p.letterSpacing == spacing {
		return false
	}
	p.letterSpacing = spacing
	return true
}

// LetterSpacing returns the letter spacing in em units.
func (p *TextPaint) LetterSpacing() float64 { return p.letterSpacing }

// SetShadow sets the drop shadow.
func (p *TextPaint) SetShadow(s Shadow) bool {
	if p.shadow == s {
		return false
	}
	p.shadow = s
	return true
}

// Shadow returns the drop shadow.
func (p *TextPaint) Shadow() Shadow { return p.shadow }

// SetFeatures sets the CSS font-feature-settings string.
func (p *TextPaint) SetFeatures(s string) bool {
	if p.features == s {
		return false
	}
	p.features = s
	return true
}

// Features returns the font feature settings string.
func (p *TextPaint) Features() string { return p.features }

// SetElegant turns elegant vertical metrics on or off.
func (p *TextPaint) SetElegant(b bool) bool {
	if p.elegant == b {
		return false
	}
	p.elegant = b
	return true
}

// Elegant reports whether elegant vertical metrics are on.
func (p *TextPaint) Elegant() bool { return p.elegant }

// SetFallbackLineSpacing controls whether lines may use per-line metrics.
func (p *TextPaint) SetFallbackLineSpacing(b bool) bool {
	if p.fallbackLineSpacing == b {
		return false
	}
	p.fallbackLineSpacing = b
	return true
}

// FallbackLineSpacing reports whether per-line metrics are allowed.
func (p *TextPaint) FallbackLineSpacing() bool { return p.fallbackLineSpacing }

// face returns the shaping face for the paint's typeface and size.
func (p *TextPaint) face() text.Face {
	return text.Face{Variant: p.variant, Size: p.size}
}

// EffectiveColor returns the color actually drawn: the paint color scaled
// by alpha, then run through the color filter when one is set.
func (p *TextPaint) EffectiveColor() RGBA {
	c := p.color
	c.A *= float64(p.alpha) / 255
	if p.filter != nil {
		c = p.filter.Filter(c)
	}
	return c
}

// layoutOptions translates the paint into layout options.
func (p *TextPaint) layoutOptions(align text.Align) text.Options {
	o := text.DefaultOptions()
	o.Align = align
	o.LetterSpacing = p.letterSpacing
	o.ScaleX = p.scaleX
	o.Features = p.features
	o.Elegant = p.elegant
	o.FallbackLineSpacing = p.fallbackLineSpacing
	return o
}

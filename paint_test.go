package textdraw

import "testing"

// TestTextPaint_SetterDedup tests that every setter reports false when
// the value does not change.
func TestTextPaint_SetterDedup(t *testing.T) {
	p := NewTextPaint()

	tests := []struct {
		name string
		set  func() bool
	}{
		{"color", func() bool { return p.SetColor(RGB(1, 0, 0)) }},
		{"alpha", func() bool { return p.SetAlpha(0x80) }},
		{"size", func() bool { return p.SetSize(18) }},
		{"fake bold", func() bool { return p.SetFakeBold(true) }},
		{"skew", func() bool { return p.SetSkewX(-0.25) }},
		{"scale", func() bool { return p.SetScaleX(1.5) }},
		{"letter spacing", func() bool { return p.SetLetterSpacing(0.05) }},
		{"shadow", func() bool { return p.SetShadow(Shadow{Radius: 2, Dx: 1, Dy: 1, Color: Black}) }},
		{"features", func() bool { return p.SetFeatures(`"liga" 0`) }},
		{"elegant", func() bool { return p.SetElegant(true) }},
		{"fallback line spacing", func() bool { return p.SetFallbackLineSpacing(true) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.set() {
				t.Error("first set should report a change")
			}
			if tt.set() {
				t.Error("second identical set should report no change")
			}
		})
	}
}

// TestTextPaint_Defaults tests the neutral starting values.
func TestTextPaint_Defaults(t *testing.T) {
	p := NewTextPaint()

	if p.Alpha() != 0xff {
		t.Errorf("default alpha = %#x, want 0xff", p.Alpha())
	}
	if p.ScaleX() != 1.0 {
		t.Errorf("default scaleX = %g, want 1", p.ScaleX())
	}
	if !p.Shadow().Empty() {
		t.Error("default shadow should be empty")
	}
}

// invertFilter flips a color's RGB channels.
type invertFilter struct{}

func (invertFilter) Filter(c RGBA) RGBA {
	return RGBA{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B, A: c.A}
}

// TestTextPaint_EffectiveColor tests alpha scaling and filter order.
func TestTextPaint_EffectiveColor(t *testing.T) {
	p := NewTextPaint()
	p.SetColor(White)

	if got := p.EffectiveColor(); got != White {
		t.Errorf("opaque unfiltered color = %v, want white", got)
	}

	p.SetAlpha(0)
	if got := p.EffectiveColor(); got.A != 0 {
		t.Errorf("alpha 0 should zero the color alpha, got %g", got.A)
	}

	p.SetAlpha(0xff)
	p.SetColorFilter(invertFilter{})
	got := p.EffectiveColor()
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("inverted white = %v, want black channels", got)
	}
}

// TestShadow_Empty tests the empty-shadow predicate.
func TestShadow_Empty(t *testing.T) {
	if !(Shadow{}).Empty() {
		t.Error("zero shadow should be empty")
	}
	if (Shadow{Radius: 1}).Empty() {
		t.Error("shadow with a radius should not be empty")
	}
	// Offsets without a radius draw nothing.
	if !(Shadow{Dx: 3, Dy: 3}).Empty() {
		t.Error("shadow without a radius should be empty")
	}
}

package textdraw

import (
	"errors"
	"testing"

	"golang.org/x/text/language"

	"github.com/gogpu/textdraw/text"
)

// TestResources_ApplyDimension tests unit conversion.
func TestResources_ApplyDimension(t *testing.T) {
	res := NewResources(WithDensity(2), WithFontScale(1.5))

	tests := []struct {
		name string
		v    float64
		u    Unit
		want float64
	}{
		{"px passes through", 10, UnitPx, 10},
		{"dp scales by density", 10, UnitDp, 20},
		{"sp scales by density and font scale", 10, UnitSp, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := res.ApplyDimension(tt.v, tt.u); got != tt.want {
				t.Errorf("ApplyDimension(%g, %v) = %g, want %g", tt.v, tt.u, got, tt.want)
			}
		})
	}
}

// TestResources_Defaults tests the unconfigured state.
func TestResources_Defaults(t *testing.T) {
	res := NewResources()

	if res.Density() != 1 || res.FontScale() != 1 {
		t.Errorf("default scales = %g, %g, want 1, 1", res.Density(), res.FontScale())
	}
	if res.Fonts() == nil {
		t.Fatal("default resources should carry a font registry")
	}
	if res.Fonts().Default() == nil {
		t.Error("font registry should have a default family")
	}
}

// TestResources_Options tests that invalid option values are ignored.
func TestResources_Options(t *testing.T) {
	res := NewResources(WithDensity(-1), WithFontScale(0))
	if res.Density() != 1 || res.FontScale() != 1 {
		t.Errorf("invalid options should keep defaults, got %g, %g",
			res.Density(), res.FontScale())
	}

	res = NewResources(WithLocale(language.Turkish))
	if res.Locale() != language.Turkish {
		t.Errorf("locale = %v, want Turkish", res.Locale())
	}
}

// TestResources_Lookups tests register and lookup round trips plus the
// missing-resource error.
func TestResources_Lookups(t *testing.T) {
	res := NewResources()

	list := NewColorList(White)
	res.RegisterColorList("hint", list)
	got, err := res.ColorList("hint")
	if err != nil {
		t.Fatalf("ColorList: %v", err)
	}
	if got != list {
		t.Error("ColorList returned a different list")
	}

	src := res.Fonts().Sans().Variants()[0].Source
	res.RegisterFont("brand", src)
	if _, err := res.Font("brand"); err != nil {
		t.Fatalf("Font: %v", err)
	}

	app := NewAttrs().Set(AppearanceTextSize, FloatValue(20))
	res.RegisterAppearance("title", app)
	if _, err := res.Appearance("title"); err != nil {
		t.Fatalf("Appearance: %v", err)
	}

	for _, lookup := range []func() error{
		func() error { _, err := res.ColorList("nope"); return err },
		func() error { _, err := res.Font("nope"); return err },
		func() error { _, err := res.Appearance("nope"); return err },
	} {
		if err := lookup(); !errors.Is(err, ErrMissingResource) {
			t.Errorf("missing lookup error = %v, want ErrMissingResource", err)
		}
	}
}

// TestResources_CustomRegistry tests wiring in a custom font registry.
func TestResources_CustomRegistry(t *testing.T) {
	reg := text.NewRegistry()
	res := NewResources(WithFontRegistry(reg))
	if res.Fonts() != reg {
		t.Error("custom registry was not used")
	}
}

package textdraw

import (
	"math"
	"testing"
)

// TestHex tests hex color parsing in all supported formats.
func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"short rgb", "#f00", RGBA{1, 0, 0, 1}},
		{"short rgba", "#f008", RGBA{1, 0, 0, 136.0 / 255}},
		{"long rgb", "#ff8000", RGBA{1, 128.0 / 255, 0, 1}},
		{"long rgba", "#ff800080", RGBA{1, 128.0 / 255, 0, 128.0 / 255}},
		{"no hash", "00ff00", RGBA{0, 1, 0, 1}},
		{"uppercase", "#FF0000", RGBA{1, 0, 0, 1}},
		{"bad length", "#ff000", RGBA{0, 0, 0, 1}},
		{"empty", "", RGBA{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !colorsClose(got, tt.want) {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

// TestFromColor tests round-tripping through the standard color package.
func TestFromColor(t *testing.T) {
	orig := RGB(0.5, 0.25, 0.75)
	back := FromColor(orig.Color())

	if !colorsClose(orig, back) {
		t.Errorf("round trip changed color: %v -> %v", orig, back)
	}
}

func colorsClose(a, b RGBA) bool {
	const eps = 0.01
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

package text

import (
	"testing"

	ot "github.com/go-text/typesetting/font/opentype"
)

// TestParseFeatures tests the CSS font-feature-settings grammar.
func TestParseFeatures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []struct {
			tag   string
			value uint32
		}
	}{
		{"empty", "", nil},
		{"single", `"liga"`, []struct {
			tag   string
			value uint32
		}{{"liga", 1}}},
		{"unquoted", `liga`, []struct {
			tag   string
			value uint32
		}{{"liga", 1}}},
		{"off", `"liga" off`, []struct {
			tag   string
			value uint32
		}{{"liga", 0}}},
		{"on", `"smcp" on`, []struct {
			tag   string
			value uint32
		}{{"smcp", 1}}},
		{"numeric", `"salt" 2`, []struct {
			tag   string
			value uint32
		}{{"salt", 2}}},
		{"multiple", `"liga" 0, "tnum"`, []struct {
			tag   string
			value uint32
		}{{"liga", 0}, {"tnum", 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFeatures(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d features, want %d", len(got), len(tt.want))
			}
			for i, w := range tt.want {
				if got[i].Tag != ot.MustNewTag(w.tag) {
					t.Errorf("feature %d tag = %v, want %q", i, got[i].Tag, w.tag)
				}
				if got[i].Value != w.value {
					t.Errorf("feature %d value = %d, want %d", i, got[i].Value, w.value)
				}
			}
		})
	}
}

// TestParseFeatures_Malformed tests that bad entries are skipped, not fatal.
func TestParseFeatures_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int // surviving feature count
	}{
		{"bad tag length", `"lig"`, 0},
		{"bad value", `"liga" maybe`, 0},
		{"too many fields", `"liga" 1 2`, 0},
		{"mixed", `"lig", "liga", "x" y z`, 1},
		{"only commas", ",,,", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFeatures(tt.input); len(got) != tt.want {
				t.Errorf("got %d features, want %d", len(got), tt.want)
			}
		})
	}
}

package text

import (
	"errors"
	"testing"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
)

// TestNewSource_Empty tests that empty font data is rejected.
func TestNewSource_Empty(t *testing.T) {
	_, err := NewSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Fatalf("expected ErrEmptyFontData, got %v", err)
	}
}

// TestNewSource_Garbage tests that unparseable data is rejected.
func TestNewSource_Garbage(t *testing.T) {
	_, err := NewSource([]byte("this is not a font"))
	if err == nil {
		t.Fatal("expected error for garbage font data")
	}
}

// TestNewSource_Valid tests parsing a real font.
func TestNewSource_Valid(t *testing.T) {
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to parse goregular: %v", err)
	}
	if src.Font() == nil {
		t.Error("parsed source has nil font")
	}
	if src.Name() == "" {
		t.Error("parsed source has empty family name")
	}
}

// TestNewSourceFromFile_Missing tests the error path for a missing file.
func TestNewSourceFromFile_Missing(t *testing.T) {
	_, err := NewSourceFromFile("testdata/does-not-exist.ttf")
	if err == nil {
		t.Fatal("expected error for missing font file")
	}
}

// TestSource_Variant tests wrapping a source in a variant.
func TestSource_Variant(t *testing.T) {
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to parse goregular: %v", err)
	}

	v := src.Variant()
	if v.Source != src {
		t.Error("variant does not reference its source")
	}
	if v.Aspect != src.Aspect() {
		t.Error("variant aspect differs from source aspect")
	}
}

// TestSource_CopyPanics tests the copy protection.
func TestSource_CopyPanics(t *testing.T) {
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to parse goregular: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic when using a copied Source")
		}
	}()
	copied := *src
	_ = copied.Font()
}

// TestVariant_Italic tests the italic aspect check.
func TestVariant_Italic(t *testing.T) {
	upright := &Variant{Aspect: font.Aspect{Style: font.StyleNormal}}
	italic := &Variant{Aspect: font.Aspect{Style: font.StyleItalic}}

	if upright.Italic() {
		t.Error("upright variant reported italic")
	}
	if !italic.Italic() {
		t.Error("italic variant reported upright")
	}
}

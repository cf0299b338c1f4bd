package text

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
)

// Source represents a parsed font file.
// One Source can back any number of Face values at different sizes.
// Source is heavyweight and should be shared across the application.
//
// Source is read-only after creation and safe for concurrent use.
// Source must not be copied after creation (enforced by copyCheck).
type Source struct {
	// addr is used for copy protection. It must point to the Source itself.
	addr *Source

	font   *font.Font
	name   string
	aspect font.Aspect
}

// NewSource parses font data (TTF or OTF) into a Source.
// The typographic aspect (weight, style) is read from the font's own
// description, so a Source knows what it natively provides.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parsing font: %w", err)
	}

	desc := face.Describe()

	s := &Source{
		font:   face.Font,
		name:   desc.Family,
		aspect: desc.Aspect,
	}
	s.addr = s
	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string) (*Source, error) {
	// #nosec G304 -- the font file path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: reading font file: %w", err)
	}
	return NewSource(data)
}

// Name returns the font's family name as declared by the font itself.
func (s *Source) Name() string {
	s.copyCheck()
	return s.name
}

// Aspect returns the weight and style the font natively provides.
func (s *Source) Aspect() font.Aspect {
	s.copyCheck()
	return s.aspect
}

// Font returns the parsed go-text font. The returned *font.Font is
// read-only and safe for concurrent use; per-shaping font.Face values
// are created from it on demand.
func (s *Source) Font() *font.Font {
	s.copyCheck()
	return s.font
}

// Variant wraps the Source in a Variant carrying its native aspect.
// Use this when a font resource is attached directly instead of being
// selected out of a Family.
func (s *Source) Variant() *Variant {
	s.copyCheck()
	return &Variant{Source: s, Aspect: s.aspect}
}

func (s *Source) copyCheck() {
	if s.addr != s {
		panic("text: illegal use of a copied Source; Sources must be shared by pointer")
	}
}

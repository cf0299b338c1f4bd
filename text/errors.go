package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoVariants is returned when a family is created without variants.
	ErrNoVariants = errors.New("text: family needs at least one variant")
)

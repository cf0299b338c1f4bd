package text

// Face pairs a font variant with a concrete pixel size.
// Face is a small value type; creating one is free and it carries no
// per-size caches of its own.
type Face struct {
	// Variant is the font to shape with.
	Variant *Variant

	// Size is the text size in device pixels.
	Size float64
}

// Valid reports whether the face can be used for shaping.
func (f Face) Valid() bool {
	return f.Variant != nil && f.Variant.Source != nil && f.Size > 0
}

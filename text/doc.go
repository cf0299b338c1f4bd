// Package text is the shaping and layout engine behind textdraw.
//
// The package answers one question for the drawable core: given a string,
// a font face and a set of shape-affecting attributes, what glyphs go where
// and how much space do they need. It is deliberately narrow:
//
//   - Source: a parsed font file (TTF/OTF), heavyweight and shared
//   - Variant: a Source together with the typographic aspect it natively
//     provides (weight, italic)
//   - Family: a named set of Variants with closest-aspect selection
//   - Registry: the family table, seeded with built-in sans, serif and
//     monospace families
//   - Face: a Variant at a concrete pixel size
//   - LayoutText / DesiredWidth: the measurement entry points
//
// Shaping is delegated to go-text/typesetting's HarfBuzz implementation.
// The package performs no rasterization and holds no pixels; a Layout is
// pure geometry that a canvas implementation consumes.
//
// # Example
//
//	reg := text.NewRegistry()
//	fam := reg.Serif()
//	face := text.Face{Variant: fam.Resolve(font.WeightNormal, false), Size: 16}
//	layout := text.LayoutText("Hello", face, text.DefaultOptions())
//	fmt.Println(layout.Width, layout.Height)
package text

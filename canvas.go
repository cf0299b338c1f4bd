package textdraw

import "github.com/gogpu/textdraw/text"

// Canvas is the drawing surface a TextDrawable renders to. The drawable
// owns geometry (layout, bounds, translation); the canvas owns pixels.
// Implementations decide how glyphs become output: a rasterizer, a PDF
// writer, or a recorder in tests.
type Canvas interface {
	// Save pushes the current transform state and returns a cookie for
	// RestoreTo.
	Save() int

	// RestoreTo pops transform state back to the given cookie.
	RestoreTo(cookie int)

	// Translate moves the origin by (dx, dy).
	Translate(dx, dy float64)

	// DrawLayout renders a laid-out block of text at the current origin
	// using the paint's color, shadow and synthetic styling.
	DrawLayout(layout *text.Layout, paint *TextPaint)

	// DrawTextOnPath renders the string along the path. Layout along a
	// path is the canvas's job; the drawable only supplies the inputs.
	DrawTextOnPath(s string, path *Path, paint *TextPaint)
}

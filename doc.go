// Package textdraw draws styled blocks of text as drawables: self-measuring
// units that render into a bounds rectangle on a Canvas.
//
// A TextDrawable is built from attribute sets. A style (the Attr namespace)
// may reference a named text appearance (the Appearance namespace) held in a
// Resources table; appearance attributes apply first and the style's own
// attributes override them. The resolved style drives a TextPaint carrying
// color, size, typeface, synthetic bold and italic, spacing, shadow and
// shaping options.
//
// The drawable measures itself: text is shaped and laid out by the text
// subpackage at its desired width, the result is cached, and the intrinsic
// size reported from it. Setters that affect layout re-measure; all changes
// funnel into the OnInvalidate hook so an owner can schedule a repaint.
//
// Colors can be stateful. A ColorList maps UI state bits (pressed, focused,
// selected and so on) to colors, and SetState re-resolves the paint color,
// reporting whether anything visible changed.
//
// Rendering is delegated: Canvas is an interface, and textdraw itself never
// touches pixels. Any rasterizer, recorder or document writer can implement
// it.
package textdraw

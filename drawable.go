package textdraw

import (
	"image"
	"math"

	"golang.org/x/text/cases"

	"github.com/gogpu/textdraw/text"
)

// Opacity classifies how a drawable covers the pixels inside its bounds.
type Opacity int

const (
	// OpacityTransparent means nothing is drawn.
	OpacityTransparent Opacity = iota
	// OpacityTranslucent means some pixels may be partially covered.
	// Antialiased text is always translucent at its edges.
	OpacityTranslucent
	// OpacityOpaque means every pixel inside the bounds is covered.
	OpacityOpaque
)

// Drawable is something that renders into a bounds rectangle on a canvas
// and reports its intrinsic size. TextDrawable is the one implementation
// here; the interface exists so containers can hold mixed drawables.
type Drawable interface {
	// Draw renders the drawable into its bounds on the canvas.
	Draw(c Canvas)

	// SetBounds tells the drawable where and how big to draw.
	SetBounds(r image.Rectangle)

	// Bounds returns the current bounds.
	Bounds() image.Rectangle

	// SetState sets the drawable's UI states and reports whether its
	// appearance changed as a result.
	SetState(states StateSet) bool

	// State returns the current states.
	State() StateSet

	// IsStateful reports whether SetState can ever change appearance.
	IsStateful() bool

	// IntrinsicWidth returns the drawable's natural width, or -1 when it
	// has none.
	IntrinsicWidth() int

	// IntrinsicHeight returns the drawable's natural height, or -1 when
	// it has none.
	IntrinsicHeight() int

	// SetAlpha sets the overall alpha, 0xff being fully opaque.
	SetAlpha(a uint8)

	// SetColorFilter sets a color filter applied at draw time.
	SetColorFilter(f ColorFilter)

	// Opacity reports how the drawable covers its bounds.
	Opacity() Opacity
}

// TextDrawable draws a styled block of text. Construct one with style
// attributes, give it bounds, and draw it to a canvas; it measures its
// own intrinsic size from the laid-out text and re-measures whenever a
// setter changes something the layout depends on.
//
// TextDrawable is not safe for concurrent use.
type TextDrawable struct {
	paint *TextPaint
	res   *Resources

	textColors *ColorList
	hintColors *ColorList
	linkColors *ColorList
	state      StateSet

	rawText string
	text    string // display text, after case transformation
	allCaps bool

	align text.Align
	path  *Path

	layout     *text.Layout
	textBounds image.Rectangle
	bounds     image.Rectangle

	// OnInvalidate is called whenever the drawable needs to be redrawn.
	// Containers hook this to schedule a repaint. The callback must not
	// call back into the drawable's setters.
	OnInvalidate func()
}

var _ Drawable = (*TextDrawable)(nil)

// NewTextDrawable creates a text drawable from style attributes.
//
// When the style references a text appearance by name, the appearance's
// attributes are read first and the style's own attributes override them.
// A missing appearance name is logged and skipped rather than failing
// construction.
func NewTextDrawable(opts ...Option) *TextDrawable {
	c := newConfig(opts)

	d := &TextDrawable{
		paint: NewTextPaint(),
		res:   c.resources,
	}

	appearance := c.appearance
	if name, ok := styleString(c.style, AttrTextAppearance); ok {
		a, err := d.res.Appearance(name)
		if err != nil {
			Logger().Warn("text appearance not found", "name", name, "error", err)
		} else {
			appearance = a
		}
	}

	if s, ok := styleString(c.style, AttrText); ok {
		d.rawText = s
		d.text = s
	}

	d.applyStyle(resolveStyle(d.res, appearance, c.style))
	return d
}

func styleString(style *Attrs, attr Attr) (string, bool) {
	v, ok := style.Get(attr)
	if !ok {
		return "", false
	}
	return v.Str()
}

// Text returns the raw text, before any case transformation.
func (d *TextDrawable) Text() string { return d.rawText }

// SetText replaces the text and re-measures.
func (d *TextDrawable) SetText(s string) {
	d.rawText = s
	d.text = d.displayText()
	d.measureContent()
}

// SetAllCaps controls locale-aware upper-casing of the display text.
func (d *TextDrawable) SetAllCaps(b bool) {
	if d.allCaps == b {
		return
	}
	d.setAllCaps(b)
	d.measureContent()
}

func (d *TextDrawable) setAllCaps(b bool) {
	d.allCaps = b
	d.text = d.displayText()
}

// displayText derives the drawn text from the raw text. The raw text is
// kept so turning all-caps off restores the original casing.
func (d *TextDrawable) displayText() string {
	if !d.allCaps {
		return d.rawText
	}
	return cases.Upper(d.res.Locale()).String(d.rawText)
}

// SetTextSize sets the text size in the given unit and re-measures when
// the resulting pixel size differs.
func (d *TextDrawable) SetTextSize(v float64, u Unit) {
	if d.paint.SetSize(d.res.ApplyDimension(v, u)) {
		d.measureContent()
	}
}

// SetAlign sets the horizontal alignment of lines within the measured
// width.
func (d *TextDrawable) SetAlign(a text.Align) {
	if d.align == a {
		return
	}
	d.align = a
	d.measureContent()
}

// Align returns the horizontal alignment.
func (d *TextDrawable) Align() text.Align { return d.align }

// SetTypeface sets the font variant directly, clearing any synthetic
// styling left over from style resolution.
func (d *TextDrawable) SetTypeface(v *text.Variant) {
	changed := d.paint.SetTypeface(v)
	changed = d.paint.SetFakeBold(false) || changed
	changed = d.paint.SetSkewX(0) || changed
	if changed {
		d.measureContent()
	}
}

// SetTypefaceStyle restyles the current typeface with the given style
// bits, synthesizing whatever the current font cannot provide natively.
func (d *TextDrawable) SetTypefaceStyle(style Style) {
	rt := styleVariant(d.res.Fonts(), d.paint.Typeface(), style)
	changed := d.paint.SetTypeface(rt.variant)
	changed = d.paint.SetFakeBold(rt.fakeBold) || changed
	changed = d.paint.SetSkewX(rt.skewX) || changed
	if changed {
		d.measureContent()
	}
}

// SetTextAppearance applies a named text appearance on top of the current
// styling. Attributes the appearance does not set are left alone.
func (d *TextDrawable) SetTextAppearance(name string) error {
	a, err := d.res.Appearance(name)
	if err != nil {
		return err
	}
	sa := newStyleAttributes()
	readTextAppearance(a, sa, d.res, false)
	d.applyStyle(sa)
	return nil
}

// SetTextColor sets a single text color for all states.
func (d *TextDrawable) SetTextColor(c RGBA) {
	d.SetTextColorList(NewColorList(c))
}

// SetTextColorList sets a stateful text color.
func (d *TextDrawable) SetTextColorList(l *ColorList) {
	d.textColors = l
	if d.updateTextColors() {
		d.invalidateSelf()
	}
}

// TextColors returns the stateful text color.
func (d *TextDrawable) TextColors() *ColorList { return d.textColors }

// HintColors returns the stateful hint color carried by the style.
// The drawable stores it for its owner; it never affects drawing here.
func (d *TextDrawable) HintColors() *ColorList { return d.hintColors }

// LinkColors returns the stateful link color carried by the style.
// Like HintColors, it is stored for the owner and never drawn directly.
func (d *TextDrawable) LinkColors() *ColorList { return d.linkColors }

// SetTextPath makes the text follow a path instead of a block layout.
// In path mode the drawable has no intrinsic size; layout along the path
// happens in the canvas at draw time. Pass nil to return to block layout.
func (d *TextDrawable) SetTextPath(p *Path) {
	if d.path == p {
		return
	}
	d.path = p
	d.measureContent()
}

// TextPath returns the path the text follows, or nil in block layout.
func (d *TextDrawable) TextPath() *Path { return d.path }

// SetLetterSpacing sets extra advance per glyph in em units. The change
// shows at the next draw; the measured size is not updated until
// something else triggers a re-measure.
func (d *TextDrawable) SetLetterSpacing(spacing float64) {
	if d.paint.SetLetterSpacing(spacing) {
		d.invalidateSelf()
	}
}

// SetFontFeatureSettings sets the CSS font-feature-settings string.
// Like SetLetterSpacing, the measured size is not updated.
func (d *TextDrawable) SetFontFeatureSettings(s string) {
	if d.paint.SetFeatures(s) {
		d.invalidateSelf()
	}
}

// SetElegantTextHeight toggles elegant vertical metrics.
// Like SetLetterSpacing, the measured size is not updated.
func (d *TextDrawable) SetElegantTextHeight(b bool) {
	if d.paint.SetElegant(b) {
		d.invalidateSelf()
	}
}

// SetFallbackLineSpacing controls whether lines may use per-line metrics.
// Like SetLetterSpacing, the measured size is not updated.
func (d *TextDrawable) SetFallbackLineSpacing(b bool) {
	if d.paint.SetFallbackLineSpacing(b) {
		d.invalidateSelf()
	}
}

// SetTextScaleX sets the horizontal scale factor and re-measures.
func (d *TextDrawable) SetTextScaleX(scale float64) {
	if d.paint.SetScaleX(scale) {
		d.measureContent()
	}
}

// SetShadow sets the drop shadow and re-measures. The shadow never moves
// the layout geometry, but the measurement keeps the same update path as
// every other paint change.
func (d *TextDrawable) SetShadow(s Shadow) {
	if d.paint.SetShadow(s) {
		d.measureContent()
	}
}

// Paint returns the drawable's paint. Mutating it directly bypasses
// re-measurement; prefer the drawable's setters.
func (d *TextDrawable) Paint() *TextPaint { return d.paint }

// Layout returns the measured text layout, or nil in path mode.
func (d *TextDrawable) Layout() *text.Layout { return d.layout }

// Draw renders the text into the drawable's bounds.
func (d *TextDrawable) Draw(c Canvas) {
	cookie := c.Save()
	c.Translate(float64(d.bounds.Min.X), float64(d.bounds.Min.Y))
	if d.path != nil {
		c.DrawTextOnPath(d.text, d.path, d.paint)
	} else if d.layout != nil {
		c.DrawLayout(d.layout, d.paint)
	}
	c.RestoreTo(cookie)
}

// SetBounds tells the drawable where to draw.
func (d *TextDrawable) SetBounds(r image.Rectangle) {
	if d.bounds == r {
		return
	}
	d.bounds = r
	d.invalidateSelf()
}

// Bounds returns the drawing bounds.
func (d *TextDrawable) Bounds() image.Rectangle { return d.bounds }

// SetState sets the drawable's UI states and reports whether the text
// color changed as a result.
func (d *TextDrawable) SetState(states StateSet) bool {
	if d.state == states {
		return false
	}
	d.state = states
	changed := d.updateTextColors()
	if changed {
		d.invalidateSelf()
	}
	return changed
}

// State returns the current UI states.
func (d *TextDrawable) State() StateSet { return d.state }

// IsStateful reports whether state changes can change the text color.
func (d *TextDrawable) IsStateful() bool {
	return d.textColors.IsStateful()
}

// IntrinsicWidth returns the measured text width, or -1 when the
// drawable has no intrinsic size (path mode or nothing measured).
func (d *TextDrawable) IntrinsicWidth() int {
	if d.textBounds.Empty() {
		return -1
	}
	return d.textBounds.Dx()
}

// IntrinsicHeight returns the measured text height, or -1 when the
// drawable has no intrinsic size.
func (d *TextDrawable) IntrinsicHeight() int {
	if d.textBounds.Empty() {
		return -1
	}
	return d.textBounds.Dy()
}

// SetAlpha sets the overall alpha, 0xff being fully opaque.
func (d *TextDrawable) SetAlpha(a uint8) {
	if d.paint.SetAlpha(a) {
		d.invalidateSelf()
	}
}

// Alpha returns the overall alpha.
func (d *TextDrawable) Alpha() uint8 { return d.paint.Alpha() }

// SetColorFilter sets a color filter applied to the text color at draw
// time. Pass nil to remove it.
func (d *TextDrawable) SetColorFilter(f ColorFilter) {
	if d.paint.SetColorFilter(f) {
		d.invalidateSelf()
	}
}

// Opacity reports how the drawable covers its bounds. Text never covers
// its bounds completely, so anything visible is translucent.
func (d *TextDrawable) Opacity() Opacity {
	if d.paint.Alpha() == 0 {
		return OpacityTransparent
	}
	return OpacityTranslucent
}

// updateTextColors re-resolves the paint color from the stateful text
// color and the current states, reporting whether it changed.
func (d *TextDrawable) updateTextColors() bool {
	if d.textColors == nil {
		return false
	}
	return d.paint.SetColor(d.textColors.ForState(d.state))
}

// measureContent lays the text out at its desired width and caches both
// the layout and the resulting intrinsic bounds. In path mode there is
// nothing to measure; layout along the path is the canvas's job.
func (d *TextDrawable) measureContent() {
	if d.path != nil {
		d.layout = nil
		d.textBounds = image.Rectangle{}
		d.invalidateSelf()
		return
	}

	face := d.paint.face()
	opts := d.paint.layoutOptions(d.align)
	opts.MaxWidth = math.Ceil(text.DesiredWidth(d.text, face, opts))

	d.layout = text.LayoutText(d.text, face, opts)
	d.textBounds = image.Rect(0, 0,
		int(math.Ceil(d.layout.Width)),
		int(math.Ceil(d.layout.Height)))

	Logger().Debug("measured text",
		"width", d.layout.Width,
		"height", d.layout.Height,
		"lines", len(d.layout.Lines))

	d.invalidateSelf()
}

// invalidateSelf notifies the owner that a redraw is needed.
func (d *TextDrawable) invalidateSelf() {
	if d.OnInvalidate != nil {
		d.OnInvalidate()
	}
}

package textdraw

import "github.com/gogpu/textdraw/text"

// Attr identifies a styling attribute. Attributes live in two namespaces:
// the style namespace (Attr*) used when constructing a drawable, and the
// appearance namespace (Appearance*) used inside a named text appearance.
// Most style attributes have an appearance counterpart; the ones that do
// not (like AttrText) only make sense on the drawable itself.
type Attr int

// Style namespace.
const (
	AttrText Attr = iota
	AttrTextAppearance
	AttrTextColor
	AttrTextColorHint
	AttrTextColorLink
	AttrTextSize
	AttrTypeface
	AttrFontFamily
	AttrTextStyle
	AttrTextFontWeight
	AttrTextAllCaps
	AttrShadowColor
	AttrShadowDx
	AttrShadowDy
	AttrShadowRadius
	AttrElegantTextHeight
	AttrFallbackLineSpacing
	AttrLetterSpacing
	AttrFontFeatureSettings
)

// Appearance namespace.
const (
	AppearanceTextColor Attr = iota + 100
	AppearanceTextColorHint
	AppearanceTextColorLink
	AppearanceTextSize
	AppearanceTypeface
	AppearanceFontFamily
	AppearanceTextStyle
	AppearanceTextFontWeight
	AppearanceTextAllCaps
	AppearanceShadowColor
	AppearanceShadowDx
	AppearanceShadowDy
	AppearanceShadowRadius
	AppearanceElegantTextHeight
	AppearanceFallbackLineSpacing
	AppearanceLetterSpacing
	AppearanceFontFeatureSettings
)

// appearanceAttrs maps style-namespace attributes to their appearance
// counterparts. Style attributes without an entry here have no appearance
// equivalent and are handled by the drawable directly.
var appearanceAttrs = map[Attr]Attr{
	AttrTextColor:           AppearanceTextColor,
	AttrTextColorHint:       AppearanceTextColorHint,
	AttrTextColorLink:       AppearanceTextColorLink,
	AttrTextSize:            AppearanceTextSize,
	AttrTypeface:            AppearanceTypeface,
	AttrFontFamily:          AppearanceFontFamily,
	AttrTextStyle:           AppearanceTextStyle,
	AttrTextFontWeight:      AppearanceTextFontWeight,
	AttrTextAllCaps:         AppearanceTextAllCaps,
	AttrShadowColor:         AppearanceShadowColor,
	AttrShadowDx:            AppearanceShadowDx,
	AttrShadowDy:            AppearanceShadowDy,
	AttrShadowRadius:        AppearanceShadowRadius,
	AttrElegantTextHeight:   AppearanceElegantTextHeight,
	AttrFallbackLineSpacing: AppearanceFallbackLineSpacing,
	AttrLetterSpacing:       AppearanceLetterSpacing,
	AttrFontFeatureSettings: AppearanceFontFeatureSettings,
}

// valueKind identifies which variant a Value holds.
type valueKind uint8

const (
	kindString valueKind = iota
	kindInt
	kindFloat
	kindBool
	kindColor
	kindColorList
	kindFont
)

// Value is a typed attribute value. Construct one with StringValue,
// IntValue, FloatValue, BoolValue, ColorValue, ColorListValue or
// FontValue; read it back with the matching getter. Getters report
// whether the value actually holds that type, so a reader asking for the
// wrong type sees a clean miss rather than a zero that looks real.
type Value struct {
	kind valueKind

	str   string
	num   float64
	b     bool
	color RGBA
	list  *ColorList
	font  *text.Source
}

// StringValue creates a string value.
func StringValue(s string) Value { return Value{kind: kindString, str: s} }

// IntValue creates an integer value.
func IntValue(i int) Value { return Value{kind: kindInt, num: float64(i)} }

// FloatValue creates a float value.
func FloatValue(f float64) Value { return Value{kind: kindFloat, num: f} }

// BoolValue creates a boolean value.
func BoolValue(b bool) Value { return Value{kind: kindBool, b: b} }

// ColorValue creates a plain color value.
func ColorValue(c RGBA) Value { return Value{kind: kindColor, color: c} }

// ColorListValue creates a stateful color list value.
func ColorListValue(l *ColorList) Value { return Value{kind: kindColorList, list: l} }

// FontValue creates a font source value.
func FontValue(src *text.Source) Value { return Value{kind: kindFont, font: src} }

// Str returns the string value, if the value holds one.
func (v Value) Str() (string, bool) { return v.str, v.kind == kindString }

// Int returns the integer value, if the value holds one.
func (v Value) Int() (int, bool) { return int(v.num), v.kind == kindInt }

// Float returns the float value. Integer values convert; anything else
// is a miss.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == kindFloat || v.kind == kindInt
}

// Bool returns the boolean value, if the value holds one.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == kindBool }

// Color returns the color. A color list converts to its default color, so
// readers that only need one color accept both forms.
func (v Value) Color() (RGBA, bool) {
	switch v.kind {
	case kindColor:
		return v.color, true
	case kindColorList:
		if v.list != nil {
			return v.list.Default(), true
		}
	}
	return RGBA{}, false
}

// ColorList returns the color list. A plain color converts to a
// single-color list.
func (v Value) ColorList() (*ColorList, bool) {
	switch v.kind {
	case kindColorList:
		if v.list != nil {
			return v.list, true
		}
	case kindColor:
		return NewColorList(v.color), true
	}
	return nil, false
}

// Font returns the font source value, if the value holds one.
func (v Value) Font() (*text.Source, bool) { return v.font, v.kind == kindFont }

// attrEntry preserves the order attributes were set in.
type attrEntry struct {
	attr  Attr
	value Value
}

// Attrs is an ordered set of attribute values. Setting an attribute twice
// keeps its original position but replaces the value, so iteration order
// reflects first insertion. The zero value is not usable; call NewAttrs.
type Attrs struct {
	entries []attrEntry
	index   map[Attr]int
}

// NewAttrs creates an empty attribute set.
func NewAttrs() *Attrs {
	return &Attrs{index: make(map[Attr]int)}
}

// Set stores a value for attr and returns the set for chaining.
func (a *Attrs) Set(attr Attr, v Value) *Attrs {
	if i, ok := a.index[attr]; ok {
		a.entries[i].value = v
		return a
	}
	a.index[attr] = len(a.entries)
	a.entries = append(a.entries, attrEntry{attr: attr, value: v})
	return a
}

// Get returns the value for attr and whether it was set.
func (a *Attrs) Get(attr Attr) (Value, bool) {
	if a == nil {
		return Value{}, false
	}
	i, ok := a.index[attr]
	if !ok {
		return Value{}, false
	}
	return a.entries[i].value, true
}

// Len returns the number of attributes set.
func (a *Attrs) Len() int {
	if a == nil {
		return 0
	}
	return len(a.entries)
}

// Each calls fn for every attribute in insertion order.
func (a *Attrs) Each(fn func(Attr, Value)) {
	if a == nil {
		return
	}
	for _, e := range a.entries {
		fn(e.attr, e.value)
	}
}

package textdraw

import (
	"github.com/gogpu/textdraw/text"
)

// defaultTextSizeSp is the text size seeded before any attribute applies,
// in sp.
const defaultTextSizeSp = 15

// styleAttributes accumulates the outcome of reading attribute sources.
// Two sources feed it in order: the named text appearance first, then the
// drawable's own style attributes, so the style always wins. Fields that
// distinguish "unset" from a real zero value use pointers.
type styleAttributes struct {
	textColor *ColorList
	hintColor *ColorList
	linkColor *ColorList

	textSize float64 // pixels, 0 means unset

	fontFamily         string
	fontSource         *text.Source
	fontFamilyExplicit bool
	typefaceIndex      TypefaceIndex
	styleIndex         Style
	fontWeight         int // -1 means unset

	allCaps    bool
	allCapsSet bool

	// typefaceSet records whether any typeface-shaping attribute was read,
	// so applying a partial attribute set leaves an existing typeface alone.
	typefaceSet bool

	shadowSet    bool
	shadowColor  RGBA
	shadowDx     float64
	shadowDy     float64
	shadowRadius float64

	elegant             *bool
	fallbackLineSpacing *bool
	letterSpacing       *float64
	fontFeatureSettings *string
}

func newStyleAttributes() *styleAttributes {
	return &styleAttributes{
		typefaceIndex: TypefaceDefault,
		styleIndex:    StyleNormal,
		fontWeight:    -1,
	}
}

// appearanceReaders dispatches one appearance-namespace attribute into the
// accumulated style. Unknown attributes have no reader and are skipped.
var appearanceReaders = map[Attr]func(*styleAttributes, *Resources, Value){
	AppearanceTextColor: func(sa *styleAttributes, _ *Resources, v Value) {
		if l, ok := v.ColorList(); ok {
			sa.textColor = l
		}
	},
	AppearanceTextColorHint: func(sa *styleAttributes, _ *Resources, v Value) {
		if l, ok := v.ColorList(); ok {
			sa.hintColor = l
		}
	},
	AppearanceTextColorLink: func(sa *styleAttributes, _ *Resources, v Value) {
		if l, ok := v.ColorList(); ok {
			sa.linkColor = l
		}
	},
	AppearanceTextSize: func(sa *styleAttributes, res *Resources, v Value) {
		if f, ok := v.Float(); ok {
			sa.textSize = res.ApplyDimension(f, UnitSp)
		}
	},
	AppearanceTypeface: func(sa *styleAttributes, _ *Resources, v Value) {
		i, ok := v.Int()
		if !ok {
			return
		}
		sa.typefaceIndex = TypefaceIndex(i)
		sa.typefaceSet = true
		// A generic index displaces a family name from an earlier source,
		// but never a resolved font resource, which outranks the index.
		if !sa.fontFamilyExplicit {
			sa.fontFamily = ""
		}
	},
	AppearanceFontFamily: func(sa *styleAttributes, res *Resources, v Value) {
		if src, ok := v.Font(); ok {
			sa.fontSource = src
			sa.fontFamily = ""
			sa.fontFamilyExplicit = true
			sa.typefaceSet = true
			return
		}
		name, ok := v.Str()
		if !ok {
			return
		}
		// A name can refer to a registered font resource or directly to
		// a family. Resource lookup wins; on a miss the name is kept as
		// a family name for the registry to resolve at typeface time.
		if src, err := res.Font(name); err == nil {
			sa.fontSource = src
			sa.fontFamily = ""
		} else {
			sa.fontSource = nil
			sa.fontFamily = name
		}
		sa.fontFamilyExplicit = true
		sa.typefaceSet = true
	},
	AppearanceTextStyle: func(sa *styleAttributes, _ *Resources, v Value) {
		if i, ok := v.Int(); ok {
			sa.styleIndex = Style(i)
			sa.typefaceSet = true
		}
	},
	AppearanceTextFontWeight: func(sa *styleAttributes, _ *Resources, v Value) {
		if i, ok := v.Int(); ok {
			sa.fontWeight = i
			sa.typefaceSet = true
		}
	},
	AppearanceTextAllCaps: func(sa *styleAttributes, _ *Resources, v Value) {
		if b, ok := v.Bool(); ok {
			sa.allCaps = b
			sa.allCapsSet = true
		}
	},
	AppearanceShadowColor: func(sa *styleAttributes, _ *Resources, v Value) {
		if c, ok := v.Color(); ok {
			sa.shadowColor = c
			sa.shadowSet = true
		}
	},
	AppearanceShadowDx: func(sa *styleAttributes, _ *Resources, v Value) {
		if f, ok := v.Float(); ok {
			sa.shadowDx = f
			sa.shadowSet = true
		}
	},
	AppearanceShadowDy: func(sa *styleAttributes, _ *Resources, v Value) {
		if f, ok := v.Float(); ok {
			sa.shadowDy = f
			sa.shadowSet = true
		}
	},
	AppearanceShadowRadius: func(sa *styleAttributes, _ *Resources, v Value) {
		if f, ok := v.Float(); ok {
			sa.shadowRadius = f
			sa.shadowSet = true
		}
	},
	AppearanceElegantTextHeight: func(sa *styleAttributes, _ *Resources, v Value) {
		if b, ok := v.Bool(); ok {
			sa.elegant = &b
		}
	},
	AppearanceFallbackLineSpacing: func(sa *styleAttributes, _ *Resources, v Value) {
		if b, ok := v.Bool(); ok {
			sa.fallbackLineSpacing = &b
		}
	},
	AppearanceLetterSpacing: func(sa *styleAttributes, _ *Resources, v Value) {
		if f, ok := v.Float(); ok {
			sa.letterSpacing = &f
		}
	},
	AppearanceFontFeatureSettings: func(sa *styleAttributes, _ *Resources, v Value) {
		if s, ok := v.Str(); ok {
			sa.fontFeatureSettings = &s
		}
	},
}

// readTextAppearance folds one attribute source into the accumulated
// style. When styleSource is true the source uses the style namespace and
// each attribute is translated to its appearance counterpart first;
// style-only attributes with no counterpart (the text itself, the
// appearance reference) are skipped here and handled by the drawable.
func readTextAppearance(src *Attrs, sa *styleAttributes, res *Resources, styleSource bool) {
	src.Each(func(attr Attr, v Value) {
		if styleSource {
			mapped, ok := appearanceAttrs[attr]
			if !ok {
				return
			}
			attr = mapped
		}
		if reader, ok := appearanceReaders[attr]; ok {
			reader(sa, res, v)
		}
	})
}

// resolveStyle runs the full two-pass attribute resolution: defaults,
// then the named appearance, then the drawable's own attributes. Between
// the passes fontFamilyExplicit resets, so a family named by the
// appearance does not block a typeface index set directly on the style.
func resolveStyle(res *Resources, appearance, style *Attrs) *styleAttributes {
	sa := newStyleAttributes()
	sa.textColor = NewColorList(Black)
	sa.textSize = res.ApplyDimension(defaultTextSizeSp, UnitSp)

	if appearance != nil {
		readTextAppearance(appearance, sa, res, false)
	}
	sa.fontFamilyExplicit = false
	if style != nil {
		readTextAppearance(style, sa, res, true)
	}
	return sa
}

// applyStyle pushes resolved style attributes into the drawable's paint
// and state, then re-measures. Only attributes that were actually read
// apply, so a partial attribute set (a later SetTextAppearance call)
// leaves the rest of the drawable untouched.
func (d *TextDrawable) applyStyle(sa *styleAttributes) {
	// A typeface index beats a family the override pass did not name
	// itself. The explicit-family latch reset between sources, so a family
	// the appearance set alongside an index loses to the index here even
	// though the reader kept it at read time. A resolved font resource
	// outranks the index and survives.
	if sa.typefaceIndex != TypefaceDefault && !sa.fontFamilyExplicit {
		sa.fontFamily = ""
	}

	if sa.textColor != nil {
		d.textColors = sa.textColor
	}
	if sa.hintColor != nil {
		d.hintColors = sa.hintColor
	}
	if sa.linkColor != nil {
		d.linkColors = sa.linkColor
	}

	if sa.textSize > 0 {
		d.paint.SetSize(sa.textSize)
	}

	if sa.typefaceSet || d.paint.Typeface() == nil {
		rt := resolveTypeface(d.res.Fonts(), sa.fontSource, sa.fontFamily,
			sa.typefaceIndex, sa.styleIndex, sa.fontWeight)
		d.paint.SetTypeface(rt.variant)
		d.paint.SetFakeBold(rt.fakeBold)
		d.paint.SetSkewX(rt.skewX)
	}

	if sa.allCapsSet {
		d.setAllCaps(sa.allCaps)
	}

	if sa.shadowSet {
		d.paint.SetShadow(Shadow{
			Radius: sa.shadowRadius,
			Dx:     sa.shadowDx,
			Dy:     sa.shadowDy,
			Color:  sa.shadowColor,
		})
	}

	if sa.elegant != nil {
		d.paint.SetElegant(*sa.elegant)
	}
	if sa.fallbackLineSpacing != nil {
		d.paint.SetFallbackLineSpacing(*sa.fallbackLineSpacing)
	}
	if sa.letterSpacing != nil {
		d.paint.SetLetterSpacing(*sa.letterSpacing)
	}
	if sa.fontFeatureSettings != nil {
		d.paint.SetFeatures(*sa.fontFeatureSettings)
	}

	d.updateTextColors()
	d.measureContent()
}

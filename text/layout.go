package text

import (
	"strings"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
)

// Align specifies horizontal text alignment within the layout width.
type Align int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// WrapMode specifies how text behaves when it exceeds MaxWidth.
type WrapMode uint8

const (
	// WrapNone disables wrapping; only hard line breaks start new lines.
	// This is the mode used for intrinsic measurement: the text is laid
	// out once at its desired width and never re-wrapped.
	WrapNone WrapMode = iota

	// WrapWord breaks greedily at space boundaries when a line would
	// exceed MaxWidth. Words longer than MaxWidth overflow.
	WrapWord
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	default:
		return "Unknown"
	}
}

// Options configures layout and measurement.
type Options struct {
	// MaxWidth is the layout width in pixels. When 0, the layout is as
	// wide as its widest line. Alignment only has visible effect when
	// MaxWidth is set.
	MaxWidth float64

	// LineSpacing is a multiplier for line height. Values <= 0 mean 1.0.
	LineSpacing float64

	// ExtraSpacing is added to every line's height, in pixels.
	ExtraSpacing float64

	// Align is the horizontal alignment of lines within MaxWidth.
	Align Align

	// Wrap selects the line breaking behavior.
	Wrap WrapMode

	// LetterSpacing is extra advance per glyph, in em units.
	LetterSpacing float64

	// ScaleX stretches all horizontal geometry. Values <= 0 mean 1.0.
	ScaleX float64

	// Features is a CSS font-feature-settings string, see ParseFeatures.
	Features string

	// Elegant adds the font's line gap into every line's height, trading
	// compactness for the extra vertical space elegant metrics ask for.
	Elegant bool

	// FallbackLineSpacing lets every line use its own ascent/descent.
	// When false, the first line's metrics apply to all lines, giving
	// uniform spacing.
	FallbackLineSpacing bool

	// Language is a BCP 47 language tag for shaping ("en" when empty).
	Language string
}

// DefaultOptions returns the options used when nothing was configured.
func DefaultOptions() Options {
	return Options{
		LineSpacing: 1.0,
		ScaleX:      1.0,
		Language:    "en",
	}
}

// Glyph is one positioned glyph within a line.
type Glyph struct {
	// ID is the glyph index in the font.
	ID font.GID

	// Cluster is the rune index of the glyph's cluster in the line text.
	Cluster int

	// X is the horizontal position relative to the line origin.
	X float64

	// Y is the vertical offset relative to the line baseline.
	Y float64

	// Advance is the horizontal advance to the next glyph.
	Advance float64
}

// Line is one laid-out line of text.
type Line struct {
	// Glyphs are the line's glyphs, positioned relative to the line
	// origin horizontally and the baseline vertically.
	Glyphs []Glyph

	// Width is the total advance width of the line.
	Width float64

	// Ascent is the distance from baseline to line top (positive).
	Ascent float64

	// Descent is the distance from baseline to line bottom (positive).
	Descent float64

	// Y is the baseline position within the layout.
	Y float64
}

// Height returns the natural height of the line.
func (l *Line) Height() float64 {
	return l.Ascent + l.Descent
}

// Layout is the deterministic result of laying out a string: the same text,
// face and options always produce the same geometry.
type Layout struct {
	// Lines are the laid-out lines, top to bottom.
	Lines []Line

	// Width is the layout width: MaxWidth when one was given, otherwise
	// the widest line's width.
	Width float64

	// Height is the total height of all lines including spacing.
	Height float64
}

// lineMetrics is the vertical extent of a shaped run.
type lineMetrics struct {
	ascent  float64
	descent float64
	gap     float64
}

// DesiredWidth returns the width the text wants absent any constraint: the
// advance of its widest paragraph, honoring letter spacing, horizontal
// scale and font features. Callers typically ceil this and feed it back as
// Options.MaxWidth for a single-pass layout.
func DesiredWidth(s string, f Face, o Options) float64 {
	if s == "" || !f.Valid() {
		return 0
	}
	o = normalize(o)
	features := ParseFeatures(o.Features)

	var widest float64
	for _, para := range splitParagraphs(s) {
		if para == "" {
			continue
		}
		out := shapeRun([]rune(para), f, features, o.Language)
		w := runWidth(out, f.Size, o)
		if w > widest {
			widest = w
		}
	}
	return widest
}

// LayoutText lays out the string with the given face and options.
// Empty text or an invalid face produce an empty layout, never nil.
func LayoutText(s string, f Face, o Options) *Layout {
	if s == "" || !f.Valid() {
		return &Layout{}
	}
	o = normalize(o)
	features := ParseFeatures(o.Features)

	layout := &Layout{}
	var metrics *lineMetrics // first line's metrics, for uniform spacing
	var y float64

	for _, para := range splitParagraphs(s) {
		runes := []rune(para)
		out := shapeRun(runes, f, features, o.Language)

		m := runMetrics(out)
		if metrics == nil {
			first := m
			metrics = &first
		}
		if !o.FallbackLineSpacing {
			m = *metrics
		}

		for _, lg := range breakLine(out, runes, f.Size, o) {
			lineHeight := (m.ascent+m.descent)*o.LineSpacing + o.ExtraSpacing
			if o.Elegant {
				lineHeight += m.gap
			}

			line := Line{
				Glyphs:  lg.glyphs,
				Width:   lg.width,
				Ascent:  m.ascent,
				Descent: m.descent,
				Y:       y + m.ascent,
			}
			alignLine(&line, o)
			layout.Lines = append(layout.Lines, line)

			y += lineHeight
			if line.Width > layout.Width {
				layout.Width = line.Width
			}
		}
	}

	if o.MaxWidth > 0 {
		layout.Width = o.MaxWidth
	}
	layout.Height = y
	return layout
}

func normalize(o Options) Options {
	if o.LineSpacing <= 0 {
		o.LineSpacing = 1.0
	}
	if o.ScaleX <= 0 {
		o.ScaleX = 1.0
	}
	if o.Language == "" {
		o.Language = "en"
	}
	return o
}

// splitParagraphs splits text at hard line breaks.
func splitParagraphs(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

// runMetrics extracts the vertical line metrics from a shaped run.
// Shaping reports descent as a negative offset below the baseline; lines
// carry it as a positive distance.
func runMetrics(out shaping.Output) lineMetrics {
	descent := fixedToFloat(out.LineBounds.Descent)
	if descent < 0 {
		descent = -descent
	}
	return lineMetrics{
		ascent:  fixedToFloat(out.LineBounds.Ascent),
		descent: descent,
		gap:     fixedToFloat(out.LineBounds.Gap),
	}
}

// runWidth returns the full advance of a shaped run after letter spacing
// and horizontal scaling.
func runWidth(out shaping.Output, size float64, o Options) float64 {
	spacing := o.LetterSpacing * size
	var w float64
	for _, g := range out.Glyphs {
		w += fixedToFloat(g.XAdvance) + spacing
	}
	return w * o.ScaleX
}

// lineGlyphs is a run of positioned glyphs forming one line.
type lineGlyphs struct {
	glyphs []Glyph
	width  float64
}

// breakLine converts a shaped run into one or more lines. In WrapNone mode
// the run is a single line. In WrapWord mode the run is cut greedily at
// space clusters whenever the pen would pass MaxWidth.
func breakLine(out shaping.Output, runes []rune, size float64, o Options) []lineGlyphs {
	spacing := o.LetterSpacing * size

	var lines []lineGlyphs
	var current []Glyph
	var lineStart float64 // pen position where the current line begins
	var pen float64
	breakGlyph := -1 // index in current after which a break is allowed

	flush := func() {
		lines = append(lines, lineGlyphs{glyphs: current, width: pen - lineStart})
		current = nil
		lineStart = pen
		breakGlyph = -1
	}

	for _, g := range out.Glyphs {
		advance := (fixedToFloat(g.XAdvance) + spacing) * o.ScaleX

		glyph := Glyph{
			ID:      g.GlyphID,
			Cluster: g.ClusterIndex,
			X:       pen - lineStart + fixedToFloat(g.XOffset)*o.ScaleX,
			Y:       fixedToFloat(g.YOffset),
			Advance: advance,
		}

		wouldOverflow := o.Wrap == WrapWord && o.MaxWidth > 0 &&
			pen-lineStart+advance > o.MaxWidth && breakGlyph >= 0

		if wouldOverflow {
			// Cut after the last space and re-base the remainder.
			rest := current[breakGlyph+1:]
			kept := current[:breakGlyph+1]

			var keptWidth float64
			for _, k := range kept {
				keptWidth += k.Advance
			}
			lines = append(lines, lineGlyphs{glyphs: kept, width: keptWidth})

			shift := lineStart + keptWidth
			for i := range rest {
				rest[i].X -= keptWidth
			}
			current = rest
			lineStart = shift
			breakGlyph = -1

			glyph.X = pen - lineStart + fixedToFloat(g.XOffset)*o.ScaleX
		}

		current = append(current, glyph)
		pen += advance

		if g.ClusterIndex >= 0 && g.ClusterIndex < len(runes) && runes[g.ClusterIndex] == ' ' {
			breakGlyph = len(current) - 1
		}
	}
	flush()
	return lines
}

// alignLine shifts a line's glyphs for center or right alignment.
func alignLine(line *Line, o Options) {
	if o.MaxWidth <= 0 || o.Align == AlignLeft {
		return
	}
	slack := o.MaxWidth - line.Width
	if slack <= 0 {
		return
	}
	shift := slack
	if o.Align == AlignCenter {
		shift = slack / 2
	}
	for i := range line.Glyphs {
		line.Glyphs[i].X += shift
	}
}

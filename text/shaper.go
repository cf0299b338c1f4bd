package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper carries an
// internal buffer and is NOT safe for concurrent use, but reusing instances
// across sequential calls avoids reallocating that buffer.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// shapeRun shapes a single run of text at the face's size.
//
// The run is shaped left-to-right as one unit: paragraph splitting happens
// above in LayoutText, and bidirectional reordering is out of scope for
// this engine. A fresh font.Face is created per call because font.Face is
// not safe for concurrent use, while the underlying *font.Font is.
func shapeRun(runes []rune, f Face, features []shaping.FontFeature, lang string) shaping.Output {
	input := shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    di.DirectionLTR,
		Face:         font.NewFace(f.Variant.Source.Font()),
		Size:         floatToFixed(f.Size),
		Script:       detectScript(runes),
		Language:     language.NewLanguage(lang),
		FontFeatures: features,
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)
	return out
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text shapes with the dominant leading
// script; splitting runs by script is a caller concern.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 pixel value to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

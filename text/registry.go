package text

import (
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Generic family names resolved by every Registry.
const (
	FamilySans  = "sans-serif"
	FamilySerif = "serif"
	FamilyMono  = "monospace"
)

// Registry maps family names to font families. A new Registry is seeded
// with built-in sans (Go), serif (Latin Modern Roman) and monospace
// (Go Mono) families, so lookups always have somewhere to fall back to.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	families map[string]*Family

	sans  *Family
	serif *Family
	mono  *Family
}

// NewRegistry creates a registry seeded with the built-in families.
// The embedded fonts are parsed once per process and shared between
// registries.
func NewRegistry() *Registry {
	sans, serif, mono := builtinFamilies()
	r := &Registry{
		families: make(map[string]*Family),
		sans:     sans,
		serif:    serif,
		mono:     mono,
	}
	r.Register(sans)
	r.Register(serif)
	r.Register(mono)
	return r
}

// Register adds a family under its own name. Registering a family with a
// name that is already present replaces the earlier entry.
func (r *Registry) Register(f *Family) {
	if f == nil {
		return
	}
	r.mu.Lock()
	r.families[familyKey(f.Name())] = f
	r.mu.Unlock()
}

// Lookup returns the family registered under name, or nil when the name is
// unknown. Lookup is case-insensitive. Callers are expected to fall back to
// Default on a miss; a missing family is not an error.
func (r *Registry) Lookup(name string) *Family {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.families[familyKey(name)]
}

// Sans returns the built-in sans-serif family.
func (r *Registry) Sans() *Family { return r.sans }

// Serif returns the built-in serif family.
func (r *Registry) Serif() *Family { return r.serif }

// Mono returns the built-in monospace family.
func (r *Registry) Mono() *Family { return r.mono }

// Default returns the family used when nothing more specific was requested.
func (r *Registry) Default() *Family { return r.sans }

func familyKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// builtins holds the lazily parsed embedded font families.
var builtins struct {
	once              sync.Once
	sans, serif, mono *Family
}

func builtinFamilies() (sans, serif, mono *Family) {
	builtins.once.Do(func() {
		builtins.sans = mustFamily(FamilySans,
			mustVariant(goregular.TTF, font.StyleNormal, font.WeightNormal),
			mustVariant(gobold.TTF, font.StyleNormal, font.WeightBold),
			mustVariant(goitalic.TTF, font.StyleItalic, font.WeightNormal),
			mustVariant(gobolditalic.TTF, font.StyleItalic, font.WeightBold),
		)
		builtins.serif = mustFamily(FamilySerif,
			mustVariant(lmroman10regular.TTF, font.StyleNormal, font.WeightNormal),
			mustVariant(lmroman10bold.TTF, font.StyleNormal, font.WeightBold),
			mustVariant(lmroman10italic.TTF, font.StyleItalic, font.WeightNormal),
			mustVariant(lmroman10bolditalic.TTF, font.StyleItalic, font.WeightBold),
		)
		builtins.mono = mustFamily(FamilyMono,
			mustVariant(gomono.TTF, font.StyleNormal, font.WeightNormal),
			mustVariant(gomonobold.TTF, font.StyleNormal, font.WeightBold),
			mustVariant(gomonoitalic.TTF, font.StyleItalic, font.WeightNormal),
			mustVariant(gomonobolditalic.TTF, font.StyleItalic, font.WeightBold),
		)
	})
	return builtins.sans, builtins.serif, builtins.mono
}

// mustVariant parses an embedded font. The aspect is stated explicitly
// instead of trusting the font's self-description so that variant selection
// is deterministic across font file revisions.
func mustVariant(data []byte, style font.Style, weight font.Weight) *Variant {
	src, err := NewSource(data)
	if err != nil {
		panic("text: parsing embedded font: " + err.Error())
	}
	return &Variant{Source: src, Aspect: font.Aspect{Style: style, Weight: weight}}
}

func mustFamily(name string, variants ...*Variant) *Family {
	f, err := NewFamily(name, variants...)
	if err != nil {
		panic("text: building built-in family: " + err.Error())
	}
	return f
}

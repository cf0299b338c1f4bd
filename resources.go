package textdraw

import (
	"fmt"
	"sync"

	locale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"

	"github.com/gogpu/textdraw/text"
)

// Unit identifies the unit of a dimension value.
type Unit uint8

const (
	// UnitPx is device pixels, passed through unchanged.
	UnitPx Unit = iota
	// UnitDp is density-independent pixels, scaled by display density.
	UnitDp
	// UnitSp is scale-independent pixels, scaled by density and the
	// user's font scale. Text sizes use sp so they honor accessibility
	// settings.
	UnitSp
)

// Resources resolves names to concrete styling values: color lists, font
// sources and text appearances. It also carries the display density and
// font scale used to turn dimension values into pixels, and the locale
// used for case conversion.
//
// Registration is expected to happen up front; concurrent registration
// and lookup are safe.
type Resources struct {
	mu sync.RWMutex

	density   float64
	fontScale float64
	locale    language.Tag
	fonts     *text.Registry

	colorLists  map[string]*ColorList
	fontRes     map[string]*text.Source
	appearances map[string]*Attrs
}

// ResourceOption configures Resources construction.
type ResourceOption func(*Resources)

// WithDensity sets the display density (pixels per dp).
func WithDensity(d float64) ResourceOption {
	return func(r *Resources) {
		if d > 0 {
			r.density = d
		}
	}
}

// WithFontScale sets the user font scale applied to sp dimensions.
func WithFontScale(s float64) ResourceOption {
	return func(r *Resources) {
		if s > 0 {
			r.fontScale = s
		}
	}
}

// WithLocale sets the locale used for case conversion.
func WithLocale(tag language.Tag) ResourceOption {
	return func(r *Resources) { r.locale = tag }
}

// WithFontRegistry sets the font registry used for family lookup.
func WithFontRegistry(reg *text.Registry) ResourceOption {
	return func(r *Resources) {
		if reg != nil {
			r.fonts = reg
		}
	}
}

// NewResources creates a resource table with density and font scale 1,
// the system locale and a fresh font registry, then applies the options.
func NewResources(opts ...ResourceOption) *Resources {
	r := &Resources{
		density:     1.0,
		fontScale:   1.0,
		locale:      systemLocale(),
		fonts:       text.NewRegistry(),
		colorLists:  make(map[string]*ColorList),
		fontRes:     make(map[string]*text.Source),
		appearances: make(map[string]*Attrs),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResources struct {
	once sync.Once
	res  *Resources
}

// DefaultResources returns the shared process-wide resource table used
// when a drawable is constructed without one.
func DefaultResources() *Resources {
	defaultResources.once.Do(func() {
		defaultResources.res = NewResources()
	})
	return defaultResources.res
}

// systemLocale asks the OS for the user's locale, falling back to English
// when it cannot be determined.
func systemLocale() language.Tag {
	loc, err := locale.GetLocale()
	if err != nil {
		return language.English
	}
	tag, err := language.Parse(loc)
	if err != nil {
		return language.English
	}
	return tag
}

// Density returns the display density in pixels per dp.
func (r *Resources) Density() float64 { return r.density }

// FontScale returns the user font scale.
func (r *Resources) FontScale() float64 { return r.fontScale }

// Locale returns the locale used for case conversion.
func (r *Resources) Locale() language.Tag { return r.locale }

// Fonts returns the font registry.
func (r *Resources) Fonts() *text.Registry { return r.fonts }

// ApplyDimension converts a value in the given unit to device pixels.
func (r *Resources) ApplyDimension(v float64, u Unit) float64 {
	switch u {
	case UnitDp:
		return v * r.density
	case UnitSp:
		return v * r.density * r.fontScale
	default:
		return v
	}
}

// RegisterColorList registers a color list under name.
func (r *Resources) RegisterColorList(name string, l *ColorList) {
	r.mu.Lock()
	r.colorLists[name] = l
	r.mu.Unlock()
}

// ColorList returns the color list registered under name.
func (r *Resources) ColorList(name string) (*ColorList, error) {
	r.mu.RLock()
	l, ok := r.colorLists[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("color list %q: %w", name, ErrMissingResource)
	}
	return l, nil
}

// RegisterFont registers a font source under name.
func (r *Resources) RegisterFont(name string, src *text.Source) {
	r.mu.Lock()
	r.fontRes[name] = src
	r.mu.Unlock()
}

// Font returns the font source registered under name.
func (r *Resources) Font(name string) (*text.Source, error) {
	r.mu.RLock()
	src, ok := r.fontRes[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("font %q: %w", name, ErrMissingResource)
	}
	return src, nil
}

// RegisterAppearance registers a text appearance under name. Appearance
// attribute sets use the Appearance* attribute namespace.
func (r *Resources) RegisterAppearance(name string, a *Attrs) {
	r.mu.Lock()
	r.appearances[name] = a
	r.mu.Unlock()
}

// Appearance returns the text appearance registered under name.
func (r *Resources) Appearance(name string) (*Attrs, error) {
	r.mu.RLock()
	a, ok := r.appearances[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("text appearance %q: %w", name, ErrMissingResource)
	}
	return a, nil
}

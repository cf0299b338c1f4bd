package textdraw

// StateSet is a bitmask of UI states a drawable can be in. Color lists
// match against it to pick a state-dependent color.
type StateSet uint32

// Drawable states.
const (
	StateEnabled StateSet = 1 << iota
	StatePressed
	StateFocused
	StateSelected
	StateHovered
	StateChecked
	StateActivated
	StateWindowFocused
)

// Has reports whether every state in q is set.
func (s StateSet) Has(q StateSet) bool {
	return s&q == q
}

// colorEntry is one state-to-color mapping.
type colorEntry struct {
	states StateSet
	color  RGBA
}

// ColorList maps drawable states to colors. Entries are consulted in the
// order they were added and the first whose states are all present wins;
// when none matches the fallback color applies. A list with no entries is
// a plain color.
type ColorList struct {
	entries  []colorEntry
	fallback RGBA
}

// NewColorList creates a color list with a single fallback color.
func NewColorList(c RGBA) *ColorList {
	return &ColorList{fallback: c}
}

// Add appends a state-to-color entry and returns the list for chaining.
// An empty state set replaces the fallback color instead of adding an
// entry, since it would match everything anyway.
func (l *ColorList) Add(states StateSet, c RGBA) *ColorList {
	if states == 0 {
		l.fallback = c
		return l
	}
	l.entries = append(l.entries, colorEntry{states: states, color: c})
	return l
}

// ForState returns the color for the given states: the first entry fully
// contained in states, or the fallback.
func (l *ColorList) ForState(states StateSet) RGBA {
	for _, e := range l.entries {
		if states.Has(e.states) {
			return e.color
		}
	}
	return l.fallback
}

// Default returns the fallback color.
func (l *ColorList) Default() RGBA {
	return l.fallback
}

// IsStateful reports whether the list can produce different colors for
// different states. Nil-safe; a nil list is not stateful.
func (l *ColorList) IsStateful() bool {
	return l != nil && len(l.entries) > 0
}

package textdraw

import "errors"

// Sentinel errors for textdraw.
var (
	// ErrMissingResource is returned by Resources lookups when no entry is
	// registered under the requested name. Callers inside the drawable
	// recover by falling back to defaults; the error never propagates out
	// of a rendering path.
	ErrMissingResource = errors.New("textdraw: missing resource")
)

package textdraw

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// Pt creates a point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PathElementKind identifies the type of a path element.
type PathElementKind uint8

const (
	// MoveToKind starts a new subpath at a point.
	MoveToKind PathElementKind = iota
	// LineToKind adds a straight segment.
	LineToKind
	// QuadToKind adds a quadratic Bezier segment.
	QuadToKind
	// CubicToKind adds a cubic Bezier segment.
	CubicToKind
	// CloseKind closes the current subpath.
	CloseKind
)

// PathElement is one command of a path. The number of meaningful points
// depends on Kind: 1 for MoveTo/LineTo, 2 for QuadTo, 3 for CubicTo and
// 0 for Close.
type PathElement struct {
	Kind   PathElementKind
	Points [3]Point
}

// Path is a sequence of path elements describing a curve for text to
// follow. A drawable with a path set stops measuring its own bounds and
// hands both the path and the text to the canvas at draw time.
type Path struct {
	elements []PathElement
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.elements = append(p.elements, PathElement{
		Kind:   MoveToKind,
		Points: [3]Point{Pt(x, y)},
	})
	return p
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.elements = append(p.elements, PathElement{
		Kind:   LineToKind,
		Points: [3]Point{Pt(x, y)},
	})
	return p
}

// QuadraticTo adds a quadratic Bezier through control point (cx, cy)
// ending at (x, y).
func (p *Path) QuadraticTo(cx, cy, x, y float64) *Path {
	p.elements = append(p.elements, PathElement{
		Kind:   QuadToKind,
		Points: [3]Point{Pt(cx, cy), Pt(x, y)},
	})
	return p
}

// CubicTo adds a cubic Bezier through control points (c1x, c1y) and
// (c2x, c2y) ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.elements = append(p.elements, PathElement{
		Kind:   CubicToKind,
		Points: [3]Point{Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y)},
	})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.elements = append(p.elements, PathElement{Kind: CloseKind})
	return p
}

// Elements returns the path's elements in order.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return p == nil || len(p.elements) == 0
}

package layout

import "math"

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect represents a rectangle with position and dimensions.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate just past the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset returns the rectangle shrunk by the given edges.
// Width and height never go below zero.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  math.Max(0, r.Width-e.Horizontal()),
		Height: math.Max(0, r.Height-e.Vertical()),
	}
}

// Union returns the smallest rectangle containing both r and other.
// Empty rectangles are ignored.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x := math.Min(r.X, other.X)
	y := math.Min(r.Y, other.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  math.Max(r.Right(), other.Right()) - x,
		Height: math.Max(r.Bottom(), other.Bottom()) - y,
	}
}

// Edges represents spacing on four sides.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// IsZero returns true if all sides are zero.
func (e Edges) IsZero() bool {
	return e == Edges{}
}

// Add returns the per-side sum of e and other.
func (e Edges) Add(other Edges) Edges {
	return Edges{
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
		Left:   e.Left + other.Left,
	}
}

// start and end return the leading and trailing edge on an axis.
func (e Edges) start(row bool) float64 {
	if row {
		return e.Left
	}
	return e.Top
}

func (e Edges) end(row bool) float64 {
	if row {
		return e.Right
	}
	return e.Bottom
}

func (e Edges) sum(row bool) float64 {
	return e.start(row) + e.end(row)
}

// Insets are offsets from the parent's edges for absolutely positioned nodes.
// Auto values leave that edge unset.
type Insets struct {
	Top, Right, Bottom, Left Value
}

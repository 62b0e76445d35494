package layout

import "math"

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the border box: the space allocated by the parent after
	// applying this node's margin.
	Rect Rect

	// ContentRect is Rect minus border and padding, the area where
	// children are placed.
	ContentRect Rect
}

// Result holds the frames computed by one layout pass.
// Coordinates are absolute in the root container's space.
type Result struct {
	frames map[*Node]Layout
	order  []*Node
}

func newResult(capacity int) *Result {
	return &Result{
		frames: make(map[*Node]Layout, capacity),
		order:  make([]*Node, 0, capacity),
	}
}

func (r *Result) add(n *Node, l Layout) {
	if _, ok := r.frames[n]; !ok {
		r.order = append(r.order, n)
	}
	r.frames[n] = l
}

// Rect returns the border box computed for n.
func (r *Result) Rect(n *Node) (Rect, bool) {
	l, ok := r.frames[n]
	return l.Rect, ok
}

// Layout returns the full layout computed for n.
func (r *Result) Layout(n *Node) (Layout, bool) {
	l, ok := r.frames[n]
	return l, ok
}

// Frames returns a copy of the node to border box mapping.
func (r *Result) Frames() map[*Node]Rect {
	out := make(map[*Node]Rect, len(r.frames))
	for n, l := range r.frames {
		out[n] = l.Rect
	}
	return out
}

// Nodes returns every laid out node in tree pre-order.
// The order ignores Style.Order, matching the tree as built.
func (r *Result) Nodes() []*Node {
	return append([]*Node(nil), r.order...)
}

// Len returns the number of nodes in the result.
func (r *Result) Len() int {
	return len(r.order)
}

// NodeAt returns the deepest node whose border box contains p.
// When siblings overlap, the one later in tree order wins.
func (r *Result) NodeAt(p Point) *Node {
	var hit *Node
	for _, n := range r.order {
		if p.In(r.frames[n].Rect) {
			hit = n
		}
	}
	return hit
}

// Snapped returns a copy of the result with every edge rounded to a grid
// of 1/scale units. Edges are rounded rather than sizes so that boxes
// which touch before snapping still touch afterwards.
// A scale <= 0 returns the result unchanged.
func (r *Result) Snapped(scale float64) *Result {
	if scale <= 0 || !isDefinite(scale) {
		return r
	}
	out := newResult(len(r.order))
	for _, n := range r.order {
		l := r.frames[n]
		out.add(n, Layout{
			Rect:        snapRect(l.Rect, scale),
			ContentRect: snapRect(l.ContentRect, scale),
		})
	}
	return out
}

func snapRect(r Rect, scale float64) Rect {
	left := math.Round(r.X*scale) / scale
	top := math.Round(r.Y*scale) / scale
	right := math.Round(r.Right()*scale) / scale
	bottom := math.Round(r.Bottom()*scale) / scale
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

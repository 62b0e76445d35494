package layout

import (
	"math"

	"github.com/grindlemire/go-flex/internal/debug"
)

// Calculate performs flexbox layout on the tree rooted at root.
//
// containerWidth and containerHeight bound the root; either may be
// Unconstrained. Negative sizes are treated as zero. Every node's computed
// frame is stored on the node and returned in the Result. Calculate never
// fails: impossible constraints are clamped.
//
// A tree must not be laid out concurrently with itself or while it is
// being mutated.
func Calculate(root *Node, containerWidth, containerHeight float64) *Result {
	cw := containerAxis(containerWidth)
	ch := containerAxis(containerHeight)

	e := &engine{
		cache:  make(map[measureKey]Size),
		frames: make(map[*Node]Rect),
	}

	s := root.style
	m := s.Margin
	availW := inner(cw, m.Horizontal())
	availH := inner(ch, m.Vertical())
	c := constraint{
		width:       rootAxis(s.Width, s.MinWidth, s.MaxWidth, cw, availW, s.pb().Horizontal()),
		height:      rootAxis(s.Height, s.MinHeight, s.MaxHeight, ch, availH, s.pb().Vertical()),
		availWidth:  availW,
		availHeight: availH,
		refWidth:    cw,
		refHeight:   ch,
	}

	if debug.Enabled() {
		debug.Log("layout: root=%s container=%gx%g", root, cw, ch)
	}

	size := e.layoutNode(root, c, true)
	e.frames[root] = Rect{X: m.Left, Y: m.Top, Width: size.Width, Height: size.Height}

	r := newResult(len(e.frames))
	e.emit(root, 0, 0, r)
	return r
}

// constraint describes the space offered to a node.
// Sizes are border-box; Unconstrained marks an undefined value.
type constraint struct {
	// width and height are definite sizes the node must take.
	width, height float64
	// availWidth and availHeight bound auto sizing.
	availWidth, availHeight float64
	// refWidth and refHeight resolve the node's own percentages.
	refWidth, refHeight float64
}

type measureKey struct {
	node *Node
	c    constraint
}

// engine holds the state of a single layout pass.
type engine struct {
	cache  map[measureKey]Size
	frames map[*Node]Rect // relative to the parent's border box
}

// layoutNode sizes n under c. When perform is set the frames of n's
// children are recorded; otherwise the call only measures.
func (e *engine) layoutNode(n *Node, c constraint, perform bool) Size {
	key := measureKey{node: n, c: c}
	if !perform {
		if s, ok := e.cache[key]; ok {
			return s
		}
	}

	var size Size
	if hasFlowChildren(n) {
		size = e.layoutFlex(n, c, perform)
	} else {
		size = e.layoutLeaf(n, c)
		if perform {
			for _, child := range n.children {
				e.layoutAbsolute(n, child, size)
			}
		}
	}

	if !perform {
		e.cache[key] = size
	}
	return size
}

// layoutLeaf sizes a node without in-flow children from its MeasureFunc.
func (e *engine) layoutLeaf(n *Node, c constraint) Size {
	s := n.style
	pb := s.pb()
	loW, hiW := s.minMax(true, c.refWidth)
	loH, hiH := s.minMax(false, c.refHeight)

	if isDefinite(c.width) && isDefinite(c.height) {
		return Size{Width: c.width, Height: c.height}
	}

	var content Size
	if n.measure != nil {
		aw := c.width
		if !isDefinite(aw) {
			aw = clamp(c.availWidth, loW, hiW)
		}
		ah := c.height
		if !isDefinite(ah) {
			ah = clamp(c.availHeight, loH, hiH)
		}
		content = n.measure(n, inner(aw, pb.Horizontal()), inner(ah, pb.Vertical()))
		content.Width = nonNegative(content.Width)
		content.Height = nonNegative(content.Height)
	}

	size := Size{Width: c.width, Height: c.height}
	if !isDefinite(size.Width) {
		size.Width = clamp(content.Width+pb.Horizontal(), loW, hiW)
	}
	if !isDefinite(size.Height) {
		size.Height = clamp(content.Height+pb.Vertical(), loH, hiH)
	}
	return size
}

// emit converts parent-relative frames to absolute ones in tree order.
func (e *engine) emit(n *Node, ox, oy float64, r *Result) {
	abs := e.frames[n].Translate(ox, oy)
	l := Layout{Rect: abs, ContentRect: abs.Inset(n.style.pb())}
	n.layout = l
	n.dirty = false
	r.add(n, l)
	for _, c := range n.children {
		e.emit(c, abs.X, abs.Y, r)
	}
}

func hasFlowChildren(n *Node) bool {
	for _, c := range n.children {
		if c.style.Position != PositionAbsolute {
			return true
		}
	}
	return false
}

// pb returns the combined padding and border.
func (s Style) pb() Edges {
	return s.Padding.Add(s.Border)
}

// size returns the explicit size value on an axis.
func (s Style) size(row bool) Value {
	if row {
		return s.Width
	}
	return s.Height
}

// minMax resolves the border-box bounds on an axis. The lower bound is at
// least the padding and border on that axis.
func (s Style) minMax(row bool, reference float64) (lo, hi float64) {
	minV, maxV := s.MinHeight, s.MaxHeight
	if row {
		minV, maxV = s.MinWidth, s.MaxWidth
	}
	lo = math.Max(minV.Resolve(reference, 0), s.pb().sum(row))
	lo = nonNegative(lo)
	hi = maxV.Resolve(reference, math.Inf(1))
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func containerAxis(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 1) {
		return Unconstrained
	}
	return nonNegative(v)
}

// rootAxis picks the root's definite size on one axis: the explicit size if
// set, otherwise the available space when it is bounded.
func rootAxis(v, minV, maxV Value, container, avail, pb float64) float64 {
	lo := math.Max(nonNegative(minV.Resolve(container, 0)), pb)
	hi := math.Max(maxV.Resolve(container, math.Inf(1)), lo)
	if size, ok := v.definite(container); ok {
		return clamp(size, lo, hi)
	}
	if isDefinite(avail) {
		return clamp(avail, lo, hi)
	}
	return Unconstrained
}

// inner subtracts pb from a size, keeping undefined sizes undefined.
func inner(size, pb float64) float64 {
	if !isDefinite(size) {
		return size
	}
	return nonNegative(size - pb)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// axes maps between (width, height) and (main, cross).
func axes(row bool, a, b float64) (float64, float64) {
	if row {
		return a, b
	}
	return b, a
}

package layout

// MeasureFunc reports the intrinsic content size of a leaf node.
// The available sizes describe the node's content box; either may be
// Unconstrained. Negative results are treated as zero.
type MeasureFunc func(n *Node, availableWidth, availableHeight float64) Size

// Node is an element of the layout tree.
// Children keep insertion order; Style.Order only affects layout order.
type Node struct {
	// ID is a free-form label used in debug output and by tools.
	ID string

	style    Style
	parent   *Node
	children []*Node
	measure  MeasureFunc

	dirty  bool
	layout Layout
}

// NewNode creates a node with the given style and children.
func NewNode(style Style, children ...*Node) *Node {
	n := &Node{style: style, dirty: true}
	n.AddChild(children...)
	return n
}

// Style returns the node's layout properties.
func (n *Node) Style() Style {
	return n.style
}

// SetStyle replaces the node's layout properties and marks it dirty.
func (n *Node) SetStyle(s Style) {
	n.style = s
	n.MarkDirty()
}

// UpdateStyle applies fn to the node's style and marks it dirty.
func (n *Node) UpdateStyle(fn func(*Style)) {
	fn(&n.style)
	n.MarkDirty()
}

// SetMeasure installs the content measurement used when the node is a leaf.
func (n *Node) SetMeasure(fn MeasureFunc) {
	n.measure = fn
	n.MarkDirty()
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the children in tree order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// AddChild appends children. A child that already has a parent is detached
// first. Nil children and children that are n or one of its ancestors are
// ignored.
func (n *Node) AddChild(children ...*Node) {
	for _, c := range children {
		if c == nil || c.isAncestorOf(n) {
			continue
		}
		c.detach()
		c.parent = n
		n.children = append(n.children, c)
	}
	n.MarkDirty()
}

// InsertChild inserts child at index i, clamped to the valid range.
// Like AddChild it ignores nil and n's own ancestors.
func (n *Node) InsertChild(i int, child *Node) {
	if child == nil || child.isAncestorOf(n) {
		return
	}
	child.detach()
	i = max(0, min(i, len(n.children)))
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	child.parent = n
	n.MarkDirty()
}

// RemoveChild removes child and reports whether it was found.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			n.MarkDirty()
			return true
		}
	}
	return false
}

// isAncestorOf reports whether n is d or one of d's ancestors.
func (n *Node) isAncestorOf(d *Node) bool {
	for p := d; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

func (n *Node) detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// MarkDirty flags the node and its ancestors as needing layout.
func (n *Node) MarkDirty() {
	for p := n; p != nil; p = p.parent {
		p.dirty = true
	}
}

// IsDirty returns whether this node needs layout recalculation.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// Layout returns the frame computed by the last layout pass.
func (n *Node) Layout() Layout {
	return n.layout
}

// Walk visits n and its descendants in tree pre-order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.ID != "" {
		return n.ID
	}
	return "node"
}

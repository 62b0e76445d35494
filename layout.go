// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flex

import "github.com/grindlemire/go-flex/internal/layout"

// Unconstrained marks a container axis with no size limit.
var Unconstrained = layout.Unconstrained

// ErrInvalidBasis is wrapped by every error returned from the Basis constructors.
var ErrInvalidBasis = layout.ErrInvalidBasis

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row           = layout.Row
	RowReverse    = layout.RowReverse
	Column        = layout.Column
	ColumnReverse = layout.ColumnReverse
)

// Wrap controls whether children may break onto several lines.
type Wrap = layout.Wrap

const (
	NoWrap      = layout.NoWrap
	WrapForward = layout.WrapForward
	WrapReverse = layout.WrapReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyCenter       = layout.JustifyCenter
	JustifyEnd          = layout.JustifyEnd
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// AlignItems specifies how children are aligned along the cross axis.
type AlignItems = layout.AlignItems

const (
	AlignItemsStretch = layout.AlignItemsStretch
	AlignItemsCenter  = layout.AlignItemsCenter
	AlignItemsStart   = layout.AlignItemsStart
	AlignItemsEnd     = layout.AlignItemsEnd
)

// AlignSelf overrides the parent's AlignItems for one child.
type AlignSelf = layout.AlignSelf

const (
	AlignSelfAuto    = layout.AlignSelfAuto
	AlignSelfStretch = layout.AlignSelfStretch
	AlignSelfCenter  = layout.AlignSelfCenter
	AlignSelfStart   = layout.AlignSelfStart
	AlignSelfEnd     = layout.AlignSelfEnd
)

// AlignContent distributes lines along the cross axis of a wrapping container.
type AlignContent = layout.AlignContent

const (
	AlignContentStretch      = layout.AlignContentStretch
	AlignContentCenter       = layout.AlignContentCenter
	AlignContentStart        = layout.AlignContentStart
	AlignContentEnd          = layout.AlignContentEnd
	AlignContentSpaceBetween = layout.AlignContentSpaceBetween
	AlignContentSpaceAround  = layout.AlignContentSpaceAround
	AlignContentSpaceEvenly  = layout.AlignContentSpaceEvenly
)

// Position selects in-flow or absolute placement.
type Position = layout.Position

const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// Basis is the initial main size of a flex item.
type Basis = layout.Basis

// BasisKind tags which variant a Basis holds.
type BasisKind = layout.BasisKind

const (
	BasisAuto     = layout.BasisAuto
	BasisFixed    = layout.BasisFixed
	BasisRelative = layout.BasisRelative
)

// BasisError reports a flex basis that cannot be constructed.
type BasisError = layout.BasisError

// Style holds the flex properties of a node.
type Style = layout.Style

// Node is an element of the layout tree.
type Node = layout.Node

// MeasureFunc reports the content size of a leaf.
type MeasureFunc = layout.MeasureFunc

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Insets holds the offsets of an absolutely positioned node.
type Insets = layout.Insets

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// LayoutResult holds the computed layout for a node.
type LayoutResult = layout.Layout

// Result holds every frame computed by one Layout call.
type Result = layout.Result

// Fixed creates a Value with an absolute length.
func Fixed(n float64) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// AutoBasis sizes an item from its content or explicit main size.
func AutoBasis() Basis {
	return layout.AutoBasis()
}

// FixedBasis returns a basis of an absolute length. The length must be
// finite and not negative.
func FixedBasis(length float64) (Basis, error) {
	return layout.FixedBasis(length)
}

// RelativeBasis returns a basis that is a fraction in [0, 1] of the
// container's main size.
func RelativeBasis(fraction float64) (Basis, error) {
	return layout.RelativeBasis(fraction)
}

// MustFixedBasis is FixedBasis that panics on invalid input.
func MustFixedBasis(length float64) Basis {
	return layout.MustFixedBasis(length)
}

// MustRelativeBasis is RelativeBasis that panics on invalid input.
func MustRelativeBasis(fraction float64) Basis {
	return layout.MustRelativeBasis(fraction)
}

// DefaultStyle returns a Style with default values.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// NewNode creates a node with the given style and children.
func NewNode(style Style, children ...*Node) *Node {
	return layout.NewNode(style, children...)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Layout computes the frame of every node in the tree rooted at root inside
// a container of the given size. Either dimension may be Unconstrained.
func Layout(root *Node, containerWidth, containerHeight float64) *Result {
	return layout.Calculate(root, containerWidth, containerHeight)
}

package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row           Direction = iota // Children laid out left-to-right
	RowReverse                     // Children laid out right-to-left
	Column                         // Children laid out top-to-bottom
	ColumnReverse                  // Children laid out bottom-to-top
)

func (d Direction) String() string {
	switch d {
	case RowReverse:
		return "row-reverse"
	case Column:
		return "column"
	case ColumnReverse:
		return "column-reverse"
	default:
		return "row"
	}
}

// IsRow returns true if the main axis is horizontal.
func (d Direction) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsReverse returns true if items are placed from the main-end edge.
func (d Direction) IsReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

// Wrap specifies whether children may break onto multiple lines.
type Wrap uint8

const (
	NoWrap      Wrap = iota // Single line, children overflow
	WrapForward             // Lines stack from the cross-start edge
	WrapReverse             // Lines stack from the cross-end edge
)

func (w Wrap) String() string {
	switch w {
	case WrapForward:
		return "wrap"
	case WrapReverse:
		return "wrap-reverse"
	default:
		return "no-wrap"
	}
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyCenter                      // Center children
	JustifyEnd                         // Pack at end
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

func (j Justify) String() string {
	switch j {
	case JustifyCenter:
		return "center"
	case JustifyEnd:
		return "end"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	default:
		return "start"
	}
}

// AlignItems specifies how children are positioned on the cross axis of their line.
type AlignItems uint8

const (
	AlignItemsStretch AlignItems = iota // Stretch to fill the line
	AlignItemsCenter                    // Center on cross axis
	AlignItemsStart                     // Align to start of cross axis
	AlignItemsEnd                       // Align to end of cross axis
)

func (a AlignItems) String() string {
	switch a {
	case AlignItemsCenter:
		return "center"
	case AlignItemsStart:
		return "start"
	case AlignItemsEnd:
		return "end"
	default:
		return "stretch"
	}
}

// AlignSelf overrides the parent's AlignItems for a single child.
type AlignSelf uint8

const (
	AlignSelfAuto    AlignSelf = iota // Inherit the parent's AlignItems
	AlignSelfStretch                  // Stretch to fill the line
	AlignSelfCenter                   // Center on cross axis
	AlignSelfStart                    // Align to start of cross axis
	AlignSelfEnd                      // Align to end of cross axis
)

func (a AlignSelf) String() string {
	switch a {
	case AlignSelfStretch:
		return "stretch"
	case AlignSelfCenter:
		return "center"
	case AlignSelfStart:
		return "start"
	case AlignSelfEnd:
		return "end"
	default:
		return "auto"
	}
}

// resolve returns the effective alignment given the parent's AlignItems.
func (a AlignSelf) resolve(parent AlignItems) AlignItems {
	switch a {
	case AlignSelfStretch:
		return AlignItemsStretch
	case AlignSelfCenter:
		return AlignItemsCenter
	case AlignSelfStart:
		return AlignItemsStart
	case AlignSelfEnd:
		return AlignItemsEnd
	default:
		return parent
	}
}

// AlignContent specifies how lines are distributed on the cross axis.
type AlignContent uint8

const (
	AlignContentStretch      AlignContent = iota // Grow lines to fill the container
	AlignContentCenter                           // Center lines
	AlignContentStart                            // Pack lines at start
	AlignContentEnd                              // Pack lines at end
	AlignContentSpaceBetween                     // Even space between, none at edges
	AlignContentSpaceAround                      // Even space around each line
	AlignContentSpaceEvenly                      // Equal space between and at edges
)

func (a AlignContent) String() string {
	switch a {
	case AlignContentCenter:
		return "center"
	case AlignContentStart:
		return "start"
	case AlignContentEnd:
		return "end"
	case AlignContentSpaceBetween:
		return "space-between"
	case AlignContentSpaceAround:
		return "space-around"
	case AlignContentSpaceEvenly:
		return "space-evenly"
	default:
		return "stretch"
	}
}

// distribution maps line alignment onto the shared main-axis distribution.
// Stretch packs at start; line growth is handled separately.
func (a AlignContent) distribution() Justify {
	switch a {
	case AlignContentCenter:
		return JustifyCenter
	case AlignContentEnd:
		return JustifyEnd
	case AlignContentSpaceBetween:
		return JustifySpaceBetween
	case AlignContentSpaceAround:
		return JustifySpaceAround
	case AlignContentSpaceEvenly:
		return JustifySpaceEvenly
	default:
		return JustifyStart
	}
}

// Position specifies whether a node takes part in flow layout.
type Position uint8

const (
	PositionRelative Position = iota // Laid out in flow
	PositionAbsolute                 // Placed by insets against the parent
)

func (p Position) String() string {
	if p == PositionAbsolute {
		return "absolute"
	}
	return "relative"
}

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Flex container properties
	Direction    Direction
	Wrap         Wrap
	Justify      Justify
	AlignItems   AlignItems
	AlignContent AlignContent
	Gap          float64 // Space between children and between lines

	// Flex item properties
	Basis     Basis
	Grow      float64   // How much to grow relative to siblings
	Shrink    float64   // How much to shrink relative to siblings (default 1)
	Order     int       // Layout order, ties keep tree order
	AlignSelf AlignSelf // Override parent's AlignItems

	// Positioning
	Position Position
	Inset    Insets // Only used when Position is PositionAbsolute

	// Spacing
	Margin  Edges
	Padding Edges
	Border  Edges
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:     Auto(),
		Height:    Auto(),
		MinWidth:  Fixed(0),
		MinHeight: Fixed(0),
		MaxWidth:  Auto(), // No maximum
		MaxHeight: Auto(), // No maximum
		Basis:     AutoBasis(),
		Shrink:    1.0,
	}
}

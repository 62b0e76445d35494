package layout

import (
	"cmp"
	"math"
	"slices"

	"github.com/grindlemire/go-flex/internal/debug"
)

// flexItem is the per-child state of one container pass.
type flexItem struct {
	node *Node

	base float64 // flex base size
	hypo float64 // base clamped to min/max
	grow float64
	// shrink is the shrink factor; shrinking is weighted by shrink * base.
	shrink float64

	minMain, maxMain   float64
	minCross, maxCross float64

	// Margins on each axis, the start side taken in flow direction.
	marginMain, marginMainStart   float64
	marginCross, marginCrossStart float64

	target     float64 // resolved main size
	cross      float64 // resolved cross size
	crossFixed bool    // explicit cross size, never stretched
	align      AlignItems

	mainPos, crossPos float64 // content-box offsets in flow direction
}

func (it *flexItem) outerMain() float64  { return it.target + it.marginMain }
func (it *flexItem) outerCross() float64 { return it.cross + it.marginCross }

// flexLine is a run of items sharing a cross-axis band.
type flexLine struct {
	items []flexItem
	cross float64
	pos   float64
}

// layoutFlex runs the flex algorithm for a container with in-flow children.
func (e *engine) layoutFlex(n *Node, c constraint, perform bool) Size {
	s := n.style
	row := s.Direction.IsRow()
	pb := s.pb()
	mainPB, crossPB := pb.sum(row), pb.sum(!row)
	gap := nonNegative(s.Gap)

	mainSize, crossSize := axes(row, c.width, c.height)
	availMain, availCross := axes(row, c.availWidth, c.availHeight)
	refMain, refCross := axes(row, c.refWidth, c.refHeight)
	loMain, hiMain := s.minMax(row, refMain)
	loCross, hiCross := s.minMax(!row, refCross)

	innerMain := inner(mainSize, mainPB)
	innerCross := inner(crossSize, crossPB)
	lineLimit := innerMain
	if !isDefinite(lineLimit) {
		lineLimit = inner(clamp(availMain, loMain, hiMain), mainPB)
	}
	crossLimit := innerCross
	if !isDefinite(crossLimit) {
		crossLimit = inner(clamp(availCross, loCross, hiCross), crossPB)
	}

	if debug.Enabled() {
		debug.Log("flex: %s dir=%s wrap=%s main=%g cross=%g limit=%g %s",
			n, s.Direction, s.Wrap, innerMain, innerCross, lineLimit, debug.Dump(s))
	}

	// Ordering: stable by Order, absolute children leave the flow.
	var flow []*Node
	for _, child := range n.children {
		if child.style.Position != PositionAbsolute {
			flow = append(flow, child)
		}
	}
	slices.SortStableFunc(flow, func(a, b *Node) int {
		return cmp.Compare(a.style.Order, b.style.Order)
	})

	// A container with no content area collapses every child, whatever
	// its own size, shrink factor or minimums.
	collapsed := innerMain == 0 && innerCross == 0

	items := make([]flexItem, len(flow))
	for i, child := range flow {
		e.initItem(&items[i], child, s, innerMain, innerCross, lineLimit, crossLimit)
		if collapsed {
			items[i].collapse()
		}
	}

	lines := breakLines(items, s.Wrap, lineLimit, gap)

	// An undefined main size shrink-wraps the longest line.
	if !isDefinite(innerMain) {
		var longest float64
		for _, l := range lines {
			longest = math.Max(longest, hypotheticalMain(l.items, gap))
		}
		innerMain = clamp(longest+mainPB, loMain, hiMain) - mainPB
	}

	for i := range lines {
		resolveFlexibleLengths(lines[i].items, innerMain, gap)
	}

	// Hypothetical cross sizes with the resolved main sizes.
	for i := range items {
		it := &items[i]
		if it.crossFixed {
			continue
		}
		w, h := axes(row, it.target, Unconstrained)
		aw, ah := axes(row, lineLimit, inner(crossLimit, it.marginCross))
		rw, rh := axes(row, innerMain, innerCross)
		size := e.layoutNode(it.node, constraint{
			width: w, height: h,
			availWidth: aw, availHeight: ah,
			refWidth: rw, refHeight: rh,
		}, false)
		_, cross := axes(row, size.Width, size.Height)
		it.cross = clamp(cross, it.minCross, it.maxCross)
	}

	for i := range lines {
		l := &lines[i]
		for j := range l.items {
			l.cross = math.Max(l.cross, l.items[j].outerCross())
		}
	}

	var total float64
	for i, l := range lines {
		total += l.cross
		if i > 0 {
			total += gap
		}
	}
	if !isDefinite(innerCross) {
		innerCross = clamp(total+crossPB, loCross, hiCross) - crossPB
	}
	if s.Wrap == NoWrap && len(lines) == 1 {
		lines[0].cross = innerCross
		total = innerCross
	}

	placeLines(lines, s, innerCross, total, gap)

	for i := range lines {
		l := &lines[i]
		alignLine(l)
		placeMain(l.items, s.Justify, innerMain, gap)
	}

	w, h := axes(row, innerMain+mainPB, innerCross+crossPB)
	size := Size{Width: w, Height: h}

	if perform {
		for i := range items {
			it := &items[i]
			mainPos := it.mainPos
			if s.Direction.IsReverse() {
				mainPos = innerMain - mainPos - it.target
			}
			crossPos := it.crossPos
			if s.Wrap == WrapReverse {
				crossPos = innerCross - crossPos - it.cross
			}
			x, y := axes(row, mainPos, crossPos)
			cw, ch := axes(row, it.target, it.cross)
			aw, ah := axes(row, lineLimit, crossLimit)
			rw, rh := axes(row, innerMain, innerCross)
			e.layoutNode(it.node, constraint{
				width: cw, height: ch,
				availWidth: aw, availHeight: ah,
				refWidth: rw, refHeight: rh,
			}, true)
			e.frames[it.node] = Rect{X: pb.Left + x, Y: pb.Top + y, Width: cw, Height: ch}
		}
		for _, child := range n.children {
			if child.style.Position == PositionAbsolute {
				e.layoutAbsolute(n, child, size)
			}
		}
	}

	return size
}

// initItem resolves a child's flex base size and constraints.
func (e *engine) initItem(it *flexItem, child *Node, parent Style, innerMain, innerCross, lineLimit, crossLimit float64) {
	row := parent.Direction.IsRow()
	cs := child.style

	it.node = child
	it.grow = nonNegative(cs.Grow)
	it.shrink = nonNegative(cs.Shrink)
	it.align = cs.AlignSelf.resolve(parent.AlignItems)
	it.minMain, it.maxMain = cs.minMax(row, innerMain)
	it.minCross, it.maxCross = cs.minMax(!row, innerCross)

	m := cs.Margin
	it.marginMain = m.sum(row)
	it.marginCross = m.sum(!row)
	if parent.Direction.IsReverse() {
		it.marginMainStart = m.end(row)
	} else {
		it.marginMainStart = m.start(row)
	}
	if parent.Wrap == WrapReverse {
		it.marginCrossStart = m.end(!row)
	} else {
		it.marginCrossStart = m.start(!row)
	}

	explicitCross, crossOK := cs.size(!row).definite(innerCross)
	if crossOK {
		it.crossFixed = true
		it.cross = clamp(explicitCross, it.minCross, it.maxCross)
	}

	if b, ok := cs.Basis.resolve(innerMain); ok {
		it.base = b
	} else if explicitMain, ok := cs.size(row).definite(innerMain); ok {
		it.base = explicitMain
	} else {
		cross := Unconstrained
		if crossOK {
			cross = it.cross
		}
		w, h := axes(row, Unconstrained, cross)
		aw, ah := axes(row, inner(lineLimit, it.marginMain), inner(crossLimit, it.marginCross))
		rw, rh := axes(row, innerMain, innerCross)
		size := e.layoutNode(child, constraint{
			width: w, height: h,
			availWidth: aw, availHeight: ah,
			refWidth: rw, refHeight: rh,
		}, false)
		it.base, _ = axes(row, size.Width, size.Height)
	}
	it.base = nonNegative(it.base)
	it.hypo = clamp(it.base, it.minMain, it.maxMain)
	it.target = it.hypo
}

// collapse pins an item to zero size on both axes.
func (it *flexItem) collapse() {
	it.base, it.hypo, it.target = 0, 0, 0
	it.minMain, it.maxMain = 0, 0
	it.cross, it.minCross, it.maxCross = 0, 0, 0
	it.crossFixed = true
}

// breakLines splits items into lines. Without wrapping, or with an
// unbounded main axis, every item shares one line. An item larger than the
// limit still gets a line of its own.
func breakLines(items []flexItem, wrap Wrap, limit, gap float64) []flexLine {
	if len(items) == 0 {
		return nil
	}
	if wrap == NoWrap || !isDefinite(limit) {
		return []flexLine{{items: items}}
	}

	var lines []flexLine
	start := 0
	used := 0.0
	for i := range items {
		outer := items[i].hypo + items[i].marginMain
		if i > start && used+gap+outer > limit {
			lines = append(lines, flexLine{items: items[start:i]})
			start = i
			used = 0
		}
		if i > start {
			used += gap
		}
		used += outer
	}
	lines = append(lines, flexLine{items: items[start:]})

	if debug.Enabled() {
		debug.Log("flex: %d items in %d lines (limit=%g)", len(items), len(lines), limit)
	}
	return lines
}

// hypotheticalMain returns the outer main size of a line before flexing.
func hypotheticalMain(items []flexItem, gap float64) float64 {
	var used float64
	for i := range items {
		used += items[i].hypo + items[i].marginMain
	}
	if len(items) > 1 {
		used += gap * float64(len(items)-1)
	}
	return used
}

// placeLines sizes and positions lines along the cross axis.
func placeLines(lines []flexLine, s Style, innerCross, total, gap float64) {
	if len(lines) == 0 {
		return
	}
	free := innerCross - total
	if s.Wrap != NoWrap && s.AlignContent == AlignContentStretch && free > 0 {
		extra := free / float64(len(lines))
		for i := range lines {
			lines[i].cross += extra
		}
		free = 0
	}

	start, between := distribute(s.AlignContent.distribution(), free, len(lines))
	if s.Wrap == NoWrap {
		start, between = 0, 0
	}
	pos := start
	for i := range lines {
		lines[i].pos = pos
		pos += lines[i].cross + gap + between
	}
}

// alignLine sizes stretched items and sets cross offsets within a line.
func alignLine(l *flexLine) {
	for i := range l.items {
		it := &l.items[i]
		if it.align == AlignItemsStretch && !it.crossFixed {
			it.cross = clamp(l.cross-it.marginCross, it.minCross, it.maxCross)
		}
		var offset float64
		switch it.align {
		case AlignItemsCenter:
			offset = (l.cross - it.outerCross()) / 2
		case AlignItemsEnd:
			offset = l.cross - it.outerCross()
		}
		it.crossPos = l.pos + offset + it.marginCrossStart
	}
}

// placeMain positions the items of one line along the main axis.
func placeMain(items []flexItem, j Justify, innerMain, gap float64) {
	start, between := distribute(j, freeSpace(items, innerMain, gap), len(items))
	pos := start
	for i := range items {
		it := &items[i]
		it.mainPos = pos + it.marginMainStart
		pos += it.outerMain() + gap + between
	}
}

// distribute returns the leading offset and the extra spacing between n
// boxes sharing free space. Negative free space keeps start, center and end
// offsets and collapses the spacing modes to start.
func distribute(j Justify, free float64, n int) (start, between float64) {
	if n == 0 {
		return 0, 0
	}
	if free < 0 {
		switch j {
		case JustifyCenter:
			return free / 2, 0
		case JustifyEnd:
			return free, 0
		default:
			return 0, 0
		}
	}
	switch j {
	case JustifyCenter:
		return free / 2, 0
	case JustifyEnd:
		return free, 0
	case JustifySpaceBetween:
		if n > 1 {
			return 0, free / float64(n-1)
		}
	case JustifySpaceAround:
		between = free / float64(n)
		return between / 2, between
	case JustifySpaceEvenly:
		between = free / float64(n+1)
		return between, between
	}
	return 0, 0
}

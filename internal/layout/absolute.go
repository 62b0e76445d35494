package layout

import "math"

// layoutAbsolute sizes and places an absolutely positioned child against
// the parent's padding box. It never affects the parent's flow.
func (e *engine) layoutAbsolute(parent, child *Node, parentSize Size) {
	border := parent.style.Border
	box := Rect{
		X:      border.Left,
		Y:      border.Top,
		Width:  nonNegative(parentSize.Width - border.Horizontal()),
		Height: nonNegative(parentSize.Height - border.Vertical()),
	}

	cs := child.style
	m := cs.Margin
	left, leftOK := cs.Inset.Left.offset(box.Width)
	right, rightOK := cs.Inset.Right.offset(box.Width)
	top, topOK := cs.Inset.Top.offset(box.Height)
	bottom, bottomOK := cs.Inset.Bottom.offset(box.Height)

	loW, hiW := cs.minMax(true, box.Width)
	loH, hiH := cs.minMax(false, box.Height)

	w, wOK := cs.Width.definite(box.Width)
	if !wOK && leftOK && rightOK {
		w, wOK = box.Width-left-right-m.Horizontal(), true
	}
	h, hOK := cs.Height.definite(box.Height)
	if !hOK && topOK && bottomOK {
		h, hOK = box.Height-top-bottom-m.Vertical(), true
	}

	if !wOK || !hOK {
		c := constraint{
			width:       Unconstrained,
			height:      Unconstrained,
			availWidth:  inner(box.Width, m.Horizontal()),
			availHeight: inner(box.Height, m.Vertical()),
			refWidth:    box.Width,
			refHeight:   box.Height,
		}
		if wOK {
			c.width = clamp(w, loW, hiW)
		}
		if hOK {
			c.height = clamp(h, loH, hiH)
		}
		size := e.layoutNode(child, c, false)
		if !wOK {
			w = size.Width
		}
		if !hOK {
			h = size.Height
		}
	}
	w = clamp(w, loW, hiW)
	h = clamp(h, loH, hiH)
	pb := parent.style.pb()
	if inner(parentSize.Width, pb.Horizontal()) == 0 && inner(parentSize.Height, pb.Vertical()) == 0 {
		w, h = 0, 0
	}

	pad := parent.style.Padding
	var x, y float64
	switch {
	case leftOK:
		x = box.X + left + m.Left
	case rightOK:
		x = box.X + box.Width - right - m.Right - w
	default:
		x = box.X + pad.Left + m.Left
	}
	switch {
	case topOK:
		y = box.Y + top + m.Top
	case bottomOK:
		y = box.Y + box.Height - bottom - m.Bottom - h
	default:
		y = box.Y + pad.Top + m.Top
	}

	e.layoutNode(child, constraint{
		width:       w,
		height:      h,
		availWidth:  box.Width,
		availHeight: box.Height,
		refWidth:    box.Width,
		refHeight:   box.Height,
	}, true)
	e.frames[child] = Rect{X: x, Y: y, Width: w, Height: h}
}

// offset resolves an inset. Unlike sizes, insets may be negative.
func (v Value) offset(reference float64) (float64, bool) {
	r := v.Resolve(reference, math.NaN())
	if math.IsNaN(r) {
		return 0, false
	}
	return r, true
}

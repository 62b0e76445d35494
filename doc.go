// Package flex computes flexbox layouts.
//
// Build a tree of nodes, each carrying a Style, and call Layout with the
// size of the container. Every node receives a border box in the
// container's coordinate space:
//
//	root := flex.NewNode(style, a, b, c)
//	result := flex.Layout(root, 300, 200)
//	r, _ := result.Rect(a)
//
// Leaves without children report their content size through a MeasureFunc.
// Layout never fails: impossible constraints are clamped and every size is
// non-negative. Invalid flex bases are rejected when they are constructed.
package flex

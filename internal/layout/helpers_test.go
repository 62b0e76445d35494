package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares floats produced by divisions such as space-around gaps.
var approx = cmpopts.EquateApprox(0, 1e-9)

// styled builds a node from DefaultStyle with mod applied.
func styled(mod func(*Style), children ...*Node) *Node {
	s := DefaultStyle()
	if mod != nil {
		mod(&s)
	}
	return NewNode(s, children...)
}

// named is styled with an ID, for readable failures.
func named(id string, mod func(*Style), children ...*Node) *Node {
	n := styled(mod, children...)
	n.ID = id
	return n
}

// basisItem is a leaf with a fixed basis.
func basisItem(id string, basis float64, mod func(*Style)) *Node {
	return named(id, func(s *Style) {
		s.Basis = MustFixedBasis(basis)
		if mod != nil {
			mod(s)
		}
	})
}

// fixedMeasure returns a MeasureFunc reporting a constant content size.
func fixedMeasure(w, h float64) MeasureFunc {
	return func(*Node, float64, float64) Size {
		return Size{Width: w, Height: h}
	}
}

func rectOf(t *testing.T, r *Result, n *Node) Rect {
	t.Helper()
	got, ok := r.Rect(n)
	if !ok {
		t.Fatalf("no frame for %s", n)
	}
	return got
}

func xs(t *testing.T, r *Result, nodes ...*Node) []float64 {
	t.Helper()
	out := make([]float64, len(nodes))
	for i, n := range nodes {
		out[i] = rectOf(t, r, n).X
	}
	return out
}

func ys(t *testing.T, r *Result, nodes ...*Node) []float64 {
	t.Helper()
	out := make([]float64, len(nodes))
	for i, n := range nodes {
		out[i] = rectOf(t, r, n).Y
	}
	return out
}

func widths(t *testing.T, r *Result, nodes ...*Node) []float64 {
	t.Helper()
	out := make([]float64, len(nodes))
	for i, n := range nodes {
		out[i] = rectOf(t, r, n).Width
	}
	return out
}

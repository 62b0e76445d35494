package layout

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// item builds an unconstrained flexItem for resolver tests.
func item(base, grow, shrink float64) flexItem {
	return flexItem{
		base:    base,
		hypo:    base,
		grow:    grow,
		shrink:  shrink,
		maxMain: math.Inf(1),
	}
}

func targets(items []flexItem) []float64 {
	out := make([]float64, len(items))
	for i := range items {
		out[i] = items[i].target
	}
	return out
}

func TestResolveFlexibleLengths(t *testing.T) {
	type tc struct {
		items     func() []flexItem
		available float64
		gap       float64
		expected  []float64
	}

	tests := map[string]tc{
		"exact fit freezes everything": {
			items:     func() []flexItem { return []flexItem{item(40, 1, 1), item(60, 1, 1)} },
			available: 100,
			expected:  []float64{40, 60},
		},
		"grow by factor": {
			items:     func() []flexItem { return []flexItem{item(0, 1, 1), item(0, 3, 1)} },
			available: 100,
			expected:  []float64{25, 75},
		},
		"grow zero keeps base": {
			items:     func() []flexItem { return []flexItem{item(30, 0, 1), item(30, 1, 1)} },
			available: 100,
			expected:  []float64{30, 70},
		},
		"shrink weighted by base": {
			items:     func() []flexItem { return []flexItem{item(100, 0, 1), item(200, 0, 1)} },
			available: 150,
			expected:  []float64{50, 100},
		},
		"shrink zero overflows": {
			items:     func() []flexItem { return []flexItem{item(100, 0, 0), item(100, 0, 0)} },
			available: 50,
			expected:  []float64{100, 100},
		},
		"max violation redistributes": {
			items: func() []flexItem {
				a := item(50, 1, 1)
				a.maxMain = 60
				return []flexItem{a, item(50, 1, 1), item(50, 1, 1)}
			},
			available: 300,
			expected:  []float64{60, 120, 120},
		},
		"min violation redistributes": {
			items: func() []flexItem {
				a := item(100, 0, 1)
				a.minMain = 90
				return []flexItem{a, item(100, 0, 1)}
			},
			available: 100,
			expected:  []float64{90, 10},
		},
		"every item clamped terminates": {
			items: func() []flexItem {
				a, b := item(10, 1, 1), item(10, 1, 1)
				a.maxMain, b.maxMain = 20, 30
				return []flexItem{a, b}
			},
			available: 500,
			expected:  []float64{20, 30},
		},
		"gap reduces free space": {
			items:     func() []flexItem { return []flexItem{item(0, 1, 1), item(0, 1, 1)} },
			available: 100,
			gap:       10,
			expected:  []float64{45, 45},
		},
		"margins reduce free space": {
			items: func() []flexItem {
				a := item(0, 1, 1)
				a.marginMain = 20
				return []flexItem{a, item(0, 1, 1)}
			},
			available: 100,
			expected:  []float64{40, 40},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			items := tt.items()
			resolveFlexibleLengths(items, tt.available, tt.gap)
			if diff := cmp.Diff(tt.expected, targets(items), approx); diff != "" {
				t.Errorf("targets mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveFlexibleLengths_Empty(t *testing.T) {
	resolveFlexibleLengths(nil, 100, 0)
}

func TestDistribute(t *testing.T) {
	type tc struct {
		justify Justify
		free    float64
		n       int
		start   float64
		between float64
	}

	tests := map[string]tc{
		"start":                  {justify: JustifyStart, free: 30, n: 3, start: 0, between: 0},
		"center":                 {justify: JustifyCenter, free: 30, n: 3, start: 15, between: 0},
		"end":                    {justify: JustifyEnd, free: 30, n: 3, start: 30, between: 0},
		"space between":          {justify: JustifySpaceBetween, free: 30, n: 3, start: 0, between: 15},
		"space between single":   {justify: JustifySpaceBetween, free: 30, n: 1, start: 0, between: 0},
		"space around":           {justify: JustifySpaceAround, free: 30, n: 3, start: 5, between: 10},
		"space evenly":           {justify: JustifySpaceEvenly, free: 30, n: 2, start: 10, between: 10},
		"negative center":        {justify: JustifyCenter, free: -20, n: 2, start: -10, between: 0},
		"negative end":           {justify: JustifyEnd, free: -20, n: 2, start: -20, between: 0},
		"negative space between": {justify: JustifySpaceBetween, free: -20, n: 2, start: 0, between: 0},
		"negative space evenly":  {justify: JustifySpaceEvenly, free: -20, n: 2, start: 0, between: 0},
		"no boxes":               {justify: JustifyCenter, free: 30, n: 0, start: 0, between: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			start, between := distribute(tt.justify, tt.free, tt.n)
			if start != tt.start || between != tt.between {
				t.Errorf("distribute() = (%g, %g), expected (%g, %g)", start, between, tt.start, tt.between)
			}
		})
	}
}

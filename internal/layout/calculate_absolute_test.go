package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalculate_AbsoluteSkipsFlow(t *testing.T) {
	a := basisItem("a", 50, nil)
	overlay := named("overlay", func(s *Style) {
		s.Position = PositionAbsolute
		s.Width = Fixed(10)
		s.Height = Fixed(10)
		s.Inset = Insets{Left: Fixed(5), Top: Fixed(5)}
		s.Grow = 5
	})
	b := basisItem("b", 50, nil)
	root := named("root", func(s *Style) {
		s.Wrap = WrapForward
		s.Justify = JustifySpaceBetween
	}, a, overlay, b)

	r := Calculate(root, 100, 100)

	if diff := cmp.Diff([]float64{0, 50}, xs(t, r, a, b)); diff != "" {
		t.Errorf("flow positions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewRect(5, 5, 10, 10), rectOf(t, r, overlay)); diff != "" {
		t.Errorf("overlay mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_AbsolutePlacement(t *testing.T) {
	type tc struct {
		style    func(*Style)
		expected Rect
	}

	tests := map[string]tc{
		"left top": {
			style: func(s *Style) {
				s.Inset = Insets{Left: Fixed(10), Top: Fixed(20)}
				s.Width, s.Height = Fixed(30), Fixed(30)
			},
			expected: NewRect(12, 22, 30, 30),
		},
		"right bottom": {
			style: func(s *Style) {
				s.Inset = Insets{Right: Fixed(10), Bottom: Fixed(10)}
				s.Width, s.Height = Fixed(20), Fixed(20)
			},
			expected: NewRect(168, 68, 20, 20),
		},
		"opposing insets size the node": {
			style: func(s *Style) {
				s.Inset = Insets{Left: Fixed(10), Right: Fixed(10), Top: Fixed(0), Bottom: Fixed(50)}
			},
			expected: NewRect(12, 2, 176, 46),
		},
		"percent insets use padding box": {
			style: func(s *Style) {
				s.Inset = Insets{Left: Percent(50), Top: Percent(10)}
				s.Width, s.Height = Percent(25), Fixed(5)
			},
			expected: NewRect(100, 11.6, 49, 5),
		},
		"no insets sit at content start": {
			style: func(s *Style) {
				s.Width, s.Height = Fixed(5), Fixed(5)
			},
			expected: NewRect(5, 5, 5, 5),
		},
		"margins offset insets": {
			style: func(s *Style) {
				s.Inset = Insets{Left: Fixed(0), Top: Fixed(0)}
				s.Margin = EdgeTRBL(4, 0, 0, 3)
				s.Width, s.Height = Fixed(5), Fixed(5)
			},
			expected: NewRect(5, 6, 5, 5),
		},
		"negative inset allowed": {
			style: func(s *Style) {
				s.Inset = Insets{Left: Fixed(-10), Top: Fixed(0)}
				s.Width, s.Height = Fixed(5), Fixed(5)
			},
			expected: NewRect(-8, 2, 5, 5),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			abs := named("abs", func(s *Style) {
				s.Position = PositionAbsolute
				tt.style(s)
			})
			root := named("root", func(s *Style) {
				s.Width = Fixed(200)
				s.Height = Fixed(100)
				s.Border = EdgeAll(2)
				s.Padding = EdgeAll(3)
			}, basisItem("flow", 40, nil), abs)

			r := Calculate(root, Unconstrained, Unconstrained)

			if diff := cmp.Diff(tt.expected, rectOf(t, r, abs), approx); diff != "" {
				t.Errorf("absolute rect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculate_AbsoluteMeasured(t *testing.T) {
	label := named("label", func(s *Style) {
		s.Position = PositionAbsolute
		s.Inset = Insets{Right: Fixed(0), Top: Fixed(0)}
	})
	label.SetMeasure(fixedMeasure(30, 12))
	root := named("root", nil, label)

	r := Calculate(root, 100, 50)

	if diff := cmp.Diff(NewRect(70, 0, 30, 12), rectOf(t, r, label)); diff != "" {
		t.Errorf("label mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewRect(0, 0, 100, 50), rectOf(t, r, root)); diff != "" {
		t.Errorf("root mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_AbsoluteContainerLaysOutChildren(t *testing.T) {
	inner := basisItem("inner", 10, func(s *Style) { s.Grow = 1 })
	panel := named("panel", func(s *Style) {
		s.Position = PositionAbsolute
		s.Inset = Insets{Left: Fixed(10), Top: Fixed(10)}
		s.Width, s.Height = Fixed(50), Fixed(20)
		s.Padding = EdgeAll(5)
	}, inner)
	root := named("root", nil, panel)

	r := Calculate(root, 100, 100)

	if diff := cmp.Diff(NewRect(15, 15, 40, 10), rectOf(t, r, inner)); diff != "" {
		t.Errorf("inner mismatch (-want +got):\n%s", diff)
	}
}

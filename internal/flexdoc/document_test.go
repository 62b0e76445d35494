package flexdoc

import (
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-flex/internal/layout"
)

const fullDocument = `
width: 300
height: unconstrained
scale: 2
root:
  id: page
  direction: column
  wrap: wrap-reverse
  justify: space-between
  align-items: center
  align-content: space-around
  gap: 4
  padding: [4, 8]
  border: 1
  children:
    - id: header
      basis: 25%
      grow: 2
      shrink: 0
      order: -1
      align-self: end
      width: 50%
      min-height: 10
      max-width: auto
      margin: [1, 2, 3, 4]
      measure: {width: 40, height: 20}
    - id: badge
      position: absolute
      inset: {top: 10, left: -5%}
      text: {content: "hello", char-width: 8, line-height: 16}
`

func TestParse_FullDocument(t *testing.T) {
	doc, err := Parse(strings.NewReader(fullDocument))
	require.NoError(t, err)

	assert.Equal(t, Dimension(300), doc.Width)
	assert.True(t, math.IsInf(float64(doc.Height), 1))
	assert.Equal(t, 2.0, doc.Scale)

	root, err := doc.Build()
	require.NoError(t, err)
	require.Len(t, root.Children(), 2)

	s := root.Style()
	assert.Equal(t, "page", root.ID)
	assert.Equal(t, layout.Column, s.Direction)
	assert.Equal(t, layout.WrapReverse, s.Wrap)
	assert.Equal(t, layout.JustifySpaceBetween, s.Justify)
	assert.Equal(t, layout.AlignItemsCenter, s.AlignItems)
	assert.Equal(t, layout.AlignContentSpaceAround, s.AlignContent)
	assert.Equal(t, 4.0, s.Gap)
	assert.Equal(t, layout.EdgeSymmetric(4, 8), s.Padding)
	assert.Equal(t, layout.EdgeAll(1), s.Border)

	header := root.Children()[0].Style()
	assert.Equal(t, layout.BasisRelative, header.Basis.Kind())
	assert.InDelta(t, 0.25, header.Basis.Length(), 1e-12)
	assert.Equal(t, 2.0, header.Grow)
	assert.Equal(t, 0.0, header.Shrink)
	assert.Equal(t, -1, header.Order)
	assert.Equal(t, layout.AlignSelfEnd, header.AlignSelf)
	assert.Equal(t, layout.Percent(50), header.Width)
	assert.Equal(t, layout.Fixed(10), header.MinHeight)
	assert.Equal(t, layout.Auto(), header.MaxWidth)
	assert.Equal(t, layout.EdgeTRBL(1, 2, 3, 4), header.Margin)

	badge := root.Children()[1].Style()
	assert.Equal(t, layout.PositionAbsolute, badge.Position)
	assert.Equal(t, layout.Fixed(10), badge.Inset.Top)
	assert.Equal(t, layout.Percent(-5), badge.Inset.Left)
	assert.Equal(t, layout.Auto(), badge.Inset.Right)
	assert.Equal(t, 1.0, badge.Shrink, "shrink defaults to 1")
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		input   string
		wantErr string
	}

	tests := map[string]tc{
		"empty": {
			input:   "",
			wantErr: "empty document",
		},
		"no root": {
			input:   "width: 10\n",
			wantErr: "document has no root",
		},
		"unknown key": {
			input:   "root:\n  colour: red\n",
			wantErr: "field colour not found",
		},
		"bad container": {
			input:   "width: wide\nroot: {}\n",
			wantErr: `invalid container size "wide"`,
		},
		"negative container": {
			input:   "height: -1\nroot: {}\n",
			wantErr: `invalid container size "-1"`,
		},
		"negative scale": {
			input:   "scale: -1\nroot: {}\n",
			wantErr: "invalid scale",
		},
		"edges mapping": {
			input:   "root:\n  margin: {top: 1}\n",
			wantErr: "edges must be a number or a list of numbers",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	type tc struct {
		input   string
		wantErr string
		isBasis bool
	}

	tests := map[string]tc{
		"negative basis": {
			input:   "root:\n  children:\n    - {}\n    - {basis: -1}\n",
			wantErr: "root.children[1]: basis: fixed flex basis -1: should be a positive value",
			isBasis: true,
		},
		"relative basis over one": {
			input:   "root:\n  basis: 150%\n",
			wantErr: "root: basis: relative flex basis 1.5: relative length should be in [0, 1]",
			isBasis: true,
		},
		"basis not a number": {
			input:   "root:\n  basis: big\n",
			wantErr: `root: basis: invalid length "big"`,
		},
		"unknown direction": {
			input:   "root:\n  children:\n    - {id: a, direction: diagonal}\n",
			wantErr: `root.children[0]: direction: unknown value "diagonal"`,
		},
		"unknown justify": {
			input:   "root:\n  justify: middle\n",
			wantErr: "want one of start, center, end, space-between, space-around, space-evenly",
		},
		"three edges": {
			input:   "root:\n  padding: [1, 2, 3]\n",
			wantErr: "root: padding: edges take 1, 2 or 4 values, got 3",
		},
		"negative margin": {
			input:   "root:\n  margin: -2\n",
			wantErr: "root: margin: invalid edge value -2",
		},
		"negative width": {
			input:   "root:\n  width: -10\n",
			wantErr: `root: width: invalid value "-10"`,
		},
		"bad inset": {
			input:   "root:\n  inset: {left: x}\n",
			wantErr: `root: inset.left: invalid value "x"`,
		},
		"negative grow": {
			input:   "root:\n  grow: -1\n",
			wantErr: "root: grow: invalid factor -1",
		},
		"measure and text": {
			input:   "root:\n  measure: {width: 1, height: 1}\n  text: {content: a}\n",
			wantErr: "root: measure and text are exclusive",
		},
		"measured leaf with children": {
			input:   "root:\n  measure: {width: 1, height: 1}\n  children: [{}]\n",
			wantErr: "root: a measured leaf cannot have children",
		},
		"negative measure": {
			input:   "root:\n  measure: {width: -1, height: 1}\n",
			wantErr: "root: measure: invalid size -1x1",
		},
		"duplicate id": {
			input:   "root:\n  children:\n    - {id: a}\n    - {id: a}\n",
			wantErr: `duplicate id "a"`,
		},
		"null child": {
			input:   "root:\n  children:\n    - \n",
			wantErr: "root.children[0]: empty node",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)

			_, err = doc.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, tt.isBasis, errors.Is(err, layout.ErrInvalidBasis))
		})
	}
}

func TestBuild_DefaultIDsArePaths(t *testing.T) {
	doc, err := Parse(strings.NewReader("root:\n  children:\n    - {}\n    - {id: named, children: [{}]}\n"))
	require.NoError(t, err)

	root, err := doc.Build()
	require.NoError(t, err)

	var ids []string
	for _, f := range Frames(layout.Calculate(root, 10, 10)) {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []string{"root", "root.children[0]", "named", "root.children[1].children[0]"}, ids)
}

func TestDocument_Layout(t *testing.T) {
	const input = `
width: 300
height: 50
root:
  justify: space-between
  children:
    - {id: a, basis: 100}
    - {id: b, basis: 100}
    - {id: c, basis: 100}
`
	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	_, r, err := doc.Layout()
	require.NoError(t, err)

	assert.Equal(t, []Frame{
		{ID: "root", X: 0, Y: 0, Width: 300, Height: 50},
		{ID: "a", X: 0, Y: 0, Width: 100, Height: 50},
		{ID: "b", X: 100, Y: 0, Width: 100, Height: 50},
		{ID: "c", X: 200, Y: 0, Width: 100, Height: 50},
	}, Frames(r))
}

func TestDocument_LayoutSnaps(t *testing.T) {
	const input = `
width: 100
height: 10
scale: 1
root:
  justify: space-evenly
  children:
    - {id: a, basis: 10}
    - {id: b, basis: 10}
    - {id: c, basis: 10}
`
	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	_, r, err := doc.Layout()
	require.NoError(t, err)

	frames := Frames(r)
	require.Len(t, frames, 4)
	assert.Equal(t, []float64{18, 45, 73}, []float64{frames[1].X, frames[2].X, frames[3].X})
}

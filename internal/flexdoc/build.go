package flexdoc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Build validates the document and returns its node tree.
// Nodes without an id are named after their path.
func (d *Document) Build() (*layout.Node, error) {
	root, err := d.Root.build("root")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var dup string
	root.Walk(func(n *layout.Node) {
		if seen[n.ID] && dup == "" {
			dup = n.ID
		}
		seen[n.ID] = true
	})
	if dup != "" {
		return nil, errors.Errorf("duplicate id %q", dup)
	}
	return root, nil
}

func (s *NodeSpec) build(path string) (*layout.Node, error) {
	if s == nil {
		return nil, errors.Errorf("%s: empty node", path)
	}
	style, err := s.style()
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	n := layout.NewNode(style)
	n.ID = s.ID
	if n.ID == "" {
		n.ID = path
	}

	if s.Measure != nil && s.Text != nil {
		return nil, errors.Errorf("%s: measure and text are exclusive", path)
	}
	if s.Measure != nil || s.Text != nil {
		if len(s.Children) > 0 {
			return nil, errors.Errorf("%s: a measured leaf cannot have children", path)
		}
	}
	if m := s.Measure; m != nil {
		if !validLength(m.Width) || !validLength(m.Height) {
			return nil, errors.Errorf("%s: measure: invalid size %gx%g", path, m.Width, m.Height)
		}
		n.SetMeasure(fixedSize(layout.Size{Width: m.Width, Height: m.Height}))
	}
	if t := s.Text; t != nil {
		fn, err := t.measure()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: text", path)
		}
		n.SetMeasure(fn)
	}

	for i, cs := range s.Children {
		child, err := cs.build(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func (s *NodeSpec) style() (layout.Style, error) {
	st := layout.DefaultStyle()

	var err error
	if st.Direction, err = parseEnum("direction", s.Direction, directions); err != nil {
		return st, err
	}
	if st.Wrap, err = parseEnum("wrap", s.Wrap, wraps); err != nil {
		return st, err
	}
	if st.Justify, err = parseEnum("justify", s.Justify, justifies); err != nil {
		return st, err
	}
	if st.AlignItems, err = parseEnum("align-items", s.AlignItems, alignItems); err != nil {
		return st, err
	}
	if st.AlignContent, err = parseEnum("align-content", s.AlignContent, alignContents); err != nil {
		return st, err
	}
	if st.AlignSelf, err = parseEnum("align-self", s.AlignSelf, alignSelves); err != nil {
		return st, err
	}
	if st.Position, err = parseEnum("position", s.Position, positions); err != nil {
		return st, err
	}

	if st.Basis, err = parseBasis(s.Basis); err != nil {
		return st, errors.WithMessage(err, "basis")
	}
	if !validLength(s.Grow) {
		return st, errors.Errorf("grow: invalid factor %v", s.Grow)
	}
	st.Grow = s.Grow
	if s.Shrink != nil {
		if !validLength(*s.Shrink) {
			return st, errors.Errorf("shrink: invalid factor %v", *s.Shrink)
		}
		st.Shrink = *s.Shrink
	}
	st.Order = s.Order
	if !validLength(s.Gap) {
		return st, errors.Errorf("gap: invalid length %v", s.Gap)
	}
	st.Gap = s.Gap

	values := []struct {
		key string
		raw string
		dst *layout.Value
	}{
		{"width", s.Width, &st.Width},
		{"height", s.Height, &st.Height},
		{"min-width", s.MinWidth, &st.MinWidth},
		{"min-height", s.MinHeight, &st.MinHeight},
		{"max-width", s.MaxWidth, &st.MaxWidth},
		{"max-height", s.MaxHeight, &st.MaxHeight},
	}
	for _, v := range values {
		if v.raw == "" {
			continue
		}
		if *v.dst, err = parseValue(v.raw, false); err != nil {
			return st, errors.WithMessage(err, v.key)
		}
	}

	if st.Margin, err = s.Margin.Edges(); err != nil {
		return st, errors.WithMessage(err, "margin")
	}
	if st.Padding, err = s.Padding.Edges(); err != nil {
		return st, errors.WithMessage(err, "padding")
	}
	if st.Border, err = s.Border.Edges(); err != nil {
		return st, errors.WithMessage(err, "border")
	}

	if in := s.Inset; in != nil {
		insets := []struct {
			key string
			raw string
			dst *layout.Value
		}{
			{"inset.top", in.Top, &st.Inset.Top},
			{"inset.right", in.Right, &st.Inset.Right},
			{"inset.bottom", in.Bottom, &st.Inset.Bottom},
			{"inset.left", in.Left, &st.Inset.Left},
		}
		for _, v := range insets {
			if v.raw == "" {
				continue
			}
			if *v.dst, err = parseValue(v.raw, true); err != nil {
				return st, errors.WithMessage(err, v.key)
			}
		}
	}
	return st, nil
}

// parseValue reads "auto", a length or a percentage such as "50%".
// Only insets may be negative.
func parseValue(raw string, signed bool) (layout.Value, error) {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "auto") {
		return layout.Auto(), nil
	}
	percent := strings.HasSuffix(raw, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || (!signed && v < 0) {
		return layout.Value{}, errors.Errorf("invalid value %q", raw)
	}
	if percent {
		return layout.Percent(v), nil
	}
	return layout.Fixed(v), nil
}

// parseBasis reads "auto", a length or a percentage of the container.
func parseBasis(raw string) (layout.Basis, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "auto") {
		return layout.AutoBasis(), nil
	}
	if p, ok := strings.CutSuffix(raw, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return layout.Basis{}, errors.Errorf("invalid percentage %q", raw)
		}
		return layout.RelativeBasis(v / 100)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return layout.Basis{}, errors.Errorf("invalid length %q", raw)
	}
	return layout.FixedBasis(v)
}

func validLength(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

func fixedSize(size layout.Size) layout.MeasureFunc {
	return func(*layout.Node, float64, float64) layout.Size {
		return size
	}
}

// Layout builds the tree and lays it out in the document's container.
// The result is snapped when the document sets a scale.
func (d *Document) Layout() (*layout.Node, *layout.Result, error) {
	root, err := d.Build()
	if err != nil {
		return nil, nil, err
	}
	r := layout.Calculate(root, float64(d.Width), float64(d.Height))
	if d.Scale > 0 {
		r = r.Snapped(d.Scale)
	}
	return root, r, nil
}

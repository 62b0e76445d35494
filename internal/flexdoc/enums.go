package flexdoc

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/grindlemire/go-flex/internal/layout"
)

var (
	directions = []layout.Direction{layout.Row, layout.RowReverse, layout.Column, layout.ColumnReverse}
	wraps      = []layout.Wrap{layout.NoWrap, layout.WrapForward, layout.WrapReverse}
	justifies  = []layout.Justify{
		layout.JustifyStart, layout.JustifyCenter, layout.JustifyEnd,
		layout.JustifySpaceBetween, layout.JustifySpaceAround, layout.JustifySpaceEvenly,
	}
	alignItems = []layout.AlignItems{
		layout.AlignItemsStretch, layout.AlignItemsCenter, layout.AlignItemsStart, layout.AlignItemsEnd,
	}
	alignSelves = []layout.AlignSelf{
		layout.AlignSelfAuto, layout.AlignSelfStretch, layout.AlignSelfCenter, layout.AlignSelfStart, layout.AlignSelfEnd,
	}
	alignContents = []layout.AlignContent{
		layout.AlignContentStretch, layout.AlignContentCenter, layout.AlignContentStart, layout.AlignContentEnd,
		layout.AlignContentSpaceBetween, layout.AlignContentSpaceAround, layout.AlignContentSpaceEvenly,
	}
	positions = []layout.Position{layout.PositionRelative, layout.PositionAbsolute}
)

// parseEnum matches name against the String form of each value.
// An empty name selects the first value, which is the default.
func parseEnum[T fmt.Stringer](key, name string, values []T) (T, error) {
	if name == "" {
		return values[0], nil
	}
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
		if strings.EqualFold(names[i], name) {
			return v, nil
		}
	}
	var zero T
	return zero, errors.Errorf("%s: unknown value %q (want one of %s)", key, name, strings.Join(names, ", "))
}

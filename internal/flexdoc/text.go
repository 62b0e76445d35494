package flexdoc

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/grindlemire/go-flex/internal/layout"
)

// TextSpec describes a text leaf. Content is word wrapped to the available
// width, counting terminal cells, and each cell is CharWidth wide.
type TextSpec struct {
	Content    string  `yaml:"content"`
	CharWidth  float64 `yaml:"char-width"`
	LineHeight float64 `yaml:"line-height"`
}

func (t *TextSpec) measure() (layout.MeasureFunc, error) {
	cw, lh := t.CharWidth, t.LineHeight
	if cw == 0 {
		cw = 1
	}
	if lh == 0 {
		lh = 1
	}
	if cw < 0 || lh < 0 || math.IsInf(cw, 0) || math.IsInf(lh, 0) || math.IsNaN(cw) || math.IsNaN(lh) {
		return nil, errors.Errorf("invalid char-width %v or line-height %v", t.CharWidth, t.LineHeight)
	}
	content := t.Content
	return func(_ *layout.Node, availableWidth, _ float64) layout.Size {
		// Widths past the int range, infinite or NaN, do not wrap.
		cols := math.MaxInt
		if w := availableWidth / cw; w < math.MaxInt {
			cols = max(int(w), 1)
		}
		lines := WrapText(content, cols)
		widest := 0
		for _, l := range lines {
			widest = max(widest, runewidth.StringWidth(l))
		}
		return layout.Size{Width: float64(widest) * cw, Height: float64(len(lines)) * lh}
	}, nil
}

// WrapText breaks s into lines of at most cols cells. Words are kept whole
// unless a single word is wider than cols. Explicit newlines are kept.
func WrapText(s string, cols int) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		var line strings.Builder
		width := 0
		flush := func() {
			out = append(out, line.String())
			line.Reset()
			width = 0
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		for _, w := range words {
			ww := runewidth.StringWidth(w)
			if width > 0 && width+1+ww > cols {
				flush()
			}
			for ww > cols {
				if width > 0 {
					flush()
				}
				head := runewidth.Truncate(w, cols, "")
				if head == "" {
					// A rune wider than cols still has to go somewhere.
					r := []rune(w)
					head = string(r[0])
				}
				out = append(out, head)
				w = w[len(head):]
				ww = runewidth.StringWidth(w)
			}
			if w == "" {
				continue
			}
			if width > 0 {
				line.WriteByte(' ')
				width++
			}
			line.WriteString(w)
			width += ww
		}
		if width > 0 {
			flush()
		}
	}
	return out
}

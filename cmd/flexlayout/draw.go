package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/grindlemire/go-flex/internal/flexdoc"
)

const (
	defaultColumns = 80
	maxRows        = 200
)

type drawCmd struct {
	File    string             `arg:"positional,required" help:"layout document"`
	Columns int                `arg:"-c,--columns" help:"diagram width in cells, defaults to the terminal width"`
	Width   *flexdoc.Dimension `arg:"--width" help:"container width, overrides the document"`
	Height  *flexdoc.Dimension `arg:"--height" help:"container height, overrides the document"`
}

// runDraw implements the draw subcommand.
func runDraw(cmd *drawCmd, stdout io.Writer) error {
	o := process(cmd.File, func(doc *flexdoc.Document) {
		if cmd.Width != nil {
			doc.Width = *cmd.Width
		}
		if cmd.Height != nil {
			doc.Height = *cmd.Height
		}
	}, true)
	if o.err != nil {
		return o.err
	}

	cols := cmd.Columns
	if cols <= 0 {
		cols = terminalColumns(stdout)
	}
	_, err := fmt.Fprintln(stdout, diagram(o.path, o.frames, cols))
	return err
}

func terminalColumns(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultColumns
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultColumns
	}
	return width
}

// diagram renders frames inside a titled border cols cells wide.
func diagram(title string, frames []flexdoc.Frame, cols int) string {
	if len(frames) > 0 {
		root := frames[0]
		title = fmt.Sprintf("%s  %sx%s", title, num(root.Width), num(root.Height))
	}
	body := strings.Join(canvas(frames, cols-2), "\n")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8"))
	return lipgloss.JoinVertical(lipgloss.Left, heading(title), box.Render(body))
}

// canvas draws the outline of every frame, scaled so that all frames span
// cols cells. Terminal cells are about twice as tall as they are wide, so
// rows use half the horizontal scale, squeezed further when that would
// need more than maxRows rows. Later frames draw over earlier ones.
func canvas(frames []flexdoc.Frame, cols int) []string {
	if len(frames) == 0 || cols < 2 {
		return nil
	}
	bounds := frames[0].Rect()
	for _, f := range frames[1:] {
		bounds = bounds.Union(f.Rect())
	}
	if bounds.Width <= 0 {
		return nil
	}

	sx := float64(cols-1) / bounds.Width
	sy := sx / 2
	if bounds.Height*sy > maxRows-1 {
		sy = (maxRows - 1) / bounds.Height
	}
	rows := int(math.Round(bounds.Height*sy)) + 1

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}
	scale := func(v, origin, s float64) int {
		return int(math.Round((v - origin) * s))
	}

	for _, f := range frames {
		x0, x1 := scale(f.X, bounds.X, sx), scale(f.X+f.Width, bounds.X, sx)
		y0, y1 := scale(f.Y, bounds.Y, sy), scale(f.Y+f.Height, bounds.Y, sy)
		outline(grid, x0, y0, x1, y1)
		label(grid, x0+1, y0, x1-x0-1, f.ID)
	}

	out := make([]string, rows)
	for i, row := range grid {
		var b strings.Builder
		for _, r := range row {
			if r != 0 {
				b.WriteRune(r)
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

func outline(grid [][]rune, x0, y0, x1, y1 int) {
	set := func(x, y int, r rune) {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
			grid[y][x] = r
		}
	}
	for x := x0 + 1; x < x1; x++ {
		set(x, y0, '-')
		set(x, y1, '-')
	}
	for y := y0 + 1; y < y1; y++ {
		set(x0, y, '|')
		set(x1, y, '|')
	}
	for _, c := range [][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		set(c[0], c[1], '+')
	}
}

// label writes id at (x, y), truncated to width cells. A wide rune takes
// its cell plus a zero placeholder for the next one.
func label(grid [][]rune, x, y, width int, id string) {
	if width <= 0 || y < 0 || y >= len(grid) {
		return
	}
	row := grid[y]
	for _, r := range runewidth.Truncate(id, width, "~") {
		w := runewidth.RuneWidth(r)
		if x < 0 || x+w > len(row) {
			return
		}
		row[x] = r
		for i := 1; i < w; i++ {
			row[x+i] = 0
		}
		x += w
	}
}

package main

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-flex/internal/flexdoc"
)

const formatTable = "table"

type layoutCmd struct {
	Files  []string           `arg:"positional,required" help:"layout documents"`
	Width  *flexdoc.Dimension `arg:"--width" help:"container width, a number or unconstrained; overrides the document"`
	Height *flexdoc.Dimension `arg:"--height" help:"container height, a number or unconstrained; overrides the document"`
	Scale  *float64           `arg:"--scale" help:"snap edges to a grid of 1/scale units"`
	Format string             `arg:"-f,--format" help:"output format: table, yaml or json"`
}

// outcome is the result of processing one document.
type outcome struct {
	path   string
	frames []flexdoc.Frame
	err    error
}

// parseOutputFormat accepts the encodings of flexdoc plus "table".
func parseOutputFormat(s string) (string, error) {
	if strings.EqualFold(s, formatTable) {
		return formatTable, nil
	}
	f, err := flexdoc.ParseFormat(s)
	if err != nil {
		return "", err
	}
	return string(f), nil
}

// runLayout implements the layout subcommand.
func runLayout(cmd *layoutCmd, cfg Config, stdout, stderr io.Writer) error {
	name := cmd.Format
	if name == "" {
		name = cfg.Format
	}
	format, err := parseOutputFormat(name)
	if err != nil {
		return err
	}
	if cmd.Scale != nil && *cmd.Scale < 0 {
		return errors.Errorf("invalid scale %v", *cmd.Scale)
	}

	outcomes := processAll(cmd.Files, func(doc *flexdoc.Document) {
		if cmd.Width != nil {
			doc.Width = *cmd.Width
		}
		if cmd.Height != nil {
			doc.Height = *cmd.Height
		}
		switch {
		case cmd.Scale != nil:
			doc.Scale = *cmd.Scale
		case doc.Scale == 0:
			doc.Scale = cfg.Scale
		}
	}, true)

	failed := 0
	for i, o := range outcomes {
		if o.err != nil {
			failed++
			fmt.Fprintf(stderr, "%s %v\n", errLabel("error:"), o.err)
			continue
		}
		if len(outcomes) > 1 {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintln(stdout, heading("# "+o.path))
		}
		if err := writeFrames(stdout, format, o.frames); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d document(s) failed", failed, len(outcomes))
	}
	return nil
}

// processAll loads every document concurrently. prepare may adjust a
// document before it is built. When solve is set the document is laid out
// and its frames recorded.
func processAll(paths []string, prepare func(*flexdoc.Document), solve bool) []outcome {
	out := make([]outcome, len(paths))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			out[i] = process(path, prepare, solve)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func process(path string, prepare func(*flexdoc.Document), solve bool) outcome {
	o := outcome{path: path}
	doc, err := flexdoc.Load(path)
	if err != nil {
		o.err = err
		return o
	}
	if prepare != nil {
		prepare(doc)
	}
	if !solve {
		if _, err := doc.Build(); err != nil {
			o.err = errors.Wrapf(err, "%s", path)
		}
		return o
	}
	_, r, err := doc.Layout()
	if err != nil {
		o.err = errors.Wrapf(err, "%s", path)
		return o
	}
	o.frames = flexdoc.Frames(r)
	return o
}

func writeFrames(w io.Writer, format string, frames []flexdoc.Frame) error {
	if format != formatTable {
		return flexdoc.Encode(w, flexdoc.Format(format), frames)
	}
	_, err := fmt.Fprintln(w, framesTable(frames))
	return err
}

// framesTable renders frames as a bordered table.
func framesTable(frames []flexdoc.Frame) string {
	rows := make([][]string, len(frames))
	for i, f := range frames {
		rows[i] = []string{idLabel(f.ID), num(f.X), num(f.Y), num(f.Width), num(f.Height)}
	}
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "X", "Y", "WIDTH", "HEIGHT").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

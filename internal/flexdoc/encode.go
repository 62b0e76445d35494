package flexdoc

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Frame is the encoded border box of one node.
type Frame struct {
	ID     string  `yaml:"id" json:"id"`
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Rect returns the frame as a layout.Rect.
func (f Frame) Rect() layout.Rect {
	return layout.NewRect(f.X, f.Y, f.Width, f.Height)
}

// Frames lists the frames of a result in tree order.
func Frames(r *layout.Result) []Frame {
	nodes := r.Nodes()
	out := make([]Frame, 0, len(nodes))
	for _, n := range nodes {
		rect, _ := r.Rect(n)
		out = append(out, Frame{
			ID:     n.ID,
			X:      rect.X,
			Y:      rect.Y,
			Width:  rect.Width,
			Height: rect.Height,
		})
	}
	return out
}

// Format selects an encoding for Encode.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat matches a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, FormatJSON:
		return f, nil
	}
	return "", errors.Errorf("unknown format %q", s)
}

// Encode writes frames to w.
func Encode(w io.Writer, f Format, frames []Frame) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(frames); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(enc.Close(), "encoding yaml")
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(frames), "encoding json")
	default:
		return errors.Errorf("unknown format %q", f)
	}
}

// Decode reads frames written by Encode.
func Decode(r io.Reader, f Format) ([]Frame, error) {
	var frames []Frame
	switch f {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&frames); err != nil {
			return nil, errors.Wrap(err, "decoding yaml")
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&frames); err != nil {
			return nil, errors.Wrap(err, "decoding json")
		}
	default:
		return nil, errors.Errorf("unknown format %q", f)
	}
	return frames, nil
}

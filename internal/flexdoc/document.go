package flexdoc

import (
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Document is a decoded layout document.
type Document struct {
	Width  Dimension `yaml:"width"`
	Height Dimension `yaml:"height"`
	Scale  float64   `yaml:"scale"`
	Root   *NodeSpec `yaml:"root"`
}

// NodeSpec is one node of a document, before validation.
// Sizes and bases are kept as text so that Build can report errors with
// the node's path.
type NodeSpec struct {
	ID string `yaml:"id"`

	Direction    string `yaml:"direction"`
	Wrap         string `yaml:"wrap"`
	Justify      string `yaml:"justify"`
	AlignItems   string `yaml:"align-items"`
	AlignContent string `yaml:"align-content"`
	AlignSelf    string `yaml:"align-self"`
	Position     string `yaml:"position"`

	Basis  string   `yaml:"basis"`
	Grow   float64  `yaml:"grow"`
	Shrink *float64 `yaml:"shrink"`
	Order  int      `yaml:"order"`
	Gap    float64  `yaml:"gap"`

	Width     string `yaml:"width"`
	Height    string `yaml:"height"`
	MinWidth  string `yaml:"min-width"`
	MinHeight string `yaml:"min-height"`
	MaxWidth  string `yaml:"max-width"`
	MaxHeight string `yaml:"max-height"`

	Margin  EdgeList   `yaml:"margin"`
	Padding EdgeList   `yaml:"padding"`
	Border  EdgeList   `yaml:"border"`
	Inset   *InsetSpec `yaml:"inset"`

	Measure *SizeSpec `yaml:"measure"`
	Text    *TextSpec `yaml:"text"`

	Children []*NodeSpec `yaml:"children"`
}

// InsetSpec holds the offsets of an absolutely positioned node.
type InsetSpec struct {
	Top    string `yaml:"top"`
	Right  string `yaml:"right"`
	Bottom string `yaml:"bottom"`
	Left   string `yaml:"left"`
}

// SizeSpec is a fixed intrinsic content size.
type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Dimension is a container size: a number or "unconstrained".
type Dimension float64

func (d *Dimension) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: container size must be a number or %q", n.Line, "unconstrained")
	}
	v, err := parseDimension(n.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", n.Line)
	}
	*d = v
	return nil
}

// UnmarshalText lets flags take the same values as documents.
func (d *Dimension) UnmarshalText(b []byte) error {
	v, err := parseDimension(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func parseDimension(s string) (Dimension, error) {
	if strings.EqualFold(s, "unconstrained") {
		return Dimension(layout.Unconstrained), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, -1) || v < 0 {
		return 0, errors.Errorf("invalid container size %q", s)
	}
	return Dimension(v), nil
}

func (d Dimension) String() string {
	if math.IsInf(float64(d), 1) {
		return "unconstrained"
	}
	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}

func (d Dimension) MarshalYAML() (any, error) {
	if math.IsInf(float64(d), 1) {
		return "unconstrained", nil
	}
	return float64(d), nil
}

// EdgeList is a CSS style shorthand of one, two or four numbers.
type EdgeList []float64

func (e *EdgeList) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		*e = EdgeList{v}
		return nil
	case yaml.SequenceNode:
		var vs []float64
		if err := n.Decode(&vs); err != nil {
			return err
		}
		*e = vs
		return nil
	default:
		return errors.Errorf("line %d: edges must be a number or a list of numbers", n.Line)
	}
}

// Edges expands the shorthand.
func (e EdgeList) Edges() (layout.Edges, error) {
	for _, v := range e {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return layout.Edges{}, errors.Errorf("invalid edge value %v", v)
		}
	}
	switch len(e) {
	case 0:
		return layout.Edges{}, nil
	case 1:
		return layout.EdgeAll(e[0]), nil
	case 2:
		return layout.EdgeSymmetric(e[0], e[1]), nil
	case 4:
		return layout.EdgeTRBL(e[0], e[1], e[2], e[3]), nil
	default:
		return layout.Edges{}, errors.Errorf("edges take 1, 2 or 4 values, got %d", len(e))
	}
}

// Parse decodes a document. Unknown keys are rejected.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{
		Width:  Dimension(layout.Unconstrained),
		Height: Dimension(layout.Unconstrained),
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty document")
		}
		return nil, errors.Wrap(err, "decoding document")
	}
	if doc.Root == nil {
		return nil, errors.New("document has no root")
	}
	if doc.Scale < 0 || math.IsNaN(doc.Scale) {
		return nil, errors.Errorf("invalid scale %v", doc.Scale)
	}
	return doc, nil
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening document")
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return doc, nil
}

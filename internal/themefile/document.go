// Package themefile translates theme families to and from their persisted
// yaml documents. System families are compiled in and never pass through this
// package; user families round-trip through it.
package themefile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/palette/internal/color"
)

// ErrMalformedDocument marks structurally invalid persisted input: wrong
// shape, missing required fields, ramps of the wrong length.
var ErrMalformedDocument = errors.New("malformed theme document")

// Document is the persisted shape of one theme family. Optional tables carry
// omitempty so a family that tracks the default catalog serializes without an
// empty ramp_sets key, and a diff against a hand-authored file shows only
// real changes. Serialized tables are keyed alphabetically.
type Document struct {
	Name      string                `yaml:"name"`
	Author    string                `yaml:"author,omitempty"`
	Metadata  map[string]string     `yaml:"metadata,omitempty"`
	RampSets  map[string]RampSetDoc `yaml:"ramp_sets,omitempty"`
	Overrides map[string]RefDoc     `yaml:"overrides,omitempty"`
	Themes    []ThemeDoc            `yaml:"themes,omitempty"`
}

// RampSetDoc holds the four 12-entry color arrays of one ramp set.
type RampSetDoc struct {
	SolidLight       []ColorDoc `yaml:"solid_light"`
	SolidDark        []ColorDoc `yaml:"solid_dark"`
	TransparentLight []ColorDoc `yaml:"transparent_light"`
	TransparentDark  []ColorDoc `yaml:"transparent_dark"`
}

// ThemeDoc is one theme block within a family document.
type ThemeDoc struct {
	Name       string            `yaml:"name"`
	Appearance string            `yaml:"appearance"`
	Overrides  map[string]RefDoc `yaml:"overrides,omitempty"`
}

// ColorDoc wraps an absolute color, serialized as a 4-number flow sequence
// [h, s, l, a]. Channels are clamped on read, matching construction-time
// clamping everywhere else.
type ColorDoc struct {
	Color color.Hsla
}

// UnmarshalYAML decodes a [h, s, l, a] sequence.
func (d *ColorDoc) UnmarshalYAML(node *yaml.Node) error {
	channels, err := decodeChannels(node)
	if err != nil {
		return err
	}
	d.Color = color.New(channels[0], channels[1], channels[2], channels[3])
	return nil
}

// MarshalYAML renders the color as a flow sequence.
func (d ColorDoc) MarshalYAML() (interface{}, error) {
	return tupleNode(d.Color), nil
}

// RefDoc wraps a color reference. A literal color is written as a 4-number
// sequence; a scale reference as a "set/transparency/index" scalar.
type RefDoc struct {
	Ref color.Reference
}

// UnmarshalYAML decodes either reference form.
func (d *RefDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		channels, err := decodeChannels(node)
		if err != nil {
			return err
		}
		d.Ref = color.StaticRef(color.New(channels[0], channels[1], channels[2], channels[3]))
		return nil
	case yaml.ScalarNode:
		ref, err := ParseScaleRef(node.Value)
		if err != nil {
			return err
		}
		d.Ref = ref
		return nil
	default:
		return fmt.Errorf("%w: color reference must be a tuple or a ramp reference string", ErrMalformedDocument)
	}
}

// MarshalYAML renders the reference in its textual form.
func (d RefDoc) MarshalYAML() (interface{}, error) {
	if d.Ref.Kind() == color.KindStatic {
		return tupleNode(d.Ref.Static()), nil
	}
	return d.Ref.String(), nil
}

// ParseScaleRef parses the "set/transparency/index" form, e.g.
// "gray/solid/4". Index range is checked against the effective catalog at
// load validation, not here.
func ParseScaleRef(s string) (color.Reference, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return color.Reference{}, fmt.Errorf("%w: ramp reference %q is not set/transparency/index", ErrMalformedDocument, s)
	}
	set := strings.TrimSpace(parts[0])
	if set == "" {
		return color.Reference{}, fmt.Errorf("%w: ramp reference %q has no set name", ErrMalformedDocument, s)
	}
	transparency, err := color.ParseTransparency(strings.TrimSpace(parts[1]))
	if err != nil {
		return color.Reference{}, fmt.Errorf("%w: ramp reference %q: %v", ErrMalformedDocument, s, err)
	}
	index, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return color.Reference{}, fmt.Errorf("%w: ramp reference %q has a non-numeric index", ErrMalformedDocument, s)
	}
	return color.ScaleRef(set, transparency, index), nil
}

func decodeChannels(node *yaml.Node) ([4]float64, error) {
	var channels [4]float64
	if node.Kind != yaml.SequenceNode || len(node.Content) != len(channels) {
		return channels, fmt.Errorf("%w: color literal must be a 4-number sequence", ErrMalformedDocument)
	}
	for i, item := range node.Content {
		if err := item.Decode(&channels[i]); err != nil {
			return channels, fmt.Errorf("%w: color channel %d: %v", ErrMalformedDocument, i, err)
		}
	}
	return channels, nil
}

func tupleNode(c color.Hsla) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []float64{c.H, c.S, c.L, c.A} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(v, 'g', -1, 64),
		})
	}
	return node
}

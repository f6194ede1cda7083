package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jdginn/go-acoustic-scene/scene"
)

// SceneConfig describes a complete multi-microphone scene: the room, the
// microphone array and the sound sources to place in it.
type SceneConfig struct {
	Room     Room         `yaml:"room"`
	MicArray MicArray     `yaml:"mic_array"`
	Sources  []SourceSpec `yaml:"sources,omitempty"`
}

type Room struct {
	Dimensions [3]float64 `yaml:"dimensions"` // x, y, z extents in meters
}

type MicArray struct {
	// Explicit microphone positions, mutually exclusive with Layout
	Positions [][3]float64 `yaml:"positions,omitempty"`
	// Named array layout, mutually exclusive with Positions
	Layout      *Layout       `yaml:"layout,omitempty"`
	Orientation Orientation   `yaml:"orientation,omitempty"`
	Placement   PlacementSpec `yaml:"placement,omitempty"`
}

type Layout struct {
	Type    string  `yaml:"type"` // linear or circular
	NumMics int     `yaml:"num_mics"`
	Spacing float64 `yaml:"spacing,omitempty"` // linear only, meters
	Radius  float64 `yaml:"radius,omitempty"`  // circular only, meters
	Axis    string  `yaml:"axis,omitempty"`    // linear only, defaults to x
}

type Orientation struct {
	Yaw   float64 `yaml:"yaw,omitempty"`
	Pitch float64 `yaml:"pitch,omitempty"`
	Roll  float64 `yaml:"roll,omitempty"`
}

type SourceSpec struct {
	Name      string        `yaml:"name,omitempty"`
	Placement PlacementSpec `yaml:"placement,omitempty"`
}

type PlacementSpec struct {
	X            AxisValue `yaml:"x,omitempty"`
	Y            AxisValue `yaml:"y,omitempty"`
	Height       AxisValue `yaml:"height,omitempty"`
	MinToWall    float64   `yaml:"min_to_wall,omitempty"`
	ObjectRadius float64   `yaml:"object_radius,omitempty"`
}

// AxisValue is a per-axis placement value that may be absent (free within
// the room bounds), a scalar (fixed coordinate) or a [min, max] list.
type AxisValue struct {
	set    bool
	list   bool
	values []float64
}

func (v *AxisValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("axis value: %w", err)
		}
		*v = AxisValue{set: true, values: []float64{f}}
	case yaml.SequenceNode:
		var fs []float64
		if err := node.Decode(&fs); err != nil {
			return fmt.Errorf("axis value: %w", err)
		}
		*v = AxisValue{set: true, list: true, values: fs}
	default:
		return fmt.Errorf("axis value must be null, a scalar or a [min, max] list")
	}
	return nil
}

// Constraint converts the value into the scene-level tagged union. The field
// name is used for error reporting.
func (v AxisValue) Constraint(field string) (scene.AxisConstraint, error) {
	switch {
	case !v.set:
		return scene.FreeAxis(), nil
	case !v.list:
		return scene.FixedAxis(v.values[0]), nil
	case len(v.values) == 2:
		return scene.RangeAxis(v.values[0], v.values[1]), nil
	default:
		return scene.AxisConstraint{}, scene.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("range must have exactly two elements, got %d", len(v.values)),
		}
	}
}

// Placement converts the spec into a scene placement.
func (p PlacementSpec) Placement(field string) (scene.Placement, error) {
	x, err := p.X.Constraint(field + ".x")
	if err != nil {
		return scene.Placement{}, err
	}
	y, err := p.Y.Constraint(field + ".y")
	if err != nil {
		return scene.Placement{}, err
	}
	height, err := p.Height.Constraint(field + ".height")
	if err != nil {
		return scene.Placement{}, err
	}
	return scene.Placement{X: x, Y: y, Height: height, MinToWall: p.MinToWall}, nil
}

// Resolve validates the spec against the room and returns the concrete
// [min, max] sampling range per axis.
func (p PlacementSpec) Resolve(field string, roomDim scene.RoomDimensions) ([3][2]float64, error) {
	placement, err := p.Placement(field)
	if err != nil {
		return [3][2]float64{}, err
	}
	return scene.ConvertPlacementToRange(placement, roomDim, p.ObjectRadius)
}

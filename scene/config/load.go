package config

import (
	"fmt"
	"os"

	"github.com/fogleman/pt/pt"
	"gopkg.in/yaml.v3"

	"github.com/jdginn/go-acoustic-scene/scene"
)

// LoadFromFile loads a SceneConfig from a YAML file and validates it eagerly
func LoadFromFile(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	config := &SceneConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}

	if errs := config.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("validating scene file: %s", FormatValidationErrors(errs))
	}

	return config, nil
}

// BuildArray constructs the microphone array geometry described by the
// config, with its orientation applied.
func (c *SceneConfig) BuildArray() (*scene.ArrayGeometry, error) {
	var array *scene.ArrayGeometry
	var err error

	switch {
	case len(c.MicArray.Positions) > 0:
		positions := make([]pt.Vector, len(c.MicArray.Positions))
		for i, p := range c.MicArray.Positions {
			positions[i] = scene.V(p[0], p[1], p[2])
		}
		array, err = scene.NewArrayGeometry(positions)
	case c.MicArray.Layout != nil:
		array, err = c.MicArray.Layout.Build()
	default:
		err = scene.ValidationError{Field: "mic_array", Message: "either positions or layout must be specified"}
	}
	if err != nil {
		return nil, err
	}

	o := c.MicArray.Orientation
	if o.Yaw != 0 || o.Pitch != 0 || o.Roll != 0 {
		return array.NewRotatedArray(o.Yaw, o.Pitch, o.Roll)
	}
	return array, nil
}

// Build constructs the geometry for a named layout.
func (l *Layout) Build() (*scene.ArrayGeometry, error) {
	switch l.Type {
	case "linear":
		axis := scene.AxisX
		switch l.Axis {
		case "", "x":
		case "y":
			axis = scene.AxisY
		case "z":
			axis = scene.AxisZ
		default:
			return nil, scene.ValidationError{Field: "mic_array.layout.axis", Message: "must be x, y or z"}
		}
		return scene.NewLinearArray(l.NumMics, l.Spacing, axis)
	case "circular":
		return scene.NewCircularArray(l.NumMics, l.Radius)
	default:
		return nil, scene.ValidationError{Field: "mic_array.layout.type", Message: "must be linear or circular"}
	}
}

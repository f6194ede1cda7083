package config

import (
	"fmt"
	"strings"

	"github.com/jdginn/go-acoustic-scene/scene"
)

func validatePositive(field string, value float64) []scene.ValidationError {
	if value <= 0 {
		return []scene.ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func asValidationErrors(err error) []scene.ValidationError {
	if err == nil {
		return nil
	}
	if verr, ok := err.(scene.ValidationError); ok {
		return []scene.ValidationError{verr}
	}
	return []scene.ValidationError{{Field: "scene", Message: err.Error()}}
}

// FormatValidationErrors renders errors grouped by their top-level field
func FormatValidationErrors(errs []scene.ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	categories := map[string][]scene.ValidationError{}
	order := []string{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		if _, ok := categories[category]; !ok {
			order = append(order, category)
		}
		categories[category] = append(categories[category], err)
	}

	for _, category := range order {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs eager validation on the entire scene configuration
func (c *SceneConfig) Validate() []scene.ValidationError {
	var errors []scene.ValidationError
	errors = append(errors, c.Room.Validate()...)
	errors = append(errors, c.MicArray.Validate(c.Room)...)
	for i, source := range c.Sources {
		errors = append(errors, source.Validate(fmt.Sprintf("sources.%d", i), c.Room)...)
	}
	return errors
}

func (r Room) Validate() []scene.ValidationError {
	var errors []scene.ValidationError
	for i, name := range []string{"x", "y", "z"} {
		errors = append(errors, validatePositive("room.dimensions."+name, r.Dimensions[i])...)
	}
	return errors
}

func (m *MicArray) Validate(room Room) []scene.ValidationError {
	var errors []scene.ValidationError

	if len(m.Positions) == 0 && m.Layout == nil {
		errors = append(errors, scene.ValidationError{
			Field:   "mic_array",
			Message: "either positions or layout must be specified",
		})
	}
	if len(m.Positions) > 0 && m.Layout != nil {
		errors = append(errors, scene.ValidationError{
			Field:   "mic_array",
			Message: "positions and layout are mutually exclusive",
		})
	}

	if m.Layout != nil {
		errors = append(errors, m.Layout.Validate()...)
	}

	if _, err := scene.CheckAngle(scene.Yaw, []float64{m.Orientation.Yaw}); err != nil {
		errors = append(errors, scene.ValidationError{Field: "mic_array.orientation.yaw", Message: err.Error()})
	}
	if _, err := scene.CheckAngle(scene.Pitch, []float64{m.Orientation.Pitch}); err != nil {
		errors = append(errors, scene.ValidationError{Field: "mic_array.orientation.pitch", Message: err.Error()})
	}
	if _, err := scene.CheckAngle(scene.Roll, []float64{m.Orientation.Roll}); err != nil {
		errors = append(errors, scene.ValidationError{Field: "mic_array.orientation.roll", Message: err.Error()})
	}

	if _, err := m.Placement.Resolve("mic_array.placement", scene.RoomDimensions(room.Dimensions)); err != nil {
		errors = append(errors, asValidationErrors(err)...)
	}

	return errors
}

func (l *Layout) Validate() []scene.ValidationError {
	var errors []scene.ValidationError

	switch l.Type {
	case "linear":
		if l.Spacing < 0 {
			errors = append(errors, scene.ValidationError{
				Field:   "mic_array.layout.spacing",
				Message: "must be non-negative",
			})
		}
		switch l.Axis {
		case "", "x", "y", "z":
		default:
			errors = append(errors, scene.ValidationError{
				Field:   "mic_array.layout.axis",
				Message: "must be x, y or z",
			})
		}
	case "circular":
		if l.Radius < 0 {
			errors = append(errors, scene.ValidationError{
				Field:   "mic_array.layout.radius",
				Message: "must be non-negative",
			})
		}
	default:
		errors = append(errors, scene.ValidationError{
			Field:   "mic_array.layout.type",
			Message: "must be linear or circular",
		})
	}

	if l.NumMics < 1 {
		errors = append(errors, scene.ValidationError{
			Field:   "mic_array.layout.num_mics",
			Message: "must be at least 1",
		})
	}

	return errors
}

func (s SourceSpec) Validate(field string, room Room) []scene.ValidationError {
	if _, err := s.Placement.Resolve(field+".placement", scene.RoomDimensions(room.Dimensions)); err != nil {
		return asValidationErrors(err)
	}
	return nil
}

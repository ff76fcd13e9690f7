package convert

import (
	"fmt"
	"strconv"
	"strings"
)

// RotationSpec pairs a zero-based input image index with a rotation angle
// in degrees. Rotation is counter-clockwise with the canvas expanded, so
// nothing is cropped.
type RotationSpec struct {
	Index int
	Angle float64
}

// ParseRotationSpecs parses repeated "INDEX,ANGLE" flag values into
// rotation specs. Index validation against the input list happens later,
// once the list length is known.
func ParseRotationSpecs(values []string) ([]RotationSpec, error) {
	specs := make([]RotationSpec, 0, len(values))

	for _, value := range values {
		spec, err := parseRotationSpec(value)
		if err != nil {
			return nil, err
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

func parseRotationSpec(value string) (RotationSpec, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return RotationSpec{}, fmt.Errorf(
			"%w: %q is not in INDEX,ANGLE form",
			ErrInvalidRotation,
			value,
		)
	}

	index, indexErr := strconv.Atoi(strings.TrimSpace(parts[0]))
	if indexErr != nil {
		return RotationSpec{}, fmt.Errorf(
			"%w: index %q is not an integer",
			ErrInvalidRotation,
			parts[0],
		)
	}

	angle, angleErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if angleErr != nil {
		return RotationSpec{}, fmt.Errorf(
			"%w: angle %q is not a number",
			ErrInvalidRotation,
			parts[1],
		)
	}

	return RotationSpec{Index: index, Angle: angle}, nil
}

// rotationByIndex validates every spec against the input list length and
// flattens the specs into an index-to-angle lookup. When several specs
// target the same index, the last one wins; that tie-break is documented
// behavior, not an accident.
func rotationByIndex(specs []RotationSpec, inputCount int) (map[int]float64, error) {
	angles := make(map[int]float64, len(specs))

	for _, spec := range specs {
		if spec.Index < 0 || spec.Index >= inputCount {
			return nil, fmt.Errorf(
				"%w: index %d out of range for %d input image(s)",
				ErrInvalidRotation,
				spec.Index,
				inputCount,
			)
		}

		angles[spec.Index] = spec.Angle
	}

	return angles, nil
}

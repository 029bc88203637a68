package vector

import (
	"fmt"
	"strings"
)

type Direction int

const (
	DirectionUnknown Direction = iota
	Clockwise
	CounterClockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "clockwise":
		return Clockwise, nil
	case "left", "counterclockwise":
		return CounterClockwise, nil
	}

	return DirectionUnknown, fmt.Errorf("%w: rotation direction %q", ErrInvalidArgument, s)
}

// Rotate turns a 2-component vector by 90 degrees.
func (v Vector) Rotate(d Direction) (Vector, error) {
	if len(v.components) != 2 {
		return Vector{}, fmt.Errorf("%w: rotate needs 2 components, got %d", ErrInvalidArgument, len(v.components))
	}

	x, y := v.components[0], v.components[1]

	switch d {
	case Clockwise:
		return New(y, -x), nil
	case CounterClockwise:
		return New(-y, x), nil
	}

	return Vector{}, fmt.Errorf("%w: rotation direction %s", ErrInvalidArgument, d)
}

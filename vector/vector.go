// Package vector provides an immutable fixed-length numeric tuple.
package vector

import (
	"fmt"
	"math"
	"strings"
)

// Vector is an immutable sequence of float64 components. Every operation returns
// a new Vector. The zero value is the empty vector.
type Vector struct {
	components []float64
}

func New(components ...float64) Vector {
	if len(components) == 0 {
		return Vector{}
	}

	return Vector{
		components: append([]float64(nil), components...),
	}
}

func (v Vector) Get(index int) (float64, error) {
	if index < 0 || index >= len(v.components) {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(v.components))
	}

	return v.components[index], nil
}

func (v Vector) Len() int {
	return len(v.components)
}

// Components returns a copy of the components.
func (v Vector) Components() []float64 {
	return append([]float64(nil), v.components...)
}

func (v Vector) Scale(scalar float64) Vector {
	r := make([]float64, len(v.components))
	for idx, c := range v.components {
		r[idx] = c * scalar
	}

	return Vector{components: r}
}

// Add returns the elementwise sum. Vectors of different length are rejected
// rather than truncated to the shorter one.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v.components) != len(other.components) {
		return Vector{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(v.components), len(other.components))
	}

	r := make([]float64, len(v.components))
	for idx := range v.components {
		r[idx] = v.components[idx] + other.components[idx]
	}

	return Vector{components: r}, nil
}

func (v Vector) Norm() float64 {
	var sum float64

	for _, c := range v.components {
		sum += c * c
	}

	return math.Sqrt(sum)
}

func (v Vector) Equal(other Vector) bool {
	if len(v.components) != len(other.components) {
		return false
	}

	for idx := range v.components {
		if v.components[idx] != other.components[idx] {
			return false
		}
	}

	return true
}

func (v Vector) String() string {
	var ss strings.Builder

	ss.WriteString("[")

	for idx, c := range v.components {
		if idx > 0 {
			ss.WriteString(", ")
		}

		ss.WriteString(fmt.Sprintf("%g", c))
	}

	ss.WriteString("]")

	return ss.String()
}

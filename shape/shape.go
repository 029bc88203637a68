// Package shape holds a closed set of 2D shapes and a grouper that partitions
// them by kind.
package shape

import "math"

type Kind string

const (
	KindCircle    Kind = "Circle"
	KindRectangle Kind = "Rectangle"
	KindSquare    Kind = "Square"
)

// Shape is implemented only by the variants of this package.
type Shape interface {
	Kind() Kind
	Circumference() float64
	Area() float64

	sealed()
}

type Circle struct {
	Radius float64 `json:"radius" yaml:"radius"`
}

func (Circle) Kind() Kind {
	return KindCircle
}

func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (Circle) sealed() {}

type Rectangle struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

func (Rectangle) Kind() Kind {
	return KindRectangle
}

func (r Rectangle) Circumference() float64 {
	return 2 * (r.Width + r.Height)
}

func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

func (Rectangle) sealed() {}

type Square struct {
	Side float64 `json:"side" yaml:"side"`
}

func (Square) Kind() Kind {
	return KindSquare
}

func (s Square) Circumference() float64 {
	return 4 * s.Side
}

func (s Square) Area() float64 {
	return s.Side * s.Side
}

func (Square) sealed() {}

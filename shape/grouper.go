package shape

import (
	"fmt"
	"iter"
)

type group struct {
	kind   Kind
	shapes []Shape
}

// Grouper partitions shapes by kind once, at construction. Groups keep the
// order in which their kind first appeared, members keep input order.
type Grouper struct {
	groups []group
	index  map[Kind]int
	count  int
}

func NewGrouper(shapes []Shape) (*Grouper, error) {
	g := &Grouper{
		index: make(map[Kind]int),
	}

	for idx, s := range shapes {
		if s == nil {
			return nil, fmt.Errorf("%w: nil shape at %d", ErrInvalidArgument, idx)
		}

		kind := s.Kind()

		gi, ok := g.index[kind]
		if !ok {
			gi = len(g.groups)
			g.index[kind] = gi
			g.groups = append(g.groups, group{kind: kind})
		}

		g.groups[gi].shapes = append(g.groups[gi].shapes, s)
		g.count++
	}

	return g, nil
}

// Groups yields every (kind, members) pair. Each call starts over from the
// first group; the yielded slices are copies.
func (g *Grouper) Groups() iter.Seq2[Kind, []Shape] {
	return func(yield func(Kind, []Shape) bool) {
		for _, gr := range g.groups {
			if !yield(gr.kind, append([]Shape(nil), gr.shapes...)) {
				return
			}
		}
	}
}

func (g *Grouper) Kinds() []Kind {
	kinds := make([]Kind, 0, len(g.groups))
	for _, gr := range g.groups {
		kinds = append(kinds, gr.kind)
	}

	return kinds
}

func (g *Grouper) Group(kind Kind) []Shape {
	gi, ok := g.index[kind]
	if !ok {
		return nil
	}

	return append([]Shape(nil), g.groups[gi].shapes...)
}

func (g *Grouper) Len() int {
	return g.count
}

func (g *Grouper) Aggregate(fn func(s Shape) float64) map[Kind]float64 {
	m := make(map[Kind]float64, len(g.groups))

	for _, gr := range g.groups {
		var sum float64

		for _, s := range gr.shapes {
			sum += fn(s)
		}

		m[gr.kind] = sum
	}

	return m
}

func (g *Grouper) TotalSize() map[Kind]float64 {
	return g.Aggregate(Shape.Circumference)
}

func (g *Grouper) TotalArea() map[Kind]float64 {
	return g.Aggregate(Shape.Area)
}

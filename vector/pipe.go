package vector

type Func func(v Vector) (Vector, error)

// Pipe feeds v through fns in order and stops at the first error.
func (v Vector) Pipe(fns ...Func) (Vector, error) {
	var err error

	for _, fn := range fns {
		if fn == nil {
			continue
		}

		v, err = fn(v)
		if err != nil {
			return Vector{}, err
		}
	}

	return v, nil
}

func Rotation(d Direction) Func {
	return func(v Vector) (Vector, error) {
		return v.Rotate(d)
	}
}

func Scaling(scalar float64) Func {
	return func(v Vector) (Vector, error) {
		return v.Scale(scalar), nil
	}
}

func Adding(other Vector) Func {
	return func(v Vector) (Vector, error) {
		return v.Add(other)
	}
}

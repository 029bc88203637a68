// Package pipeline wraps data transformation steps with debug logging of their
// input, output and duration.
package pipeline

import (
	"fmt"
	"time"

	"github.com/sgostarter/i/l"
)

type Step[In, Out any] func(in In) (Out, error)

type Describer interface {
	Describe() string
}

type lener interface {
	Len() int
}

func Describe(v any) string {
	if v == nil {
		return "<None>"
	}

	switch d := v.(type) {
	case Describer:
		return d.Describe()
	case lener:
		return fmt.Sprintf("rows: %d", d.Len())
	}

	return fmt.Sprintf("%T", v)
}

func Logged[In, Out any](name string, step Step[In, Out], logger l.Wrapper) Step[In, Out] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField("step", name))

	return func(in In) (out Out, err error) {
		logger.WithFields(l.StringField("input", Describe(in))).Debug("calling pipeline function")

		start := time.Now()

		out, err = step(in)

		took := time.Since(start)

		if err != nil {
			logger.WithFields(l.ErrorField(err), l.StringField("took", took.String())).Error("pipeline function failed")

			return
		}

		logger.WithFields(l.StringField("output", Describe(out))).Debug("returning")
		logger.WithFields(l.StringField("took", took.String())).Debug("done")

		return
	}
}

// Then chains two steps; second is not called when first fails.
func Then[A, B, C any](first Step[A, B], second Step[B, C]) Step[A, C] {
	return func(in A) (out C, err error) {
		mid, err := first(in)
		if err != nil {
			return
		}

		return second(mid)
	}
}

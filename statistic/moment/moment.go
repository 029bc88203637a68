// Package moment computes the mean and population variance of a sample.
package moment

import (
	"errors"

	"github.com/spf13/cast"
)

var ErrNoData = errors.New("no data")

func Mean(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, ErrNoData
	}

	var sum float64

	for _, n := range numbers {
		sum += n
	}

	return sum / float64(len(numbers)), nil
}

// Variance is the population variance: the mean squared distance from the mean.
func Variance(numbers []float64) (float64, error) {
	mu, err := Mean(numbers)
	if err != nil {
		return 0, err
	}

	var sum float64

	for _, n := range numbers {
		sum += (n - mu) * (n - mu)
	}

	return sum / float64(len(numbers)), nil
}

// ToFloats converts loosely typed values (ints, numeric strings, ...) for Mean
// and Variance.
func ToFloats(values []interface{}) ([]float64, error) {
	fs := make([]float64, 0, len(values))

	for _, v := range values {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}

	return fs, nil
}

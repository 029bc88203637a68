package pipeline

import (
	"errors"
	"strconv"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
)

type table []int

func (t table) Describe() string {
	return "rows: " + strconv.Itoa(len(t)) + ", columns: v"
}

type rows []string

func (r rows) Len() int {
	return len(r)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "<None>", Describe(nil))
	assert.Equal(t, "rows: 2, columns: v", Describe(table{1, 2}))
	assert.Equal(t, "rows: 3", Describe(rows{"a", "b", "c"}))
	assert.Equal(t, "int", Describe(1))
}

func TestLogged(t *testing.T) {
	var calls int

	double := Logged[table, table]("double", func(in table) (table, error) {
		calls++

		out := make(table, 0, len(in))
		for _, v := range in {
			out = append(out, v*2)
		}

		return out, nil
	}, l.NewConsoleLoggerWrapper())

	out, err := double(table{1, 2, 3})
	assert.Nil(t, err)
	assert.Equal(t, table{2, 4, 6}, out)
	assert.EqualValues(t, 1, calls)
}

func TestLoggedError(t *testing.T) {
	errBad := errors.New("bad")

	step := Logged[int, int]("fail", func(int) (int, error) {
		return 0, errBad
	}, nil)

	_, err := step(1)
	assert.True(t, errors.Is(err, errBad))
}

func TestThen(t *testing.T) {
	toString := Step[int, string](func(in int) (string, error) {
		return strconv.Itoa(in), nil
	})
	length := Step[string, int](func(in string) (int, error) {
		return len(in), nil
	})

	n, err := Then(toString, length)(12345)
	assert.Nil(t, err)
	assert.EqualValues(t, 5, n)

	errBad := errors.New("bad")
	failing := Step[int, string](func(int) (string, error) {
		return "", errBad
	})

	_, err = Then(failing, length)(1)
	assert.True(t, errors.Is(err, errBad))
}

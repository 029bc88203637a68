package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefix(t *testing.T) {
	users := []User{
		{ID: 1, Name: "alice", Email: "alice@example.com"},
		{ID: 2, Name: "bob"},
		{ID: 3, Name: "carol"},
		{ID: 4, Name: ""},
		{ID: 5, Name: "émile"},
	}

	r := Prefix(users, map[string]string{
		"a": "Dr. ",
		"b": "Mr. ",
		"é": "M. ",
	})

	assert.Equal(t, []string{"Dr. alice", "Mr. bob", "carol", "", "M. émile"}, r)

	assert.Empty(t, Prefix(nil, nil))
	assert.Equal(t, []string{"bob"}, Prefix([]User{{Name: "bob"}}, nil))
}

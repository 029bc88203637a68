// Package names decorates user names with per-initial prefixes.
package names

import (
	"unicode/utf8"
)

type User struct {
	ID    uint64 `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Prefix returns every user name preceded by prefixes[first letter of the name].
// Names whose initial has no prefix, and empty names, are returned unchanged.
func Prefix(users []User, prefixes map[string]string) []string {
	r := make([]string, 0, len(users))

	for _, u := range users {
		initial, _ := utf8.DecodeRuneInString(u.Name)
		if initial == utf8.RuneError {
			r = append(r, u.Name)

			continue
		}

		r = append(r, prefixes[string(initial)]+u.Name)
	}

	return r
}

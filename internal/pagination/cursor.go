// Package pagination holds the since/limit/desc contract shared by every
// listing endpoint.
package pagination

import (
	"strconv"
)

const DefaultLimit = 100

// Cursor is an exclusive boundary (Since), a page size and a direction.
// The zero value of T means "no boundary": listing starts at the first
// row in the chosen direction.
type Cursor[T comparable] struct {
	Limit int
	Since T
	Desc  bool
}

func New[T comparable](limit int, since T, desc bool) Cursor[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return Cursor[T]{Limit: limit, Since: since, Desc: desc}
}

func (c Cursor[T]) HasSince() bool {
	var zero T
	return c.Since != zero
}

// ParseLimit and ParseDesc read raw query values; malformed input falls
// back to the defaults.
func ParseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return DefaultLimit
	}
	return limit
}

func ParseDesc(raw string) bool {
	return raw == "true"
}

package parsec

import (
	"fmt"
	"slices"
	"strings"
)

// Error describes a parse failure: the byte offset the parse reached before
// failing, and the labels it would have accepted there.
type Error struct {
	Pos      int
	Expected []string
}

func (e *Error) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("parse error at offset %d", e.Pos)
	}

	return fmt.Sprintf("parse error at offset %d: expected %s", e.Pos, strings.Join(e.Expected, " or "))
}

// mergeErrors combines failures from sibling alternatives.
// The furthest failure wins outright; at equal offsets the expected labels are
// unioned, keeping declaration order and dropping duplicates.
func mergeErrors(a, b *Error) *Error {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.Pos > a.Pos:
		return b
	case a.Pos > b.Pos:
		return a
	}

	expected := slices.Clone(a.Expected)
	for _, label := range b.Expected {
		if !slices.Contains(expected, label) {
			expected = append(expected, label)
		}
	}

	return &Error{Pos: a.Pos, Expected: expected}
}

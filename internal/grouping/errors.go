package grouping

import (
	"errors"
	"fmt"
)

// ErrEmptyCandidates is returned when a best match is requested against no
// candidates at all.
var ErrEmptyCandidates = errors.New("no candidates to match against")

// ErrMissingElement is wrapped when an item lacks a sub-element the grouping
// configuration requires.
var ErrMissingElement = errors.New("required element missing")

// GroupCountMismatchError is returned by Structural when the item selector does
// not account for every known ingredient.
type GroupCountMismatchError struct {
	Found    int
	Expected int
}

func (e *GroupCountMismatchError) Error() string {
	return fmt.Sprintf("found %d grouped ingredients but was expecting to find %d", e.Found, e.Expected)
}

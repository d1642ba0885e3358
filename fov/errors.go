package fov

import (
	"github.com/Chris3606/gogue"
	"github.com/pkg/errors"
)

// errors returned by Calculate/CalculateAppend (spec §4.2, "Failure modes").
// Both wrap one of gogue's core sentinels so callers can match with a
// single errors.Is(err, gogue.ErrOutOfBounds) regardless of which package
// raised it.
func errOriginOutOfBounds(p gogue.Point) error {
	return errors.Wrapf(gogue.ErrOutOfBounds, "fov: origin %v outside transparency view", p)
}

func errInvalidSpan(span float64) error {
	return errors.Wrapf(gogue.ErrInvalidParameter, "fov: span %v outside [0, 360]", span)
}

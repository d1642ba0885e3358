package gogue

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for the gogue core, in the style of a package-prefixed
// error table (spec §7). Match them with errors.Is; construction helpers
// below wrap them with github.com/pkg/errors to attach positional context
// without losing the sentinel identity.
var (
	// ErrOutOfBounds indicates an access or construction referred to a
	// position outside a grid view's fixed dimensions.
	ErrOutOfBounds = errors.New("gogue: position out of bounds")

	// ErrInvalidDimensions indicates a grid view was constructed with a
	// negative width or height.
	ErrInvalidDimensions = errors.New("gogue: invalid dimensions")

	// ErrInvalidParameter indicates an operation was given a parameter
	// outside its valid domain (e.g. a cone span outside [0, 360]).
	ErrInvalidParameter = errors.New("gogue: invalid parameter")
)

// BoundsError is panicked by GridView/SettableGridView indexers when given
// a position outside the view's dimensions. Indexers panic rather than
// returning an error because, like slice or map indexing, an out-of-bounds
// read is a precondition violation the caller is expected to avoid, not a
// recoverable runtime condition threaded through every read.
type BoundsError struct {
	Point         Point
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("gogue: position %v out of bounds for %dx%d view", e.Point, e.Width, e.Height)
}

// Unwrap allows errors.Is(err, ErrOutOfBounds) to succeed against a
// recovered BoundsError.
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

func newBoundsError(p Point, w, h int) *BoundsError {
	return &BoundsError{Point: p, Width: w, Height: h}
}

func invalidDimensions(w, h int) error {
	return errors.Wrapf(ErrInvalidDimensions, "width=%d height=%d", w, h)
}

package geometry

import "errors"

var (
	ErrDegenerateVector           = errors.New("degenerate vector")
	ErrDegenerateRectangle        = errors.New("degenerate rectangle")
	ErrInvalidBoundaryPoint       = errors.New("point is not on the rectangle boundary")
	ErrGeometryInvariantViolation = errors.New("geometry invariant violated")
	ErrInvalidRayLength           = errors.New("ray length must be positive")
)

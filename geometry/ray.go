package geometry

import (
	"fmt"
	"math"
)

const DefaultRayLength = 1000.0

// Ray is the set { center + t*direction : 0 <= t <= length }. The length has to
// be finite so that traced paths terminate.
type Ray struct {
	center    Vector
	direction Vector
	length    float64
}

// NewRay normalizes direction; a zero direction is rejected, and so is a length
// that is not positive and finite.
func NewRay(center, direction Vector, length float64) (Ray, error) {
	if math.IsInf(length, 0) || !(length > 0) {
		return Ray{}, fmt.Errorf("new ray with length %g: %w", length, ErrInvalidRayLength)
	}

	unit, err := direction.Normalized()
	if err != nil {
		return Ray{}, fmt.Errorf("new ray: %w", err)
	}

	return Ray{center: center, direction: unit, length: length}, nil
}

func (r Ray) Center() Vector {
	return r.center
}

func (r Ray) Direction() Vector {
	return r.direction
}

func (r Ray) Length() float64 {
	return r.length
}

// End is the point reached after travelling the full length without bouncing.
func (r Ray) End() Vector {
	return r.center.Add(r.direction.Scale(r.length))
}

// WithDirection re-aims the ray, keeping its center and length.
func (r Ray) WithDirection(direction Vector) (Ray, error) {
	return NewRay(r.center, direction, r.length)
}
